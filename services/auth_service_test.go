package services

import (
	"errors"
	"testing"

	"github.com/dawidtomczynski/Przemyslane-Zakupy/config"
	"github.com/dawidtomczynski/Przemyslane-Zakupy/models"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	setupDB(t)
	t.Setenv("JWT_SECRET", "testsecret")

	if _, err := RegisterUser("alice", "secret", "Alice", "", ""); err != nil {
		t.Fatalf("RegisterUser failed: %v", err)
	}

	token, err := AuthenticateUser("alice", "secret")
	if err != nil {
		t.Fatalf("AuthenticateUser failed: %v", err)
	}
	if token == "" {
		t.Error("expected a token")
	}

	if _, err := AuthenticateUser("alice", "wrong"); !errors.Is(err, ErrInvalidCredential) {
		t.Errorf("expected ErrInvalidCredential for wrong password, got %v", err)
	}
	if _, err := AuthenticateUser("nobody", "secret"); !errors.Is(err, ErrInvalidCredential) {
		t.Errorf("expected ErrInvalidCredential for unknown user, got %v", err)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	setupDB(t)

	if _, err := RegisterUser("alice", "secret", "", "", ""); err != nil {
		t.Fatalf("RegisterUser failed: %v", err)
	}
	if _, err := RegisterUser("alice", "other", "", "", ""); !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestUpdateUserPassword(t *testing.T) {
	setupDB(t)
	t.Setenv("JWT_SECRET", "testsecret")

	user, err := RegisterUser("alice", "secret", "", "", "")
	if err != nil {
		t.Fatalf("RegisterUser failed: %v", err)
	}

	if err := UpdateUserPassword(user.ID, "wrong", "newsecret"); !errors.Is(err, ErrInvalidCredential) {
		t.Errorf("expected ErrInvalidCredential for wrong current password, got %v", err)
	}
	if err := UpdateUserPassword(user.ID, "secret", "newsecret"); err != nil {
		t.Fatalf("UpdateUserPassword failed: %v", err)
	}
	if _, err := AuthenticateUser("alice", "newsecret"); err != nil {
		t.Errorf("new password should authenticate: %v", err)
	}
}

func TestDeleteUserTransfersOwnership(t *testing.T) {
	setupDB(t)

	user, err := RegisterUser("alice", "secret", "", "", "")
	if err != nil {
		t.Fatalf("RegisterUser failed: %v", err)
	}
	meal := createMeal(t, user.ID, "salad")
	plan := createPlan(t, user.ID, "week")
	if err := AddFavouritePlan(user.ID, plan.ID); err != nil {
		t.Fatalf("AddFavouritePlan failed: %v", err)
	}
	if _, err := SelectActivePlan(user.ID, plan.ID); err != nil {
		t.Fatalf("SelectActivePlan failed: %v", err)
	}

	if err := DeleteUser(user.ID); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}

	var sentinel models.User
	if err := config.DB.Where("username = ?", models.SentinelUsername).First(&sentinel).Error; err != nil {
		t.Fatalf("sentinel user missing: %v", err)
	}

	gotMeal, err := GetMeal(meal.ID)
	if err != nil {
		t.Fatalf("meal should survive: %v", err)
	}
	if gotMeal.UserID != sentinel.ID {
		t.Errorf("expected meal owned by sentinel %d, got %d", sentinel.ID, gotMeal.UserID)
	}
	gotPlan, err := GetPlan(plan.ID)
	if err != nil {
		t.Fatalf("plan should survive: %v", err)
	}
	if gotPlan.UserID != sentinel.ID {
		t.Errorf("expected plan owned by sentinel %d, got %d", sentinel.ID, gotPlan.UserID)
	}

	var favCount, selCount int64
	config.DB.Model(&models.FavouritePlan{}).Where("user_id = ?", user.ID).Count(&favCount)
	config.DB.Model(&models.SelectedPlan{}).Where("user_id = ?", user.ID).Count(&selCount)
	if favCount != 0 || selCount != 0 {
		t.Errorf("expected favourites and selection to be removed, got %d/%d", favCount, selCount)
	}
}
