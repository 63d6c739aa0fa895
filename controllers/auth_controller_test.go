package controllers_test

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/dawidtomczynski/Przemyslane-Zakupy/models"
	"github.com/dawidtomczynski/Przemyslane-Zakupy/services"
)

func TestRegisterAndLoginFlow(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/register/", "", map[string]any{
		"username": "alice", "password": "secret", "password2": "secret",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	// mismatched confirmation is a validation error
	w = doJSON(t, r, http.MethodPost, "/register/", "", map[string]any{
		"username": "bob", "password": "secret", "password2": "other",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for mismatched passwords, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/login/", "", map[string]any{
		"username": "alice", "password": "secret",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatal("expected a token in the login response")
	}

	// the token works against a protected route
	w = doJSON(t, r, http.MethodGet, "/profile/plans/", token, nil)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 with a fresh token, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/login/", "", map[string]any{
		"username": "alice", "password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for a bad password, got %d", w.Code)
	}
}

func TestActivePlanMessageWhenUnset(t *testing.T) {
	r := setupRouter(t)
	user, token := createUser(t, "alice", false)

	// never selected: an informational message, not an error page
	w := doJSON(t, r, http.MethodGet, "/profile/active-plan/", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if _, ok := body["message"]; !ok {
		t.Errorf("expected an informational message, got %v", body)
	}

	plan, err := services.CreatePlan(user.ID, "week", models.TypeMeat, 1)
	if err != nil {
		t.Fatalf("create plan: %v", err)
	}
	w = doJSON(t, r, http.MethodGet, "/profile/active-plan/add/"+strconv.Itoa(int(plan.ID)), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/profile/active-plan/", token, nil)
	body = decodeBody(t, w)
	if _, ok := body["plan"]; !ok {
		t.Errorf("expected the selected plan, got %v", body)
	}
}
