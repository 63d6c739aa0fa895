package services

import (
	"errors"
	"testing"

	"github.com/dawidtomczynski/Przemyslane-Zakupy/config"
	"github.com/dawidtomczynski/Przemyslane-Zakupy/models"

	"gorm.io/gorm"
)

func TestMealAverageCaloriesEmptyMeal(t *testing.T) {
	setupDB(t)
	user := createUser(t, "alice")
	meal := createMeal(t, user.ID, "empty meal")

	kcal, err := MealAverageCalories(meal.ID)
	if err != nil {
		t.Fatalf("MealAverageCalories failed: %v", err)
	}
	if kcal != 0 {
		t.Errorf("expected 0 kcal for empty meal, got %d", kcal)
	}
}

func TestMealAggregates(t *testing.T) {
	setupDB(t)
	user := createUser(t, "alice")
	pt := createProductType(t, "vegetables")
	a := createProduct(t, "tomato", 1000, 100, pt.ID)
	b := createProduct(t, "pepper", 1000, 200, pt.ID)
	meal := createMeal(t, user.ID, "salad")

	if err := SetMealProducts(user.ID, meal.ID, []uint{a.ID, b.ID}); err != nil {
		t.Fatalf("SetMealProducts failed: %v", err)
	}
	if err := SetMealProductGrams(user.ID, meal.ID, a.ID, 100); err != nil {
		t.Fatalf("SetMealProductGrams failed: %v", err)
	}
	if err := SetMealProductGrams(user.ID, meal.ID, b.ID, 300); err != nil {
		t.Fatalf("SetMealProductGrams failed: %v", err)
	}

	kcal, err := MealAverageCalories(meal.ID)
	if err != nil {
		t.Fatalf("MealAverageCalories failed: %v", err)
	}
	if kcal != 150 {
		t.Errorf("expected average 150 kcal, got %d", kcal)
	}

	// price is per product, never grams-weighted
	price, err := MealTotalPrice(meal.ID)
	if err != nil {
		t.Fatalf("MealTotalPrice failed: %v", err)
	}
	if price != 2000 {
		t.Errorf("expected total price 2000, got %d", price)
	}

	// weight is the one grams-weighted aggregate
	weight, err := MealTotalWeight(meal.ID)
	if err != nil {
		t.Fatalf("MealTotalWeight failed: %v", err)
	}
	if weight != 400 {
		t.Errorf("expected total weight 400, got %d", weight)
	}
}

func TestSetMealProductsReplacesMembership(t *testing.T) {
	setupDB(t)
	user := createUser(t, "alice")
	pt := createProductType(t, "vegetables")
	a := createProduct(t, "tomato", 1000, 100, pt.ID)
	b := createProduct(t, "pepper", 1000, 200, pt.ID)
	c := createProduct(t, "onion", 500, 50, pt.ID)
	meal := createMeal(t, user.ID, "salad")

	if err := SetMealProducts(user.ID, meal.ID, []uint{a.ID, b.ID}); err != nil {
		t.Fatalf("SetMealProducts failed: %v", err)
	}
	if err := SetMealProductGrams(user.ID, meal.ID, a.ID, 200); err != nil {
		t.Fatalf("SetMealProductGrams failed: %v", err)
	}

	if err := SetMealProducts(user.ID, meal.ID, []uint{b.ID, c.ID}); err != nil {
		t.Fatalf("SetMealProducts replace failed: %v", err)
	}

	var rows []models.MealProduct
	if err := config.DB.Where("meal_id = ?", meal.ID).Order("product_id").Find(&rows).Error; err != nil {
		t.Fatalf("loading membership rows failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 membership rows, got %d", len(rows))
	}
	for _, row := range rows {
		if row.ProductID == a.ID {
			t.Errorf("product %d should have been removed", a.ID)
		}
		if row.Grams != 0 {
			t.Errorf("membership is fully replaced, grams should reset to 0, got %d", row.Grams)
		}
	}
}

func TestSetMealProductGrams(t *testing.T) {
	setupDB(t)
	user := createUser(t, "alice")
	pt := createProductType(t, "vegetables")
	a := createProduct(t, "tomato", 1000, 100, pt.ID)
	outsider := createProduct(t, "pepper", 1000, 200, pt.ID)
	meal := createMeal(t, user.ID, "salad")

	if err := SetMealProducts(user.ID, meal.ID, []uint{a.ID}); err != nil {
		t.Fatalf("SetMealProducts failed: %v", err)
	}

	if err := SetMealProductGrams(user.ID, meal.ID, a.ID, 200); err != nil {
		t.Fatalf("SetMealProductGrams failed: %v", err)
	}
	var mp models.MealProduct
	err := config.DB.Where("meal_id = ? AND product_id = ?", meal.ID, a.ID).First(&mp).Error
	if err != nil {
		t.Fatalf("loading membership row failed: %v", err)
	}
	if mp.Grams != 200 {
		t.Errorf("expected grams 200, got %d", mp.Grams)
	}

	// a product that is not a member cannot have its grams set
	err = SetMealProductGrams(user.ID, meal.ID, outsider.ID, 100)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound for non-member product, got %v", err)
	}
}

func TestMealOwnership(t *testing.T) {
	setupDB(t)
	owner := createUser(t, "alice")
	other := createUser(t, "bob")
	meal := createMeal(t, owner.ID, "salad")

	if _, err := UpdateMeal(other.ID, meal.ID, "stolen", "", models.TypeVegan); !errors.Is(err, ErrNotOwner) {
		t.Errorf("expected ErrNotOwner on update, got %v", err)
	}
	if err := DeleteMeal(other.ID, meal.ID); !errors.Is(err, ErrNotOwner) {
		t.Errorf("expected ErrNotOwner on delete, got %v", err)
	}
	if err := SetMealProducts(other.ID, meal.ID, nil); !errors.Is(err, ErrNotOwner) {
		t.Errorf("expected ErrNotOwner on membership replace, got %v", err)
	}
}

func TestDeleteMealCascades(t *testing.T) {
	setupDB(t)
	user := createUser(t, "alice")
	pt := createProductType(t, "vegetables")
	a := createProduct(t, "tomato", 1000, 100, pt.ID)
	meal := createMeal(t, user.ID, "salad")
	plan := createPlan(t, user.ID, "week")

	if err := SetMealProducts(user.ID, meal.ID, []uint{a.ID}); err != nil {
		t.Fatalf("SetMealProducts failed: %v", err)
	}
	if err := AddPlanMeals(user.ID, plan.ID, []uint{meal.ID}); err != nil {
		t.Fatalf("AddPlanMeals failed: %v", err)
	}

	if err := DeleteMeal(user.ID, meal.ID); err != nil {
		t.Fatalf("DeleteMeal failed: %v", err)
	}

	var mpCount, pmCount int64
	config.DB.Model(&models.MealProduct{}).Where("meal_id = ?", meal.ID).Count(&mpCount)
	config.DB.Model(&models.PlanMeal{}).Where("meal_id = ?", meal.ID).Count(&pmCount)
	if mpCount != 0 {
		t.Errorf("expected product memberships to be deleted, found %d", mpCount)
	}
	if pmCount != 0 {
		t.Errorf("expected plan associations to be deleted, found %d", pmCount)
	}
}

func TestAddMealToPlans(t *testing.T) {
	setupDB(t)
	user := createUser(t, "alice")
	meal := createMeal(t, user.ID, "salad")
	p1 := createPlan(t, user.ID, "week one")
	p2 := createPlan(t, user.ID, "week two")

	if err := AddMealToPlans(user.ID, meal.ID, []uint{p1.ID, p2.ID}); err != nil {
		t.Fatalf("AddMealToPlans failed: %v", err)
	}

	var count int64
	config.DB.Model(&models.PlanMeal{}).Where("meal_id = ?", meal.ID).Count(&count)
	if count != 2 {
		t.Errorf("expected the meal in 2 plans, got %d", count)
	}

	// only the plan owner may extend a plan
	other := createUser(t, "bob")
	if err := AddMealToPlans(other.ID, meal.ID, []uint{p1.ID}); !errors.Is(err, ErrNotOwner) {
		t.Errorf("expected ErrNotOwner, got %v", err)
	}
}
