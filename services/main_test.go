package services

import (
	"testing"

	"github.com/dawidtomczynski/Przemyslane-Zakupy/config"
	"github.com/dawidtomczynski/Przemyslane-Zakupy/models"
)

func setupDB(t *testing.T) {
	t.Helper()
	if _, err := config.InitTestDB(); err != nil {
		t.Fatalf("InitTestDB failed: %v", err)
	}
}

func createUser(t *testing.T, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Password: "x"}
	if err := config.DB.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func createProductType(t *testing.T, name string) *models.ProductType {
	t.Helper()
	pt, err := CreateProductType(name)
	if err != nil {
		t.Fatalf("create product type: %v", err)
	}
	return pt
}

func createProduct(t *testing.T, name string, price int64, kcal int, typeID uint) *models.Product {
	t.Helper()
	product, err := CreateProduct(name, price, kcal, typeID)
	if err != nil {
		t.Fatalf("create product: %v", err)
	}
	return product
}

func createMeal(t *testing.T, userID uint, name string) *models.Meal {
	t.Helper()
	meal, err := CreateMeal(userID, name, "", models.TypeMeat)
	if err != nil {
		t.Fatalf("create meal: %v", err)
	}
	return meal
}

func createPlan(t *testing.T, userID uint, name string) *models.Plan {
	t.Helper()
	plan, err := CreatePlan(userID, name, models.TypeMeat, 1)
	if err != nil {
		t.Fatalf("create plan: %v", err)
	}
	return plan
}
