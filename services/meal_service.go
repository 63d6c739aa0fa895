// services/meal_service.go
package services

import (
	"errors"

	"github.com/dawidtomczynski/Przemyslane-Zakupy/config"
	"github.com/dawidtomczynski/Przemyslane-Zakupy/models"

	"gorm.io/gorm"
)

// ErrNotOwner is returned when an authenticated user tries to mutate a meal
// or plan created by somebody else. Handlers render it as a message, not as
// an HTTP error.
var ErrNotOwner = errors.New("not the owner of this resource")

func CreateMeal(userID uint, name, recipe string, mealType int) (*models.Meal, error) {
	meal := &models.Meal{Name: name, UserID: userID, Recipe: recipe, Type: mealType}
	if err := config.DB.Create(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

func ListMeals() ([]models.Meal, error) {
	var meals []models.Meal
	err := config.DB.
		Preload("Products.Product").
		Order("created_at").
		Find(&meals).Error
	return meals, err
}

func ListUserMeals(userID uint) ([]models.Meal, error) {
	var meals []models.Meal
	err := config.DB.
		Preload("Products.Product").
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&meals).Error
	return meals, err
}

func GetMeal(mealID uint) (*models.Meal, error) {
	var meal models.Meal
	err := config.DB.
		Preload("Products.Product.Type").
		First(&meal, mealID).Error
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

func UpdateMeal(userID, mealID uint, name, recipe string, mealType int) (*models.Meal, error) {
	var meal models.Meal
	if err := config.DB.First(&meal, mealID).Error; err != nil {
		return nil, err
	}
	if meal.UserID != userID {
		return nil, ErrNotOwner
	}

	meal.Name = name
	meal.Recipe = recipe
	meal.Type = mealType
	if err := config.DB.Save(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

// DeleteMeal removes the meal together with its product memberships and any
// plan associations pointing at it.
func DeleteMeal(userID, mealID uint) error {
	var meal models.Meal
	if err := config.DB.First(&meal, mealID).Error; err != nil {
		return err
	}
	if meal.UserID != userID {
		return ErrNotOwner
	}

	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meal_id = ?", meal.ID).Delete(&models.MealProduct{}).Error; err != nil {
			return err
		}
		if err := tx.Where("meal_id = ?", meal.ID).Delete(&models.PlanMeal{}).Error; err != nil {
			return err
		}
		return tx.Delete(&meal).Error
	})
}

// SetMealProducts replaces the whole product membership of a meal. Grams
// values of products no longer in the set are discarded; new members start
// at 0 grams.
func SetMealProducts(userID, mealID uint, productIDs []uint) error {
	var meal models.Meal
	if err := config.DB.First(&meal, mealID).Error; err != nil {
		return err
	}
	if meal.UserID != userID {
		return ErrNotOwner
	}

	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meal_id = ?", meal.ID).Delete(&models.MealProduct{}).Error; err != nil {
			return err
		}
		for _, productID := range productIDs {
			var product models.Product
			if err := tx.First(&product, productID).Error; err != nil {
				return err
			}
			mp := models.MealProduct{MealID: meal.ID, ProductID: product.ID}
			if err := tx.Create(&mp).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// SetMealProductGrams updates the gram quantity of one existing membership
// row. The product must already be a member of the meal.
func SetMealProductGrams(userID, mealID, productID uint, grams int) error {
	var meal models.Meal
	if err := config.DB.First(&meal, mealID).Error; err != nil {
		return err
	}
	if meal.UserID != userID {
		return ErrNotOwner
	}

	var mp models.MealProduct
	err := config.DB.
		Where("meal_id = ? AND product_id = ?", mealID, productID).
		First(&mp).Error
	if err != nil {
		return err // ErrRecordNotFound when the product is not a member
	}

	mp.Grams = grams
	return config.DB.Save(&mp).Error
}

// AddMealToPlans appends the meal to every listed plan. The caller must own
// each plan; there is no duplicate check, so a plan may end up containing
// the meal more than once.
func AddMealToPlans(userID, mealID uint, planIDs []uint) error {
	var meal models.Meal
	if err := config.DB.First(&meal, mealID).Error; err != nil {
		return err
	}

	return config.DB.Transaction(func(tx *gorm.DB) error {
		for _, planID := range planIDs {
			var plan models.Plan
			if err := tx.First(&plan, planID).Error; err != nil {
				return err
			}
			if plan.UserID != userID {
				return ErrNotOwner
			}
			pm := models.PlanMeal{PlanID: plan.ID, MealID: meal.ID}
			if err := tx.Create(&pm).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// MealAverageCalories is the arithmetic mean of kcal over the meal's member
// products, per product rather than grams-weighted. An empty meal averages
// to 0.
func MealAverageCalories(mealID uint) (int, error) {
	rows, err := mealProductRows(mealID)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}

	total := 0
	for _, row := range rows {
		total += row.Product.Kcal
	}
	return total / len(rows), nil
}

// MealTotalPrice sums member product prices, one contribution per member
// regardless of grams.
func MealTotalPrice(mealID uint) (int64, error) {
	rows, err := mealProductRows(mealID)
	if err != nil {
		return 0, err
	}

	var cost int64
	for _, row := range rows {
		cost += row.Product.Price
	}
	return cost, nil
}

// MealTotalWeight sums the gram quantities of the membership rows. Unlike
// price and calories this one is grams-weighted.
func MealTotalWeight(mealID uint) (int, error) {
	rows, err := mealProductRows(mealID)
	if err != nil {
		return 0, err
	}

	weight := 0
	for _, row := range rows {
		weight += row.Grams
	}
	return weight, nil
}

func mealProductRows(mealID uint) ([]models.MealProduct, error) {
	var rows []models.MealProduct
	err := config.DB.
		Preload("Product").
		Where("meal_id = ?", mealID).
		Find(&rows).Error
	return rows, err
}
