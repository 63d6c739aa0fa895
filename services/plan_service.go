// services/plan_service.go
package services

import (
	"math/rand"
	"sort"

	"github.com/dawidtomczynski/Przemyslane-Zakupy/config"
	"github.com/dawidtomczynski/Przemyslane-Zakupy/models"

	"gorm.io/gorm"
)

func CreatePlan(userID uint, name string, planType, persons int) (*models.Plan, error) {
	plan := &models.Plan{Name: name, UserID: userID, Type: planType, Persons: persons}
	if err := config.DB.Create(plan).Error; err != nil {
		return nil, err
	}
	return plan, nil
}

func ListPlans() ([]models.Plan, error) {
	var plans []models.Plan
	err := config.DB.
		Preload("Meals.Meal").
		Order("created_at").
		Find(&plans).Error
	return plans, err
}

func ListUserPlans(userID uint) ([]models.Plan, error) {
	var plans []models.Plan
	err := config.DB.
		Preload("Meals.Meal").
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&plans).Error
	return plans, err
}

func GetPlan(planID uint) (*models.Plan, error) {
	var plan models.Plan
	err := config.DB.
		Preload("Meals.Meal.Products.Product").
		First(&plan, planID).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func UpdatePlan(userID, planID uint, name string, planType, persons int) (*models.Plan, error) {
	var plan models.Plan
	if err := config.DB.First(&plan, planID).Error; err != nil {
		return nil, err
	}
	if plan.UserID != userID {
		return nil, ErrNotOwner
	}

	plan.Name = name
	plan.Type = planType
	plan.Persons = persons
	if err := config.DB.Save(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func DeletePlan(userID, planID uint) error {
	var plan models.Plan
	if err := config.DB.First(&plan, planID).Error; err != nil {
		return err
	}
	if plan.UserID != userID {
		return ErrNotOwner
	}

	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("plan_id = ?", plan.ID).Delete(&models.PlanMeal{}).Error; err != nil {
			return err
		}
		return tx.Delete(&plan).Error
	})
}

// AddPlanMeals appends one association row per listed meal. There is no
// duplicate check: adding a meal twice doubles its shopping-list
// contribution.
func AddPlanMeals(userID, planID uint, mealIDs []uint) error {
	var plan models.Plan
	if err := config.DB.First(&plan, planID).Error; err != nil {
		return err
	}
	if plan.UserID != userID {
		return ErrNotOwner
	}

	return config.DB.Transaction(func(tx *gorm.DB) error {
		for _, mealID := range mealIDs {
			var meal models.Meal
			if err := tx.First(&meal, mealID).Error; err != nil {
				return err
			}
			pm := models.PlanMeal{PlanID: plan.ID, MealID: meal.ID}
			if err := tx.Create(&pm).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// AddRandomPlanMeal picks one meal uniformly at random among those not yet
// in the plan and adds it. When every meal is already a member it does
// nothing and returns nil, nil.
func AddRandomPlanMeal(userID, planID uint) (*models.Meal, error) {
	var plan models.Plan
	if err := config.DB.First(&plan, planID).Error; err != nil {
		return nil, err
	}
	if plan.UserID != userID {
		return nil, ErrNotOwner
	}

	var memberIDs []uint
	err := config.DB.Model(&models.PlanMeal{}).
		Where("plan_id = ?", plan.ID).
		Pluck("meal_id", &memberIDs).Error
	if err != nil {
		return nil, err
	}

	query := config.DB
	if len(memberIDs) > 0 {
		query = query.Where("id NOT IN ?", memberIDs)
	}
	var candidates []models.Meal
	if err := query.Find(&candidates).Error; err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	meal := candidates[rand.Intn(len(candidates))]
	pm := models.PlanMeal{PlanID: plan.ID, MealID: meal.ID}
	if err := config.DB.Create(&pm).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

// SetPlanMeals replaces the whole meal membership of a plan.
func SetPlanMeals(userID, planID uint, mealIDs []uint) error {
	var plan models.Plan
	if err := config.DB.First(&plan, planID).Error; err != nil {
		return err
	}
	if plan.UserID != userID {
		return ErrNotOwner
	}

	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("plan_id = ?", plan.ID).Delete(&models.PlanMeal{}).Error; err != nil {
			return err
		}
		for _, mealID := range mealIDs {
			var meal models.Meal
			if err := tx.First(&meal, mealID).Error; err != nil {
				return err
			}
			pm := models.PlanMeal{PlanID: plan.ID, MealID: meal.ID}
			if err := tx.Create(&pm).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// PlanTotalCost sums the prices of every product of every member meal. A
// product is counted once per meal membership: it is not deduplicated
// across meals, not weighted by grams and not scaled by the person count.
func PlanTotalCost(planID uint) (int64, error) {
	var pms []models.PlanMeal
	err := config.DB.
		Where("plan_id = ?", planID).
		Find(&pms).Error
	if err != nil {
		return 0, err
	}

	var cost int64
	for _, pm := range pms {
		price, err := MealTotalPrice(pm.MealID)
		if err != nil {
			return 0, err
		}
		cost += price
	}
	return cost, nil
}

// One line of the aggregated shopping list.
type ShoppingListEntry struct {
	MealID      uint   `json:"meal_id"`
	MealName    string `json:"meal_name"`
	ProductID   uint   `json:"product_id"`
	ProductName string `json:"product_name"`
	TypeName    string `json:"type_name"`
	Grams       int    `json:"grams"`
	Price       int64  `json:"price"`
}

// PlanShoppingList returns every (meal, product) pair across the plan's
// member meals, stably sorted by product-type name, together with the total
// cost. The interactive bought/unbought split happens on the client and is
// never persisted here.
func PlanShoppingList(planID uint) ([]ShoppingListEntry, int64, error) {
	var plan models.Plan
	if err := config.DB.First(&plan, planID).Error; err != nil {
		return nil, 0, err
	}

	var pms []models.PlanMeal
	err := config.DB.
		Preload("Meal").
		Where("plan_id = ?", plan.ID).
		Find(&pms).Error
	if err != nil {
		return nil, 0, err
	}

	entries := make([]ShoppingListEntry, 0)
	var total int64
	for _, pm := range pms {
		var rows []models.MealProduct
		err := config.DB.
			Preload("Product.Type").
			Where("meal_id = ?", pm.MealID).
			Find(&rows).Error
		if err != nil {
			return nil, 0, err
		}
		for _, row := range rows {
			entries = append(entries, ShoppingListEntry{
				MealID:      pm.MealID,
				MealName:    pm.Meal.Name,
				ProductID:   row.ProductID,
				ProductName: row.Product.Name,
				TypeName:    row.Product.Type.Name,
				Grams:       row.Grams,
				Price:       row.Product.Price,
			})
			total += row.Product.Price
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TypeName < entries[j].TypeName
	})
	return entries, total, nil
}
