// services/selected_plan_service.go
package services

import (
	"errors"

	"github.com/dawidtomczynski/Przemyslane-Zakupy/config"
	"github.com/dawidtomczynski/Przemyslane-Zakupy/models"

	"gorm.io/gorm"
)

// SelectActivePlan marks a plan as the user's active one, overwriting any
// previous selection. A user has at most one active plan.
func SelectActivePlan(userID, planID uint) (*models.Plan, error) {
	var plan models.Plan
	if err := config.DB.First(&plan, planID).Error; err != nil {
		return nil, err
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var sel models.SelectedPlan
		err := tx.Where("user_id = ?", userID).First(&sel).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sel = models.SelectedPlan{UserID: userID, ActivePlanID: &plan.ID}
			return tx.Create(&sel).Error
		}
		if err != nil {
			return err
		}
		sel.ActivePlanID = &plan.ID
		return tx.Save(&sel).Error
	})
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// GetActivePlan returns gorm.ErrRecordNotFound when the user has never
// selected a plan; handlers turn that into an informational message rather
// than an error page.
func GetActivePlan(userID uint) (*models.Plan, error) {
	var sel models.SelectedPlan
	if err := config.DB.Where("user_id = ?", userID).First(&sel).Error; err != nil {
		return nil, err
	}
	if sel.ActivePlanID == nil {
		return nil, gorm.ErrRecordNotFound
	}

	var plan models.Plan
	err := config.DB.
		Preload("Meals.Meal").
		First(&plan, *sel.ActivePlanID).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}
