// services/favourite_service.go
package services

import (
	"errors"

	"github.com/dawidtomczynski/Przemyslane-Zakupy/config"
	"github.com/dawidtomczynski/Przemyslane-Zakupy/models"

	"gorm.io/gorm"
)

// AddFavouritePlan bookmarks a plan for the user. The per-user favourites
// row is created on first use; adding an already-favourited plan is a
// no-op.
func AddFavouritePlan(userID, planID uint) error {
	var plan models.Plan
	if err := config.DB.First(&plan, planID).Error; err != nil {
		return err
	}

	return config.DB.Transaction(func(tx *gorm.DB) error {
		fav, err := favouritePlanRow(tx, userID)
		if err != nil {
			return err
		}
		return tx.Model(fav).Association("Plans").Append(&plan)
	})
}

func RemoveFavouritePlan(userID, planID uint) error {
	var plan models.Plan
	if err := config.DB.First(&plan, planID).Error; err != nil {
		return err
	}

	var fav models.FavouritePlan
	err := config.DB.Where("user_id = ?", userID).First(&fav).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil // nothing favourited yet
	}
	if err != nil {
		return err
	}
	return config.DB.Model(&fav).Association("Plans").Delete(&plan)
}

func ListFavouritePlans(userID uint) ([]models.Plan, error) {
	var fav models.FavouritePlan
	err := config.DB.Preload("Plans").Where("user_id = ?", userID).First(&fav).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []models.Plan{}, nil
	}
	if err != nil {
		return nil, err
	}
	return fav.Plans, nil
}

func AddFavouriteMeal(userID, mealID uint) error {
	var meal models.Meal
	if err := config.DB.First(&meal, mealID).Error; err != nil {
		return err
	}

	return config.DB.Transaction(func(tx *gorm.DB) error {
		fav, err := favouriteMealRow(tx, userID)
		if err != nil {
			return err
		}
		return tx.Model(fav).Association("Meals").Append(&meal)
	})
}

func RemoveFavouriteMeal(userID, mealID uint) error {
	var meal models.Meal
	if err := config.DB.First(&meal, mealID).Error; err != nil {
		return err
	}

	var fav models.FavouriteMeal
	err := config.DB.Where("user_id = ?", userID).First(&fav).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return config.DB.Model(&fav).Association("Meals").Delete(&meal)
}

func ListFavouriteMeals(userID uint) ([]models.Meal, error) {
	var fav models.FavouriteMeal
	err := config.DB.Preload("Meals").Where("user_id = ?", userID).First(&fav).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []models.Meal{}, nil
	}
	if err != nil {
		return nil, err
	}
	return fav.Meals, nil
}

func favouritePlanRow(tx *gorm.DB, userID uint) (*models.FavouritePlan, error) {
	var fav models.FavouritePlan
	err := tx.Where("user_id = ?", userID).First(&fav).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		fav = models.FavouritePlan{UserID: userID}
		if err := tx.Create(&fav).Error; err != nil {
			return nil, err
		}
		return &fav, nil
	}
	if err != nil {
		return nil, err
	}
	return &fav, nil
}

func favouriteMealRow(tx *gorm.DB, userID uint) (*models.FavouriteMeal, error) {
	var fav models.FavouriteMeal
	err := tx.Where("user_id = ?", userID).First(&fav).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		fav = models.FavouriteMeal{UserID: userID}
		if err := tx.Create(&fav).Error; err != nil {
			return nil, err
		}
		return &fav, nil
	}
	if err != nil {
		return nil, err
	}
	return &fav, nil
}
