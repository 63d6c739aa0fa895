package models

import "gorm.io/gorm"

// The single plan a user has designated as currently in use. ActivePlanID
// is overwritten on re-selection, never duplicated.
type SelectedPlan struct {
	gorm.Model
	UserID       uint `gorm:"uniqueIndex;not null"`
	ActivePlanID *uint
	ActivePlan   *Plan `gorm:"foreignKey:ActivePlanID"`
}
