package models

import (
	"gorm.io/gorm"
)

// SentinelUsername names the account that receives ownership of meals and
// plans when their creator deletes their own account.
const SentinelUsername = "deleted"

type User struct {
	gorm.Model
	Username  string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"`
	FirstName string
	LastName  string
	Email     string
	IsAdmin   bool
}
