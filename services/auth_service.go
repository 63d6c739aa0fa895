// services/auth_service.go
package services

import (
	"errors"

	"github.com/dawidtomczynski/Przemyslane-Zakupy/config"
	"github.com/dawidtomczynski/Przemyslane-Zakupy/models"
	"github.com/dawidtomczynski/Przemyslane-Zakupy/utils"

	"gorm.io/gorm"
)

var (
	ErrUsernameTaken     = errors.New("username already taken")
	ErrInvalidCredential = errors.New("invalid username or password")
)

func RegisterUser(username, password, firstName, lastName, email string) (*models.User, error) {
	var count int64
	err := config.DB.Model(&models.User{}).
		Where("username = ?", username).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:  username,
		Password:  hashedPassword,
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func AuthenticateUser(username, password string) (string, error) {
	var user models.User
	result := config.DB.Where("username = ?", username).First(&user)
	if result.Error != nil {
		return "", ErrInvalidCredential
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", ErrInvalidCredential
	}

	return utils.GenerateJWT(user.ID, user.Username)
}

func GetUser(userID uint) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func UpdateUser(userID uint, username, firstName, lastName, email string) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}

	if username != user.Username {
		var count int64
		err := config.DB.Model(&models.User{}).
			Where("username = ? AND id <> ?", username, user.ID).
			Count(&count).Error
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrUsernameTaken
		}
	}

	user.Username = username
	user.FirstName = firstName
	user.LastName = lastName
	user.Email = email
	if err := config.DB.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func UpdateUserPassword(userID uint, currentPassword, newPassword string) error {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return err
	}

	if !utils.CheckPasswordHash(currentPassword, user.Password) {
		return ErrInvalidCredential
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	return config.DB.Save(&user).Error
}

// DeleteUser removes the account. Meals and plans the user created are not
// deleted: their ownership moves to the sentinel "deleted" account so that
// shared plans keep working. Favourites and the active-plan selection go
// away with the account.
func DeleteUser(userID uint) error {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return err
	}

	return config.DB.Transaction(func(tx *gorm.DB) error {
		sentinel, err := sentinelUser(tx)
		if err != nil {
			return err
		}

		err = tx.Model(&models.Meal{}).
			Where("user_id = ?", user.ID).
			Update("user_id", sentinel.ID).Error
		if err != nil {
			return err
		}
		err = tx.Model(&models.Plan{}).
			Where("user_id = ?", user.ID).
			Update("user_id", sentinel.ID).Error
		if err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", user.ID).Delete(&models.FavouritePlan{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.FavouriteMeal{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.SelectedPlan{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
}

func sentinelUser(tx *gorm.DB) (*models.User, error) {
	var user models.User
	err := tx.Where("username = ?", models.SentinelUsername).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{Username: models.SentinelUsername, Password: "!"}
		if err := tx.Create(&user).Error; err != nil {
			return nil, err
		}
		return &user, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
