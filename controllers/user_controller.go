package controllers

import (
	"errors"
	"net/http"

	"github.com/dawidtomczynski/Przemyslane-Zakupy/services"

	"github.com/gin-gonic/gin"
)

type UpdateProfileInput struct {
	Username  string `json:"username" binding:"required,max=64"`
	FirstName string `json:"first_name" binding:"max=64"`
	LastName  string `json:"last_name" binding:"max=64"`
	Email     string `json:"email" binding:"omitempty,email"`
}

func UpdateProfile(c *gin.Context) {
	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.UpdateUser(c.GetUint("userID"), input.Username, input.FirstName, input.LastName, input.Email)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "profile updated", "user": user})
}

type UpdatePasswordInput struct {
	Password     string `json:"password" binding:"required"`
	NewPassword  string `json:"new_password" binding:"required"`
	NewPassword2 string `json:"new_password2" binding:"required"`
}

func UpdatePassword(c *gin.Context) {
	var input UpdatePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.NewPassword != input.NewPassword2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "passwords do not match"})
		return
	}

	err := services.UpdateUserPassword(c.GetUint("userID"), input.Password, input.NewPassword)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredential) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "current password is incorrect"})
			return
		}
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "password changed"})
}

// GET shows what is about to be deleted, POST with the affirmative answer
// deletes the account and hands the user's meals and plans over to the
// sentinel account.
func ConfirmDeleteAccount(c *gin.Context) {
	user, err := services.GetUser(c.GetUint("userID"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user, "confirm": "POST answer=" + deleteAnswer + " to delete"})
}

func DeleteAccount(c *gin.Context) {
	var input deleteInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Answer != deleteAnswer {
		c.JSON(http.StatusOK, gin.H{"message": "deletion cancelled"})
		return
	}

	if err := services.DeleteUser(c.GetUint("userID")); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}
