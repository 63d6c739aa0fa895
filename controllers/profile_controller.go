package controllers

import (
	"errors"
	"net/http"

	"github.com/dawidtomczynski/Przemyslane-Zakupy/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func MyPlans(c *gin.Context) {
	plans, err := services.ListUserPlans(c.GetUint("userID"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user_plans": plans})
}

func MyMeals(c *gin.Context) {
	meals, err := services.ListUserMeals(c.GetUint("userID"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user_meals": meals})
}

func FavouritePlans(c *gin.Context) {
	plans, err := services.ListFavouritePlans(c.GetUint("userID"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favourite_plans": plans})
}

func AddFavouritePlan(c *gin.Context) {
	planID, ok := idParam(c, "plan_id")
	if !ok {
		return
	}

	if err := services.AddFavouritePlan(c.GetUint("userID"), planID); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "plan added to favourites"})
}

func RemoveFavouritePlan(c *gin.Context) {
	planID, ok := idParam(c, "plan_id")
	if !ok {
		return
	}

	if err := services.RemoveFavouritePlan(c.GetUint("userID"), planID); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "plan removed from favourites"})
}

func FavouriteMeals(c *gin.Context) {
	meals, err := services.ListFavouriteMeals(c.GetUint("userID"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favourite_meals": meals})
}

func AddFavouriteMeal(c *gin.Context) {
	mealID, ok := idParam(c, "meal_id")
	if !ok {
		return
	}

	if err := services.AddFavouriteMeal(c.GetUint("userID"), mealID); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "meal added to favourites"})
}

func RemoveFavouriteMeal(c *gin.Context) {
	mealID, ok := idParam(c, "meal_id")
	if !ok {
		return
	}

	if err := services.RemoveFavouriteMeal(c.GetUint("userID"), mealID); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "meal removed from favourites"})
}

// A user who has never selected a plan gets an informational message, not
// an error.
func ActivePlan(c *gin.Context) {
	plan, err := services.GetActivePlan(c.GetUint("userID"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"message": "no active plan selected"})
			return
		}
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

func SelectActivePlan(c *gin.Context) {
	planID, ok := idParam(c, "plan_id")
	if !ok {
		return
	}

	plan, err := services.SelectActivePlan(c.GetUint("userID"), planID)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": plan})
}
