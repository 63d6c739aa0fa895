package controllers

import (
	"net/http"

	"github.com/dawidtomczynski/Przemyslane-Zakupy/services"

	"github.com/gin-gonic/gin"
)

type MealInput struct {
	Name   string `json:"name" binding:"required,max=64"`
	Recipe string `json:"recipe"`
	Type   int    `json:"type" binding:"required,min=1,max=3"`
}

func ListMeals(c *gin.Context) {
	meals, err := services.ListMeals()
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

// Meal detail with the three derived metrics the templates used to show:
// average kcal per 100 g, total price and total weight.
func GetMeal(c *gin.Context) {
	mealID, ok := idParam(c, "meal_id")
	if !ok {
		return
	}

	meal, err := services.GetMeal(mealID)
	if err != nil {
		serviceError(c, err)
		return
	}

	avgKcal, err := services.MealAverageCalories(meal.ID)
	if err != nil {
		serviceError(c, err)
		return
	}
	totalPrice, err := services.MealTotalPrice(meal.ID)
	if err != nil {
		serviceError(c, err)
		return
	}
	totalWeight, err := services.MealTotalWeight(meal.ID)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"meal":         meal,
		"average_kcal": avgKcal,
		"total_price":  totalPrice,
		"total_weight": totalWeight,
	})
}

func AddMeal(c *gin.Context) {
	var input MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := services.CreateMeal(c.GetUint("userID"), input.Name, input.Recipe, input.Type)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"meal": meal})
}

func EditMeal(c *gin.Context) {
	mealID, ok := idParam(c, "meal_id")
	if !ok {
		return
	}

	if c.Request.Method == http.MethodGet {
		meal, err := services.GetMeal(mealID)
		if err != nil {
			serviceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"meal": meal})
		return
	}

	var input MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := services.UpdateMeal(c.GetUint("userID"), mealID, input.Name, input.Recipe, input.Type)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meal": meal})
}

func DeleteMeal(c *gin.Context) {
	mealID, ok := idParam(c, "meal_id")
	if !ok {
		return
	}

	if c.Request.Method == http.MethodGet {
		meal, err := services.GetMeal(mealID)
		if err != nil {
			serviceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"meal": meal, "confirm": "POST answer=" + deleteAnswer + " to delete"})
		return
	}

	var input deleteInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Answer != deleteAnswer {
		c.JSON(http.StatusOK, gin.H{"message": "deletion cancelled"})
		return
	}

	if err := services.DeleteMeal(c.GetUint("userID"), mealID); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "meal deleted"})
}

type MealProductsInput struct {
	Products []uint `json:"products" binding:"required"`
}

// GET returns the meal and the full catalog for the selection form; POST
// replaces the meal's product membership with the submitted set.
func SetMealProducts(c *gin.Context) {
	mealID, ok := idParam(c, "meal_id")
	if !ok {
		return
	}

	if c.Request.Method == http.MethodGet {
		meal, err := services.GetMeal(mealID)
		if err != nil {
			serviceError(c, err)
			return
		}
		products, err := services.ListProducts()
		if err != nil {
			serviceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"meal": meal, "products": products})
		return
	}

	var input MealProductsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.SetMealProducts(c.GetUint("userID"), mealID, input.Products); err != nil {
		serviceError(c, err)
		return
	}

	meal, err := services.GetMeal(mealID)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meal": meal})
}

type MealPlansInput struct {
	Plans []uint `json:"plans" binding:"required"`
}

// Adds the meal to each selected plan owned by the caller.
func AddMealToPlans(c *gin.Context) {
	mealID, ok := idParam(c, "meal_id")
	if !ok {
		return
	}

	if c.Request.Method == http.MethodGet {
		meal, err := services.GetMeal(mealID)
		if err != nil {
			serviceError(c, err)
			return
		}
		plans, err := services.ListUserPlans(c.GetUint("userID"))
		if err != nil {
			serviceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"meal": meal, "plans": plans})
		return
	}

	var input MealPlansInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.AddMealToPlans(c.GetUint("userID"), mealID, input.Plans); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "meal added to plans"})
}

type GramsInput struct {
	Grams int `json:"grams" binding:"min=0"`
}

func SetMealProductGrams(c *gin.Context) {
	mealID, ok := idParam(c, "meal_id")
	if !ok {
		return
	}
	productID, ok := idParam(c, "product_id")
	if !ok {
		return
	}

	if c.Request.Method == http.MethodGet {
		meal, err := services.GetMeal(mealID)
		if err != nil {
			serviceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"meal": meal})
		return
	}

	var input GramsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := services.SetMealProductGrams(c.GetUint("userID"), mealID, productID, input.Grams)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "grams updated"})
}
