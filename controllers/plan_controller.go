package controllers

import (
	"net/http"

	"github.com/dawidtomczynski/Przemyslane-Zakupy/services"

	"github.com/gin-gonic/gin"
)

type PlanInput struct {
	Name    string `json:"name" binding:"required,max=64"`
	Type    int    `json:"type" binding:"required,min=1,max=3"`
	Persons int    `json:"persons" binding:"required,min=1"`
	// Optional full replace of the meal membership on edit.
	Meals *[]uint `json:"meals"`
}

func ListPlans(c *gin.Context) {
	plans, err := services.ListPlans()
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

func GetPlan(c *gin.Context) {
	planID, ok := idParam(c, "plan_id")
	if !ok {
		return
	}

	plan, err := services.GetPlan(planID)
	if err != nil {
		serviceError(c, err)
		return
	}
	totalCost, err := services.PlanTotalCost(plan.ID)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"plan": plan, "total_cost": totalCost})
}

func AddPlan(c *gin.Context) {
	var input PlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := services.CreatePlan(c.GetUint("userID"), input.Name, input.Type, input.Persons)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"plan": plan})
}

func EditPlan(c *gin.Context) {
	planID, ok := idParam(c, "plan_id")
	if !ok {
		return
	}

	if c.Request.Method == http.MethodGet {
		plan, err := services.GetPlan(planID)
		if err != nil {
			serviceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"plan": plan})
		return
	}

	var input PlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetUint("userID")
	plan, err := services.UpdatePlan(userID, planID, input.Name, input.Type, input.Persons)
	if err != nil {
		serviceError(c, err)
		return
	}

	if input.Meals != nil {
		if err := services.SetPlanMeals(userID, planID, *input.Meals); err != nil {
			serviceError(c, err)
			return
		}
		plan, err = services.GetPlan(planID)
		if err != nil {
			serviceError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

func DeletePlan(c *gin.Context) {
	planID, ok := idParam(c, "plan_id")
	if !ok {
		return
	}

	if c.Request.Method == http.MethodGet {
		plan, err := services.GetPlan(planID)
		if err != nil {
			serviceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"plan": plan, "confirm": "POST answer=" + deleteAnswer + " to delete"})
		return
	}

	var input deleteInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Answer != deleteAnswer {
		c.JSON(http.StatusOK, gin.H{"message": "deletion cancelled"})
		return
	}

	if err := services.DeletePlan(c.GetUint("userID"), planID); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "plan deleted"})
}

type PlanMealsInput struct {
	Meals []uint `json:"meals" binding:"required"`
}

// GET returns the plan together with every meal available for selection;
// POST appends the selected meals, duplicates allowed.
func AddPlanMeals(c *gin.Context) {
	planID, ok := idParam(c, "plan_id")
	if !ok {
		return
	}

	if c.Request.Method == http.MethodGet {
		plan, err := services.GetPlan(planID)
		if err != nil {
			serviceError(c, err)
			return
		}
		meals, err := services.ListMeals()
		if err != nil {
			serviceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"plan": plan, "meals": meals})
		return
	}

	var input PlanMealsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.AddPlanMeals(c.GetUint("userID"), planID, input.Meals); err != nil {
		serviceError(c, err)
		return
	}

	plan, err := services.GetPlan(planID)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

func AddRandomPlanMeal(c *gin.Context) {
	planID, ok := idParam(c, "plan_id")
	if !ok {
		return
	}

	meal, err := services.AddRandomPlanMeal(c.GetUint("userID"), planID)
	if err != nil {
		serviceError(c, err)
		return
	}
	if meal == nil {
		// all meals already in the plan
		c.JSON(http.StatusOK, gin.H{"message": "no meals left to add"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"meal": meal})
}

// The aggregated shopping list: every product of every member meal, sorted
// by product-type name, with the total cost.
func PlanShoppingList(c *gin.Context) {
	planID, ok := idParam(c, "plan_id")
	if !ok {
		return
	}

	entries, totalCost, err := services.PlanShoppingList(planID)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": entries, "total_cost": totalCost})
}
