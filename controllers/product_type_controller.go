package controllers

import (
	"net/http"

	"github.com/dawidtomczynski/Przemyslane-Zakupy/services"

	"github.com/gin-gonic/gin"
)

type ProductTypeInput struct {
	Name string `json:"name" binding:"required,max=64"`
}

func ListProductTypes(c *gin.Context) {
	types, err := services.ListProductTypes()
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product_types": types})
}

func AddProductType(c *gin.Context) {
	var input ProductTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pt, err := services.CreateProductType(input.Name)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"product_type": pt})
}

func EditProductType(c *gin.Context) {
	typeID, ok := idParam(c, "product_type_id")
	if !ok {
		return
	}

	if c.Request.Method == http.MethodGet {
		pt, err := services.GetProductType(typeID)
		if err != nil {
			serviceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"product_type": pt})
		return
	}

	var input ProductTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pt, err := services.UpdateProductType(typeID, input.Name)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product_type": pt})
}

// Deleting a type takes its products with it, and those products drop out
// of every meal.
func DeleteProductType(c *gin.Context) {
	typeID, ok := idParam(c, "product_type_id")
	if !ok {
		return
	}

	if c.Request.Method == http.MethodGet {
		pt, err := services.GetProductType(typeID)
		if err != nil {
			serviceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"product_type": pt, "confirm": "POST answer=" + deleteAnswer + " to delete"})
		return
	}

	var input deleteInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Answer != deleteAnswer {
		c.JSON(http.StatusOK, gin.H{"message": "deletion cancelled"})
		return
	}

	if err := services.DeleteProductType(typeID); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product type deleted"})
}
