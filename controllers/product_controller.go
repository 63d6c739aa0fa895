package controllers

import (
	"net/http"

	"github.com/dawidtomczynski/Przemyslane-Zakupy/services"

	"github.com/gin-gonic/gin"
)

type ProductInput struct {
	Name  string `json:"name" binding:"required,max=64"`
	Price int64  `json:"price" binding:"min=0"`
	Kcal  int    `json:"kcal" binding:"min=0"`
	Type  uint   `json:"type" binding:"required"`
}

func ListProducts(c *gin.Context) {
	products, err := services.ListProducts()
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func GetProduct(c *gin.Context) {
	productID, ok := idParam(c, "product_id")
	if !ok {
		return
	}

	product, err := services.GetProduct(productID)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

func AddProduct(c *gin.Context) {
	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := services.CreateProduct(input.Name, input.Price, input.Kcal, input.Type)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"product": product})
}

func EditProduct(c *gin.Context) {
	productID, ok := idParam(c, "product_id")
	if !ok {
		return
	}

	if c.Request.Method == http.MethodGet {
		product, err := services.GetProduct(productID)
		if err != nil {
			serviceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"product": product})
		return
	}

	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := services.UpdateProduct(productID, input.Name, input.Price, input.Kcal, input.Type)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

func DeleteProduct(c *gin.Context) {
	productID, ok := idParam(c, "product_id")
	if !ok {
		return
	}

	if c.Request.Method == http.MethodGet {
		product, err := services.GetProduct(productID)
		if err != nil {
			serviceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"product": product, "confirm": "POST answer=" + deleteAnswer + " to delete"})
		return
	}

	var input deleteInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Answer != deleteAnswer {
		c.JSON(http.StatusOK, gin.H{"message": "deletion cancelled"})
		return
	}

	if err := services.DeleteProduct(productID); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}
