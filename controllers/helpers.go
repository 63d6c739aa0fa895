package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dawidtomczynski/Przemyslane-Zakupy/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// The literal answer a delete confirmation must carry; anything else
// cancels the deletion.
const deleteAnswer = "yes"

type deleteInput struct {
	Answer string `json:"answer"`
}

// serviceError maps service failures onto the response contract: missing
// entities are 404, ownership violations come back as a plain message with
// status 200, everything else is a 500.
func serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, services.ErrNotOwner):
		c.JSON(http.StatusOK, gin.H{"message": "only the owner can modify this resource"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return 0, false
	}
	return uint(id), true
}
