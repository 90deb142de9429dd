package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Weryck-Lemos/ElectroStock/internal/services"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto the HTTP taxonomy: not-found 404,
// bad credentials 401, conflicts (duplicates, delete guards, stock shortfall,
// bad transitions) 409, everything else about input shape 400, unknown 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrCategoryNotFound),
		errors.Is(err, services.ErrItemNotFound),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrOrderItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})

	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrEmailReserved),
		errors.Is(err, services.ErrAdminProtected),
		errors.Is(err, services.ErrCategoryExists),
		errors.Is(err, services.ErrCategoryHasItems),
		errors.Is(err, services.ErrItemReferenced),
		errors.Is(err, services.ErrInsufficientStock),
		errors.Is(err, services.ErrOrderNotPending),
		errors.Is(err, services.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	case errors.Is(err, services.ErrEmptyOrder),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrInvalidStock):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
