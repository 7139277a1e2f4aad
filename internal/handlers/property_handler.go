package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "brickshare/internal/errors"
	"brickshare/internal/pagination"
	"brickshare/internal/services"
)

// PropertyHandler handles catalog and purchase requests.
type PropertyHandler struct {
	propertyService services.PropertyServicer
}

// NewPropertyHandler creates a new PropertyHandler.
func NewPropertyHandler(propertyService services.PropertyServicer) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

// PurchaseRequest represents the request payload for purchasing slots.
type PurchaseRequest struct {
	Slots int `json:"slots" binding:"required,gt=0"`
}

// ListProperties handles listing the catalog with derived availability.
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	session, err := getSession(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.propertyService.ListProperties(c.Request.Context(), session, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetProperty handles fetching a single property by id.
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	session, err := getSession(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := requireParam(c, "id", apperrors.ErrPropertyUnavailable)
	if err != nil {
		respondWithError(c, err)
		return
	}

	view, err := h.propertyService.GetProperty(c.Request.Context(), session, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"property": view})
}

// GetPropertyBySlug handles fetching a single property by its URL slug.
func (h *PropertyHandler) GetPropertyBySlug(c *gin.Context) {
	session, err := getSession(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	slug, err := requireParam(c, "slug", apperrors.ErrPropertyUnavailable)
	if err != nil {
		respondWithError(c, err)
		return
	}

	view, err := h.propertyService.GetPropertyBySlug(c.Request.Context(), session, slug)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"property": view})
}

// Purchase handles buying slots of a property. Preconditions are evaluated
// against a fresh fetch and every failure state has its own error code, so a
// sold-out property, a priceless property, and a missing property each render
// distinct guidance.
func (h *PropertyHandler) Purchase(c *gin.Context) {
	session, err := getSession(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	propertyID, err := requireParam(c, "id", apperrors.ErrPropertyUnavailable)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	record, err := h.propertyService.Purchase(c.Request.Context(), session, propertyID, req.Slots)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": record})
}
