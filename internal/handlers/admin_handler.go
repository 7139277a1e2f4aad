package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "brickshare/internal/errors"
	"brickshare/internal/services"
)

// AdminHandler handles admin aggregation and user-management requests.
type AdminHandler struct {
	adminService services.AdminServicer
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminService services.AdminServicer) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// UpdateUserStatusRequest represents the request payload for toggling a user
// between active and blocked.
type UpdateUserStatusRequest struct {
	Status string `json:"status" binding:"required,user_status"`
}

// GetStats handles the platform-wide statistics view.
func (h *AdminHandler) GetStats(c *gin.Context) {
	session, err := getSession(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	stats, err := h.adminService.GetPlatformStats(c.Request.Context(), session)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// GetUserInvestments handles the per-user investment detail view.
func (h *AdminHandler) GetUserInvestments(c *gin.Context) {
	session, err := getSession(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	userID, err := requireParam(c, "id", apperrors.ErrUserNotFound)
	if err != nil {
		respondWithError(c, err)
		return
	}

	view, err := h.adminService.GetUserInvestments(c.Request.Context(), session, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// UpdateUserStatus handles toggling a user's blocked state.
func (h *AdminHandler) UpdateUserStatus(c *gin.Context) {
	session, err := getSession(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	userID, err := requireParam(c, "id", apperrors.ErrUserNotFound)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.adminService.SetUserStatus(c.Request.Context(), session, userID, req.Status); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user_id": userID, "status": req.Status})
}
