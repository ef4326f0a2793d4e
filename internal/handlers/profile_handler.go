package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/bookline/booking-api/internal/domain/booking"
	"github.com/bookline/booking-api/internal/httperr"
	"github.com/bookline/booking-api/internal/httpresp"
	"github.com/bookline/booking-api/internal/middleware"
	ucProfile "github.com/bookline/booking-api/internal/usecase/profile"
)

type ProfileHandler struct {
	getProfileUC    *ucProfile.GetProfile
	updateProfileUC *ucProfile.UpdateProfile
}

func NewProfileHandler(
	getProfileUC *ucProfile.GetProfile,
	updateProfileUC *ucProfile.UpdateProfile,
) *ProfileHandler {
	return &ProfileHandler{
		getProfileUC:    getProfileUC,
		updateProfileUC: updateProfileUC,
	}
}

type UpdateProfileRequest struct {
	Name        string `json:"name" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	email := c.MustGet(middleware.ContextClientEmail).(string)

	out, err := h.getProfileUC.Execute(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			httperr.NotFound(c, "user_not_found", "User not found")
			return
		}
		log.Println("profile error:", err)
		httperr.Internal(c, "failed_to_get_profile", "Internal Server Error")
		return
	}

	httpresp.OK(c, out)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextClientID).(uint)
	email := c.MustGet(middleware.ContextClientEmail).(string)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name and phone number are required.")
		return
	}

	err := h.updateProfileUC.Execute(c.Request.Context(), ucProfile.UpdateProfileInput{
		ClientID:    clientID,
		ClientEmail: email,
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		log.Println("profile update error:", err)
		httperr.Internal(c, "failed_to_update_client", "Internal Server Error")
		return
	}

	httpresp.Message(c, http.StatusOK, "Client information updated successfully.")
}
