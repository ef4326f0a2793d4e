package handlers

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	domain "github.com/bookline/booking-api/internal/domain/booking"
	"github.com/bookline/booking-api/internal/dto"
	"github.com/bookline/booking-api/internal/httperr"
	"github.com/bookline/booking-api/internal/httpresp"
)

type ClientHandler struct {
	repo domain.Repository
}

func NewClientHandler(repo domain.Repository) *ClientHandler {
	return &ClientHandler{repo: repo}
}

// GetByEmail é a consulta pública de cliente: nome, email e telefone,
// nada além disso.
func (h *ClientHandler) GetByEmail(c *gin.Context) {
	email := c.Param("email")

	client, err := h.repo.GetClientByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			httperr.NotFound(c, "user_not_found", "User not found")
			return
		}
		log.Println("client lookup error:", err)
		httperr.Internal(c, "failed_to_get_client", "Internal Server Error")
		return
	}

	httpresp.OK(c, dto.ClientPublicDTO{
		Name:        client.Name,
		Email:       client.Email,
		PhoneNumber: client.PhoneNumber,
	})
}
