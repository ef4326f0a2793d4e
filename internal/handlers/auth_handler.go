package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/bookline/booking-api/internal/audit"
	domain "github.com/bookline/booking-api/internal/domain/booking"
	"github.com/bookline/booking-api/internal/httperr"
	"github.com/bookline/booking-api/internal/models"
	"github.com/bookline/booking-api/internal/token"
	"github.com/bookline/booking-api/internal/validators"
)

type AuthHandler struct {
	repo   domain.Repository
	tokens *token.Service
	audit  audit.Recorder
}

func NewAuthHandler(
	repo domain.Repository,
	tokens *token.Service,
	dispatcher audit.Recorder,
) *AuthHandler {
	return &AuthHandler{
		repo:   repo,
		tokens: tokens,
		audit:  dispatcher,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	// Email é comparado exatamente como foi gravado; só tira espaço das
	// pontas, sem lower-case.
	email := strings.TrimSpace(req.Email)

	if !validators.IsEmailValid(email) {
		httperr.BadRequest(c, "invalid_email", "Email address is not valid.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Internal Server Error")
		return
	}

	client := models.Client{
		Name:         req.Name,
		Email:        email,
		PhoneNumber:  req.Phone,
		PasswordHash: string(hashed),
	}

	if err := h.repo.CreateClient(c.Request.Context(), &client); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			httperr.BadRequest(c, "email_already_exists", "Email already exists")
			return
		}
		log.Println("register error:", err)
		httperr.Internal(c, "failed_to_create_client", "Internal Server Error")
		return
	}

	h.audit.Dispatch(audit.Event{
		ClientID: &client.ID,
		Action:   "client_registered",
		Entity:   "client",
		EntityID: &client.ID,
	})

	c.JSON(http.StatusCreated, gin.H{"message": "Client successfully created."})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.TrimSpace(req.Email)

	// Email desconhecido e senha errada respondem igual, de propósito.
	client, err := h.repo.GetClientByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials")
			return
		}
		log.Println("login error:", err)
		httperr.Internal(c, "internal_error", "Internal Server Error")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(client.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials")
		return
	}

	accessToken, err := h.tokens.Issue(token.Identity{
		ID:    client.ID,
		Email: client.Email,
	})
	if err != nil {
		log.Println("token error:", err)
		httperr.Internal(c, "failed_to_generate_token", "Internal Server Error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"accessToken": accessToken})
}
