package auth

import (
	"errors"
	"net/http"

	"roomdesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/auth")
	g.POST("/register", h.register)
	g.POST("/login", h.login)
}

// RegisterProtectedRoutes wires the routes that need an authenticated account.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/auth/me", h.me)
}

func (h *Handler) register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	account, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid registration data")
		case errors.Is(err, ErrEmailTaken):
			response.Error(c, http.StatusConflict, "EMAIL_TAKEN", "email already registered")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "registration failed")
		}
		return
	}
	response.Success(c, http.StatusCreated, account)
}

func (h *Handler) login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid email or password")
		case errors.Is(err, ErrAccountBlocked):
			response.Error(c, http.StatusForbidden, "ACCOUNT_BLOCKED", "account is blocked")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "login failed")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"account":      result.Account,
		"access_token": result.AccessToken,
	})
}

func (h *Handler) me(c *gin.Context) {
	account, err := h.service.CurrentAccount(c.Request.Context(), c.GetString("account_id"))
	if err != nil || account == nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "account not found")
		return
	}
	response.Success(c, http.StatusOK, account)
}
