package rooms

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"roomdesk/internal/domain"
	"roomdesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires the read-only queries; RegisterAdminRoutes wires the
// mutating transitions, which the caller guards with a role middleware.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/rooms")
	g.GET("", h.list)
	g.GET("/:id", h.get)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/rooms")
	g.POST("", h.create)
	g.PUT("/:id/status", h.setStatus)
	g.POST("/:id/maintenance", h.transitionFunc((*Service).SetMaintenance))
	g.DELETE("/:id/maintenance", h.transitionFunc((*Service).ClearMaintenance))
	g.POST("/:id/no-show", h.transitionFunc((*Service).TriggerNoShow))
	g.POST("/:id/check-out", h.transitionFunc((*Service).CheckOut))
	g.POST("/:id/release", h.transitionFunc((*Service).CancelBooking))
}

func (h *Handler) list(c *gin.Context) {
	ctx := c.Request.Context()

	if condition := c.Query("condition"); condition != "" {
		response.Success(c, http.StatusOK, h.service.ListByCondition(ctx, domain.RoomCondition(condition)))
		return
	}
	if status := c.Query("status"); status != "" {
		response.Success(c, http.StatusOK, h.service.ListByStatus(ctx, domain.RoomStatus(status)))
		return
	}
	if building := c.Query("building"); building != "" {
		response.Success(c, http.StatusOK, h.service.ListByBuilding(ctx, building))
		return
	}
	if capStr := c.Query("min_capacity"); capStr != "" {
		capacity, err := strconv.Atoi(capStr)
		if err != nil || capacity <= 0 {
			response.Error(c, http.StatusBadRequest, "INVALID_CAPACITY", "min_capacity must be a positive integer")
			return
		}
		response.Success(c, http.StatusOK, h.service.ListByMinCapacity(ctx, capacity))
		return
	}
	response.Success(c, http.StatusOK, h.service.ListAll(ctx))
}

func (h *Handler) get(c *gin.Context) {
	room, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "room not found")
		return
	}
	response.Success(c, http.StatusOK, room)
}

func (h *Handler) create(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	room, err := h.service.Create(c.Request.Context(), req.Building, req.Number, req.Capacity)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid room data")
		case errors.Is(err, ErrLocationTaken):
			response.Error(c, http.StatusConflict, "LOCATION_TAKEN", "a room with this building and number exists")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "room creation failed")
		}
		return
	}
	response.Success(c, http.StatusCreated, room)
}

func (h *Handler) setStatus(c *gin.Context) {
	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}
	if !h.service.SetStatus(c.Request.Context(), c.Param("id"), domain.RoomStatus(req.Status)) {
		response.Error(c, http.StatusConflict, "REJECTED", "status change rejected")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"updated": true})
}

// transitionFunc adapts a boolean transition method into a handler that
// maps rejection to 409.
func (h *Handler) transitionFunc(op func(*Service, context.Context, string) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !op(h.service, c.Request.Context(), c.Param("id")) {
			response.Error(c, http.StatusConflict, "REJECTED", "transition rejected")
			return
		}
		response.Success(c, http.StatusOK, gin.H{"updated": true})
	}
}
