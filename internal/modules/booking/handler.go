package booking

import (
	"net/http"

	"roomdesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	controller *Controller
}

func NewHandler(controller *Controller) *Handler {
	return &Handler{controller: controller}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/bookings")
	g.POST("/:id/cancel", h.cancel)
	g.POST("/:id/edit", h.edit)
	g.POST("/:id/extend", h.extend)
	g.POST("/undo", h.undo)
}

// The command engine reports every expected failure as a rejection, so the
// handlers map false to 409 without distinguishing causes.

func (h *Handler) cancel(c *gin.Context) {
	if !h.controller.CancelBooking(c.Request.Context(), c.Param("id")) {
		response.Error(c, http.StatusConflict, "REJECTED", "cancellation rejected")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"cancelled": true})
}

func (h *Handler) edit(c *gin.Context) {
	var req EditBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}
	params := EditParams{
		RoomNumber: req.RoomNumber,
		Date:       req.Date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
	}
	if !h.controller.EditBooking(c.Request.Context(), c.Param("id"), params) {
		response.Error(c, http.StatusConflict, "REJECTED", "edit rejected")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"updated": true})
}

func (h *Handler) extend(c *gin.Context) {
	var req ExtendBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}
	if !h.controller.ExtendBooking(c.Request.Context(), c.Param("id"), req.Hours) {
		response.Error(c, http.StatusConflict, "REJECTED", "extension rejected")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"updated": true})
}

func (h *Handler) undo(c *gin.Context) {
	if !h.controller.UndoLast(c.Request.Context()) {
		response.Error(c, http.StatusConflict, "REJECTED", "nothing to undo")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"undone": true})
}
