package reservation

import (
	"errors"
	"net/http"

	"roomdesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service  *Service
	accounts AccountStore
}

func NewHandler(service *Service, accounts AccountStore) *Handler {
	return &Handler{service: service, accounts: accounts}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/bookings")
	g.POST("", h.create)
	g.GET("", h.listMine)
	g.GET("/:id", h.get)
	g.POST("/:id/check-in", h.checkIn)
	rg.GET("/rates", h.rate)
}

func (h *Handler) create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	ctx := c.Request.Context()
	account, err := h.accounts.Find(ctx, c.GetString("account_id"))
	if err != nil || account == nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "unknown account")
		return
	}
	rate := h.service.CalculateHourlyRate(account)

	if req.RoomNumber == "" && req.Date == "" && req.StartTime == "" && req.EndTime == "" {
		b, err := h.service.CreateBooking(ctx, account, req.Hours, rate)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "booking creation failed")
			return
		}
		response.Success(c, http.StatusCreated, b)
		return
	}

	b, err := h.service.CreateRoomBooking(ctx, account, req.Hours, rate, req.RoomNumber, req.Date, req.StartTime, req.EndTime)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation), errors.Is(err, ErrRoomNumberRequired):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case errors.Is(err, ErrRoomNotFound):
			response.Error(c, http.StatusNotFound, "ROOM_NOT_FOUND", err.Error())
		case errors.Is(err, ErrRoomDisabled):
			response.Error(c, http.StatusConflict, "ROOM_DISABLED", err.Error())
		case errors.Is(err, ErrTimeConflict):
			response.Error(c, http.StatusConflict, "TIME_CONFLICT", err.Error())
		case errors.Is(err, ErrRoomUnavailable):
			response.Error(c, http.StatusConflict, "ROOM_UNAVAILABLE", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "booking creation failed")
		}
		return
	}
	response.Success(c, http.StatusCreated, b)
}

func (h *Handler) get(c *gin.Context) {
	b := h.service.FindBooking(c.Request.Context(), c.Param("id"))
	if b == nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "booking not found")
		return
	}
	response.Success(c, http.StatusOK, BookingView{
		Booking:       *b,
		DisplayStatus: h.service.DisplayStatus(c.Request.Context(), b),
	})
}

func (h *Handler) listMine(c *gin.Context) {
	ctx := c.Request.Context()
	account, err := h.accounts.Find(ctx, c.GetString("account_id"))
	if err != nil || account == nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "unknown account")
		return
	}

	bookings := h.service.ListByUserEmail(ctx, account.Email)
	views := make([]BookingView, 0, len(bookings))
	for i := range bookings {
		views = append(views, BookingView{
			Booking:       bookings[i],
			DisplayStatus: h.service.DisplayStatus(ctx, &bookings[i]),
		})
	}
	response.Success(c, http.StatusOK, views)
}

func (h *Handler) checkIn(c *gin.Context) {
	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}
	if !h.service.CheckIn(c.Request.Context(), c.Param("id"), req.Email) {
		response.Error(c, http.StatusConflict, "REJECTED", "check-in rejected")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"checked_in": true})
}

func (h *Handler) rate(c *gin.Context) {
	account, err := h.accounts.Find(c.Request.Context(), c.GetString("account_id"))
	if err != nil || account == nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "unknown account")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"hourly_rate": h.service.CalculateHourlyRate(account)})
}
