package api

import (
	"errors"
	"net/http"

	"github.com/dreamsourcil/booking/internal/catalog"
	"github.com/dreamsourcil/booking/internal/domain"
	"github.com/dreamsourcil/booking/internal/service/scheduling"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service scheduling.SchedulingUseCase
	catalog *catalog.Catalog
}

type createBookingRequest struct {
	Date      string `json:"date"`
	Time      string `json:"time"`
	ServiceID string `json:"service_id"`
}

type bookingResponse struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	EndTime  string `json:"end_time"`
	Duration int    `json:"duration"`
	Service  string `json:"service"`
}

func NewBookingHandler(service scheduling.SchedulingUseCase, cat *catalog.Catalog) *BookingHandler {
	return &BookingHandler{service: service, catalog: cat}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	start, err := domain.ParseTimeOfDay(req.Time)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	svc, ok := h.catalog.FindService(req.ServiceID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown service"})
		return
	}

	booking, err := h.service.Book(c.Request.Context(), scheduling.BookInput{
		Date:            date,
		Start:           start,
		DurationMinutes: svc.DurationMinutes,
		Service:         svc.Name,
	})
	if err != nil {
		status := statusForBookingError(err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, bookingResponse{
		Date:     booking.Date.String(),
		Time:     booking.Start.String(),
		EndTime:  booking.End().String(),
		Duration: booking.DurationMinutes,
		Service:  booking.Service,
	})
}

func statusForBookingError(err error) int {
	var storageErr *domain.StorageError
	switch {
	case errors.Is(err, domain.ErrSlotTaken):
		return http.StatusConflict
	case errors.Is(err, domain.ErrOutsideHours), errors.Is(err, domain.ErrClosedDay):
		return http.StatusUnprocessableEntity
	case errors.As(err, &storageErr):
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}
