package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/dreamsourcil/booking/internal/catalog"
	"github.com/dreamsourcil/booking/internal/domain"
	"github.com/dreamsourcil/booking/internal/service/scheduling"
	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	service scheduling.SchedulingUseCase
	catalog *catalog.Catalog
}

type slotItem struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

func NewScheduleHandler(service scheduling.SchedulingUseCase, cat *catalog.Catalog) *ScheduleHandler {
	return &ScheduleHandler{service: service, catalog: cat}
}

func (h *ScheduleHandler) Register(router *gin.RouterGroup) {
	router.GET("/days", h.days)
	router.GET("/slots", h.slots)
}

func (h *ScheduleHandler) days(c *gin.Context) {
	today := domain.DateOf(time.Now())
	days := h.service.CandidateDays(today)

	out := make([]string, 0, len(days))
	for _, d := range days {
		out = append(out, d.String())
	}
	c.JSON(http.StatusOK, gin.H{"days": out})
}

func (h *ScheduleHandler) slots(c *gin.Context) {
	date, err := domain.ParseDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	duration, err := h.resolveDuration(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slots, err := h.service.Slots(c.Request.Context(), date, duration)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]slotItem, 0, len(slots))
	for _, s := range slots {
		out = append(out, slotItem{Time: s.Start.String(), Available: s.Available})
	}
	c.JSON(http.StatusOK, gin.H{"date": date.String(), "duration": duration, "slots": out})
}

// Duration comes either from a catalog service id or directly in minutes.
func (h *ScheduleHandler) resolveDuration(c *gin.Context) (int, error) {
	if id := c.Query("service_id"); id != "" {
		svc, ok := h.catalog.FindService(id)
		if !ok {
			return 0, errors.New("unknown service")
		}
		return svc.DurationMinutes, nil
	}
	duration, err := strconv.Atoi(c.Query("duration"))
	if err != nil || duration <= 0 {
		return 0, errors.New("duration must be a positive number of minutes")
	}
	return duration, nil
}
