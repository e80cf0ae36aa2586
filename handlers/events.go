package handlers

import (
	"net/http"
	"strconv"
	"time"

	"eventvibe/models"
	"eventvibe/services/discovery"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EventsHandler exposes event discovery and joining over HTTP.
type EventsHandler struct {
	Svc discovery.DiscoveryService
}

// NewEventsHandler wires the handler to its service.
func NewEventsHandler(svc discovery.DiscoveryService) *EventsHandler {
	return &EventsHandler{Svc: svc}
}

// SearchHandler returns a filtered, sorted, paginated slice of the catalog.
// An empty result is a 200 with an empty list; catalog unavailability is 503.
func (h *EventsHandler) SearchHandler(c *gin.Context) {
	criteria := discovery.Criteria{
		Query:     c.Query("q"),
		Category:  c.Query("category"),
		State:     c.Query("state"),
		PriceKind: c.Query("price"),
		GroupSize: c.Query("groupSize"),
		AgeBand:   c.Query("ageBand"),
	}
	if interests, ok := c.GetQueryArray("interest"); ok {
		criteria.Interests = interests
	}
	if languages, ok := c.GetQueryArray("language"); ok {
		criteria.Languages = languages
	}
	if rawDate := c.Query("date"); rawDate != "" {
		date, err := time.Parse("2006-01-02", rawDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
			return
		}
		criteria.Date = &date
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	sortKey := discovery.SortKey(c.DefaultQuery("sort", string(discovery.SortDate)))

	result, err := h.Svc.SearchEvents(c.Request.Context(), criteria, sortKey, page, limit)
	if err != nil {
		if discovery.IsTransientFetchError(err) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Results unavailable, please retry"})
			return
		}
		getLogger(c).Error("Event search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetHandler returns one event with its availability state.
func (h *EventsHandler) GetHandler(c *gin.Context) {
	ev, availability, err := h.Svc.GetEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		if discovery.IsTransientFetchError(err) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Results unavailable, please retry"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"event":          ev,
		"availability":   availability,
		"availableSpots": ev.AvailableSpots(),
	})
}

// JoinHandler claims one spot on an event for the authenticated user.
func (h *EventsHandler) JoinHandler(c *gin.Context) {
	var req struct {
		Name   string `json:"name" binding:"required"`
		Avatar string `json:"avatar,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.Svc.JoinEvent(c.Request.Context(), c.Param("id"), models.JoinedUser{
		Name:   req.Name,
		Avatar: req.Avatar,
	})
	if err != nil {
		if discovery.IsCapacityError(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "This event is full"})
			return
		}
		if discovery.IsTransientFetchError(err) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Results unavailable, please retry"})
			return
		}
		getLogger(c).Error("Join failed", zap.String("eventID", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"event":          updated,
		"availability":   discovery.AvailabilityOf(*updated),
		"availableSpots": updated.AvailableSpots(),
	})
}
