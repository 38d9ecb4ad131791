package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/repository"
	"github.com/gin-gonic/gin"
)

const defaultHistoryLimit = 50

type HistoryHandler struct {
	repo repository.BookingHistoryRepository
}

func NewHistoryHandler(repo repository.BookingHistoryRepository) *HistoryHandler {
	return &HistoryHandler{repo: repo}
}

func (h *HistoryHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
}

type bookingResponse struct {
	ID           int64              `json:"id"`
	SessionID    string             `json:"sessionId"`
	BookingID    int64              `json:"bookingId"`
	RoomIDs      []int64            `json:"roomIds"`
	FoodItems    []domain.FoodOrder `json:"foodItems"`
	TotalAmount  int64              `json:"totalAmount"`
	Status       string             `json:"status"`
	CheckInDate  string             `json:"checkInDate"`
	CheckOutDate string             `json:"checkOutDate"`
	CreatedAt    string             `json:"createdAt"`
}

func (h *HistoryHandler) list(c *gin.Context) {
	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}

	bookings, err := h.repo.List(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, toBookingResponse(&b))
	}
	c.JSON(http.StatusOK, out)
}

func (h *HistoryHandler) get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	booking, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(booking))
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		ID:           b.ID,
		SessionID:    b.SessionID,
		BookingID:    b.ExternalID,
		RoomIDs:      b.RoomIDs,
		FoodItems:    b.FoodItems,
		TotalAmount:  b.TotalAmount,
		Status:       string(b.Status),
		CheckInDate:  b.CheckIn.Format(domain.DateLayout),
		CheckOutDate: b.CheckOut.Format(domain.DateLayout),
		CreatedAt:    b.CreatedAt.Format(time.RFC3339),
	}
}

func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
