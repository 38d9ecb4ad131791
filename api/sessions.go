package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/service/selection"
	"github.com/Domenick1991/hotelbooking/internal/service/session"
	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	service session.SessionUseCase
}

func NewSessionHandler(service session.SessionUseCase) *SessionHandler {
	return &SessionHandler{service: service}
}

func (h *SessionHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.start)
	router.GET("/:id", h.get)
	router.PUT("/:id/dates", h.setDates)
	router.POST("/:id/dates/back", h.backToDates)
	router.PUT("/:id/rooms/:type", h.adjustRoom)
	router.PUT("/:id/food/:foodId", h.updateFood)
	router.GET("/:id/cart", h.cart)
	router.POST("/:id/submit", h.submit)
}

type startSessionRequest struct {
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
}

type setDatesRequest struct {
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
}

type adjustRoomRequest struct {
	Delta int `json:"delta"`
}

type updateFoodRequest struct {
	Quantity *int `json:"quantity"`
	Delta    *int `json:"delta"`
}

type sessionResponse struct {
	*session.View
	Warning string `json:"warning,omitempty"`
}

func (h *SessionHandler) start(c *gin.Context) {
	var req startSessionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	view, err := h.service.Start(c.Request.Context(), req.CheckInDate, req.CheckOutDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, sessionResponse{View: view})
}

func (h *SessionHandler) get(c *gin.Context) {
	view, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse{View: view})
}

func (h *SessionHandler) setDates(c *gin.Context) {
	var req setDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.service.SetDates(c.Request.Context(), c.Param("id"), req.CheckInDate, req.CheckOutDate)
	if err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse{View: view})
}

func (h *SessionHandler) backToDates(c *gin.Context) {
	view, err := h.service.BackToDates(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse{View: view})
}

func (h *SessionHandler) adjustRoom(c *gin.Context) {
	var req adjustRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, capped, err := h.service.AdjustRoomQuantity(c.Request.Context(), c.Param("id"), c.Param("type"), req.Delta)
	if err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse{View: view, Warning: string(capped)})
}

func (h *SessionHandler) updateFood(c *gin.Context) {
	foodID, ok := parseID(c, "foodId")
	if !ok {
		return
	}

	var req updateFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var view *session.View
	var capped selection.CapReason
	var err error
	switch {
	case req.Quantity != nil:
		view, capped, err = h.service.SetFoodQuantity(c.Request.Context(), c.Param("id"), foodID, *req.Quantity)
	case req.Delta != nil:
		view, capped, err = h.service.AdjustFoodQuantity(c.Request.Context(), c.Param("id"), foodID, *req.Delta)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "either quantity or delta is required"})
		return
	}
	if err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse{View: view, Warning: string(capped)})
}

func (h *SessionHandler) cart(c *gin.Context) {
	cart, err := h.service.Cart(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *SessionHandler) submit(c *gin.Context) {
	view, err := h.service.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse{View: view})
}

// respondFlowError maps engine errors onto HTTP statuses: unknown session is
// 404, a competing submission is 409, local guard violations are 400, and a
// failed external submission is 502.
func respondFlowError(c *gin.Context, err error) {
	var parseErr *time.ParseError
	switch {
	case errors.As(err, &parseErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, session.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, session.ErrSubmitInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, session.ErrNoRoomsSelected),
		errors.Is(err, session.ErrAmountExceedsLimit),
		errors.Is(err, session.ErrWrongStage),
		errors.Is(err, domain.ErrDatesMissing),
		errors.Is(err, domain.ErrCheckInPast),
		errors.Is(err, domain.ErrCheckOutNotAfter):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	}
}
