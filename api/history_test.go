package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockHistoryRepository is a mock implementation of repository.BookingHistoryRepository
type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) Insert(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockHistoryRepository) List(ctx context.Context, limit int) ([]domain.Booking, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockHistoryRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func testBooking() domain.Booking {
	return domain.Booking{
		ID:          1,
		SessionID:   "s1",
		ExternalID:  42,
		RoomIDs:     []int64{5, 9},
		FoodItems:   []domain.FoodOrder{{FoodItemID: 1, Quantity: 2}},
		TotalAmount: 12700,
		Status:      domain.BookingStatusConfirmed,
		CheckIn:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:    time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
		CreatedAt:   time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestHistoryHandler_listServedAtGroupRoot(t *testing.T) {
	repo := &MockHistoryRepository{}
	handler := NewHistoryHandler(repo)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.Register(router.Group("/bookings"))

	repo.On("List", mock.Anything, defaultHistoryLimit).Return([]domain.Booking{testBooking()}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/bookings", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var response []bookingResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Len(t, response, 1)
	assert.Equal(t, int64(42), response[0].BookingID)
	assert.Equal(t, "2024-01-01", response[0].CheckInDate)

	repo.AssertExpectations(t)
}

func TestHistoryHandler_listInvalidLimit(t *testing.T) {
	repo := &MockHistoryRepository{}
	handler := NewHistoryHandler(repo)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.Register(router.Group("/bookings"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/bookings?limit=zero", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestHistoryHandler_get(t *testing.T) {
	repo := &MockHistoryRepository{}
	handler := NewHistoryHandler(repo)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "1"}}
	c.Request = httptest.NewRequest("GET", "/bookings/1", nil)

	booking := testBooking()
	repo.On("GetByID", c.Request.Context(), int64(1)).Return(&booking, nil)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response bookingResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "CONFIRMED", response.Status)

	repo.AssertExpectations(t)
}
