package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/Domenick1991/hotelbooking/internal/bookingapi"
	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/kafka"
	"github.com/Domenick1991/hotelbooking/internal/service/pricing"
	"github.com/Domenick1991/hotelbooking/internal/service/selection"
	"github.com/google/uuid"
)

type SessionUseCase interface {
	Start(ctx context.Context, checkIn, checkOut string) (*View, error)
	Get(ctx context.Context, id string) (*View, error)
	SetDates(ctx context.Context, id, checkIn, checkOut string) (*View, error)
	BackToDates(ctx context.Context, id string) (*View, error)
	AdjustRoomQuantity(ctx context.Context, id, roomType string, delta int) (*View, selection.CapReason, error)
	SetFoodQuantity(ctx context.Context, id string, foodID int64, quantity int) (*View, selection.CapReason, error)
	AdjustFoodQuantity(ctx context.Context, id string, foodID int64, delta int) (*View, selection.CapReason, error)
	Cart(ctx context.Context, id string) (*Cart, error)
	Submit(ctx context.Context, id string) (*View, error)
}

type Catalog interface {
	RoomGroups(ctx context.Context) (map[string]domain.RoomTypeGroup, error)
	Food(ctx context.Context) ([]domain.FoodItem, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type HistoryWriter interface {
	Insert(ctx context.Context, booking *domain.Booking) error
}

type SnapshotCache interface {
	GetSession(ctx context.Context, id string) (*domain.SessionSnapshot, error)
	SetSession(ctx context.Context, snap domain.SessionSnapshot) error
	DeleteSession(ctx context.Context, id string) error
}

// View is the read model handed to the transport layer.
type View struct {
	ID             string           `json:"id"`
	Stage          domain.FlowStage `json:"stage"`
	CheckInDate    string           `json:"checkInDate,omitempty"`
	CheckOutDate   string           `json:"checkOutDate,omitempty"`
	Nights         int              `json:"nights"`
	RoomQuantities map[string]int   `json:"roomQuantities"`
	FoodQuantities map[int64]int    `json:"foodQuantities"`
	BookingID      int64            `json:"bookingId,omitempty"`
	LastError      string           `json:"lastError,omitempty"`
}

type CartRoomLine struct {
	RoomType      string `json:"roomType"`
	PricePerNight int64  `json:"pricePerNight"`
	Quantity      int    `json:"quantity"`
	Subtotal      int64  `json:"subtotal"`
}

type CartFoodLine struct {
	FoodItemID int64  `json:"foodItemId"`
	Name       string `json:"name"`
	UnitPrice  int64  `json:"unitPrice"`
	Quantity   int    `json:"quantity"`
	Subtotal   int64  `json:"subtotal"`
}

type Cart struct {
	Rooms []CartRoomLine `json:"rooms"`
	Food  []CartFoodLine `json:"food"`
	Quote pricing.Quote  `json:"quote"`
}

type SessionService struct {
	store              *Store
	catalog            Catalog
	submitter          bookingapi.Submitter
	producer           Producer
	history            HistoryWriter
	snapshots          SnapshotCache
	maxPerItem         int
	maxBookingAmount   int64
	bookingTopic       string
	notificationsTopic string
	now                func() time.Time
}

type SessionServiceOption func(*SessionService)

func WithProducer(producer Producer, bookingTopic, notificationsTopic string) SessionServiceOption {
	return func(s *SessionService) {
		s.producer = producer
		s.bookingTopic = bookingTopic
		s.notificationsTopic = notificationsTopic
	}
}

func WithHistory(history HistoryWriter) SessionServiceOption {
	return func(s *SessionService) {
		s.history = history
	}
}

func WithSnapshots(snapshots SnapshotCache) SessionServiceOption {
	return func(s *SessionService) {
		s.snapshots = snapshots
	}
}

func WithNow(now func() time.Time) SessionServiceOption {
	return func(s *SessionService) {
		s.now = now
	}
}

func NewSessionService(
	store *Store,
	catalog Catalog,
	submitter bookingapi.Submitter,
	maxPerItem int,
	maxBookingAmount int64,
	opts ...SessionServiceOption,
) *SessionService {
	service := &SessionService{
		store:            store,
		catalog:          catalog,
		submitter:        submitter,
		maxPerItem:       maxPerItem,
		maxBookingAmount: maxBookingAmount,
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Start opens a new session. When a pre-validated date range is carried over
// from a prior step the flow enters directly at item selection; otherwise it
// begins at date entry.
func (s *SessionService) Start(ctx context.Context, checkIn, checkOut string) (*View, error) {
	sess := &Session{
		ID:        uuid.NewString(),
		Stage:     domain.StageDateEntry,
		Selection: selection.New(s.maxPerItem),
		CreatedAt: s.now(),
	}

	if checkIn != "" || checkOut != "" {
		stay, err := domain.ParseStayRange(checkIn, checkOut)
		if err != nil {
			return nil, err
		}
		if err := stay.Validate(s.now()); err != nil {
			return nil, err
		}
		sess.Stay = stay
		sess.Stage = domain.StageItemSelection
	}

	if err := s.store.Put(ctx, "start_session", sess); err != nil {
		return nil, err
	}
	s.saveSnapshot(ctx, sess.Snapshot())
	return viewOf(sess), nil
}

func (s *SessionService) Get(ctx context.Context, id string) (*View, error) {
	view, err := s.view(ctx, id)
	if errors.Is(err, ErrSessionNotFound) {
		return s.rehydrate(ctx, id)
	}
	return view, err
}

// SetDates drives the date-entry gate. On a validation failure the stage is
// unchanged and the reason is returned to the caller.
func (s *SessionService) SetDates(ctx context.Context, id, checkIn, checkOut string) (*View, error) {
	stay, err := domain.ParseStayRange(checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if err := stay.Validate(s.now()); err != nil {
		return nil, err
	}

	var snap domain.SessionSnapshot
	err = s.store.Update(ctx, "set_dates", id, func(sess *Session) error {
		if sess.Stage == domain.StageSubmitting {
			return ErrSubmitInFlight
		}
		sess.Stay = stay
		sess.Stage = domain.StageItemSelection
		sess.LastError = ""
		snap = sess.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.saveSnapshot(ctx, snap)
	return s.view(ctx, id)
}

// BackToDates is always permitted from item selection. The selection is
// preserved so the guest does not lose the cart when revising dates.
func (s *SessionService) BackToDates(ctx context.Context, id string) (*View, error) {
	var snap domain.SessionSnapshot
	err := s.store.Update(ctx, "back_to_dates", id, func(sess *Session) error {
		if sess.Stage == domain.StageSubmitting {
			return ErrSubmitInFlight
		}
		sess.Stage = domain.StageDateEntry
		snap = sess.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.saveSnapshot(ctx, snap)
	return s.view(ctx, id)
}

func (s *SessionService) AdjustRoomQuantity(ctx context.Context, id, roomType string, delta int) (*View, selection.CapReason, error) {
	groups, err := s.catalog.RoomGroups(ctx)
	if err != nil {
		return nil, selection.CapNone, err
	}
	available := groups[roomType].AvailableCount

	var reason selection.CapReason
	var snap domain.SessionSnapshot
	err = s.store.Update(ctx, "adjust_room_quantity", id, func(sess *Session) error {
		if sess.Stage != domain.StageItemSelection {
			return ErrWrongStage
		}
		reason = sess.Selection.AdjustRoomQuantity(roomType, delta, available)
		snap = sess.Snapshot()
		return nil
	})
	if err != nil {
		return nil, selection.CapNone, err
	}
	s.saveSnapshot(ctx, snap)
	view, err := s.view(ctx, id)
	return view, reason, err
}

func (s *SessionService) SetFoodQuantity(ctx context.Context, id string, foodID int64, quantity int) (*View, selection.CapReason, error) {
	return s.updateFood(ctx, "set_food_quantity", id, func(sel *selection.Selection) selection.CapReason {
		return sel.SetFoodQuantity(foodID, quantity)
	})
}

func (s *SessionService) AdjustFoodQuantity(ctx context.Context, id string, foodID int64, delta int) (*View, selection.CapReason, error) {
	return s.updateFood(ctx, "adjust_food_quantity", id, func(sel *selection.Selection) selection.CapReason {
		return sel.AdjustFoodQuantity(foodID, delta)
	})
}

func (s *SessionService) updateFood(ctx context.Context, name, id string, mutate func(sel *selection.Selection) selection.CapReason) (*View, selection.CapReason, error) {
	var reason selection.CapReason
	var snap domain.SessionSnapshot
	err := s.store.Update(ctx, name, id, func(sess *Session) error {
		if sess.Stage != domain.StageItemSelection {
			return ErrWrongStage
		}
		reason = mutate(sess.Selection)
		snap = sess.Snapshot()
		return nil
	})
	if err != nil {
		return nil, selection.CapNone, err
	}
	s.saveSnapshot(ctx, snap)
	view, err := s.view(ctx, id)
	return view, reason, err
}

// Cart prices the current selection and lists the selected line items. It is
// a view over item selection, not a distinct flow stage.
func (s *SessionService) Cart(ctx context.Context, id string) (*Cart, error) {
	groups, err := s.catalog.RoomGroups(ctx)
	if err != nil {
		return nil, err
	}
	food, err := s.catalog.Food(ctx)
	if err != nil {
		return nil, err
	}

	var cart *Cart
	err = s.store.Update(ctx, "read_cart", id, func(sess *Session) error {
		cart = buildCart(groups, food, sess)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// Submit runs the item-selection gate, allocates concrete rooms, and hands
// the request to the booking endpoint. On failure the flow returns to item
// selection with the cart intact so the guest can retry.
func (s *SessionService) Submit(ctx context.Context, id string) (*View, error) {
	groups, err := s.catalog.RoomGroups(ctx)
	if err != nil {
		return nil, err
	}
	food, err := s.catalog.Food(ctx)
	if err != nil {
		return nil, err
	}

	var req domain.BookingRequest
	var total int64
	var stay domain.StayRange
	err = s.store.Update(ctx, "begin_submit", id, func(sess *Session) error {
		if sess.Stage == domain.StageSubmitting {
			return ErrSubmitInFlight
		}
		if sess.Stage != domain.StageItemSelection {
			return ErrWrongStage
		}
		if sess.Selection.RoomCount() == 0 {
			return ErrNoRoomsSelected
		}
		quote := pricing.CalculateQuote(groups, food, sess.Selection, sess.Stay)
		if quote.Total > s.maxBookingAmount {
			return ErrAmountExceedsLimit
		}

		roomIDs := domain.AllocateRooms(sess.Selection.RoomQuantities(), groups)
		req = domain.BookingRequest{
			RoomIDs:      roomIDs,
			FoodItems:    foodOrders(sess.Selection.FoodQuantities()),
			CheckInDate:  sess.Stay.CheckIn.Format(domain.DateLayout),
			CheckOutDate: sess.Stay.CheckOut.Format(domain.DateLayout),
		}
		total = quote.Total
		stay = sess.Stay
		sess.Stage = domain.StageSubmitting
		sess.LastError = ""
		return nil
	})
	if err != nil {
		return nil, err
	}

	result, submitErr := s.submitter.Submit(ctx, req)

	var snap domain.SessionSnapshot
	err = s.store.Update(ctx, "complete_submit", id, func(sess *Session) error {
		if submitErr != nil {
			sess.Stage = domain.StageItemSelection
			sess.LastError = submitErr.Error()
		} else {
			sess.Stage = domain.StageConfirmed
			sess.BookingID = result.BookingID
			sess.Selection.Reset()
		}
		snap = sess.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}
	if submitErr == nil {
		// a confirmed flow is over; the snapshot has nothing left to rehydrate
		s.dropSnapshot(ctx, id)
	} else {
		s.saveSnapshot(ctx, snap)
	}

	booking := &domain.Booking{
		SessionID:   id,
		RoomIDs:     req.RoomIDs,
		FoodItems:   req.FoodItems,
		TotalAmount: total,
		CheckIn:     stay.CheckIn,
		CheckOut:    stay.CheckOut,
	}
	if submitErr != nil {
		booking.Status = domain.BookingStatusFailed
		s.recordOutcome(ctx, "booking_failed", booking)
		return nil, fmt.Errorf("booking submission failed: %w", submitErr)
	}

	booking.ExternalID = result.BookingID
	booking.Status = domain.BookingStatusConfirmed
	s.recordOutcome(ctx, "booking_confirmed", booking)
	return s.view(ctx, id)
}

func (s *SessionService) recordOutcome(ctx context.Context, eventType string, booking *domain.Booking) {
	if s.history != nil {
		if err := s.history.Insert(ctx, booking); err != nil {
			log.Printf("WARNING: failed to record booking history for session %s: %v", booking.SessionID, err)
		}
	}
	s.publish(ctx, eventType, booking)
}

func (s *SessionService) publish(ctx context.Context, eventType string, booking *domain.Booking) {
	if s.producer == nil || s.bookingTopic == "" {
		return
	}
	event := kafka.BookingEvent{
		Type:         eventType,
		SessionID:    booking.SessionID,
		BookingID:    booking.ExternalID,
		RoomIDs:      booking.RoomIDs,
		Total:        booking.TotalAmount,
		Status:       string(booking.Status),
		CheckInDate:  booking.CheckIn.Format(domain.DateLayout),
		CheckOutDate: booking.CheckOut.Format(domain.DateLayout),
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, booking.SessionID, event); err != nil {
		log.Printf("WARNING: failed to publish %s event for session %s: %v", eventType, booking.SessionID, err)
		return
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, booking.SessionID, event); err != nil {
			log.Printf("WARNING: failed to publish %s notification for session %s: %v", eventType, booking.SessionID, err)
		}
	}
}

// rehydrate rebuilds a session from its cached snapshot. A snapshot caught
// mid-submission collapses back to item selection; the in-flight request is
// not resumable.
func (s *SessionService) rehydrate(ctx context.Context, id string) (*View, error) {
	if s.snapshots == nil {
		return nil, ErrSessionNotFound
	}
	snap, err := s.snapshots.GetSession(ctx, id)
	if err != nil || snap == nil {
		return nil, ErrSessionNotFound
	}

	stay, err := domain.ParseStayRange(snap.CheckInDate, snap.CheckOutDate)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	sess := &Session{
		ID:        snap.ID,
		Stage:     snap.Stage,
		Stay:      stay,
		Selection: selection.New(s.maxPerItem),
		LastError: snap.LastError,
		CreatedAt: snap.CreatedAt,
	}
	sess.Selection.Restore(snap.RoomQuantities, snap.FoodQuantities)
	if sess.Stage == domain.StageSubmitting {
		sess.Stage = domain.StageItemSelection
	}

	if err := s.store.Put(ctx, "rehydrate_session", sess); err != nil {
		return nil, err
	}
	return viewOf(sess), nil
}

func (s *SessionService) view(ctx context.Context, id string) (*View, error) {
	var view *View
	err := s.store.Update(ctx, "read_session", id, func(sess *Session) error {
		view = viewOf(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (s *SessionService) saveSnapshot(ctx context.Context, snap domain.SessionSnapshot) {
	if s.snapshots == nil {
		return
	}
	if err := s.snapshots.SetSession(ctx, snap); err != nil {
		log.Printf("WARNING: failed to snapshot session %s: %v", snap.ID, err)
	}
}

func (s *SessionService) dropSnapshot(ctx context.Context, id string) {
	if s.snapshots == nil {
		return
	}
	if err := s.snapshots.DeleteSession(ctx, id); err != nil {
		log.Printf("WARNING: failed to drop snapshot for session %s: %v", id, err)
	}
}

func viewOf(sess *Session) *View {
	view := &View{
		ID:             sess.ID,
		Stage:          sess.Stage,
		Nights:         sess.Stay.Nights(),
		RoomQuantities: sess.Selection.RoomQuantities(),
		FoodQuantities: sess.Selection.FoodQuantities(),
		BookingID:      sess.BookingID,
		LastError:      sess.LastError,
	}
	if !sess.Stay.CheckIn.IsZero() {
		view.CheckInDate = sess.Stay.CheckIn.Format(domain.DateLayout)
	}
	if !sess.Stay.CheckOut.IsZero() {
		view.CheckOutDate = sess.Stay.CheckOut.Format(domain.DateLayout)
	}
	return view
}

func buildCart(groups map[string]domain.RoomTypeGroup, food []domain.FoodItem, sess *Session) *Cart {
	quote := pricing.CalculateQuote(groups, food, sess.Selection, sess.Stay)

	nights := int64(quote.Nights)
	if nights == 0 {
		nights = 1
	}

	cart := &Cart{Quote: quote}
	for roomType, qty := range sess.Selection.RoomQuantities() {
		group, ok := groups[roomType]
		if !ok {
			continue
		}
		cart.Rooms = append(cart.Rooms, CartRoomLine{
			RoomType:      roomType,
			PricePerNight: group.PricePerNight,
			Quantity:      qty,
			Subtotal:      group.PricePerNight * int64(qty) * nights,
		})
	}

	foodByID := make(map[int64]domain.FoodItem, len(food))
	for _, item := range food {
		foodByID[item.ID] = item
	}
	for foodID, qty := range sess.Selection.FoodQuantities() {
		item, ok := foodByID[foodID]
		if !ok {
			continue
		}
		cart.Food = append(cart.Food, CartFoodLine{
			FoodItemID: foodID,
			Name:       item.Name,
			UnitPrice:  item.Price,
			Quantity:   qty,
			Subtotal:   item.Price * int64(qty),
		})
	}

	sort.Slice(cart.Rooms, func(i, j int) bool { return cart.Rooms[i].RoomType < cart.Rooms[j].RoomType })
	sort.Slice(cart.Food, func(i, j int) bool { return cart.Food[i].FoodItemID < cart.Food[j].FoodItemID })
	return cart
}

func foodOrders(quantities map[int64]int) []domain.FoodOrder {
	orders := make([]domain.FoodOrder, 0, len(quantities))
	for foodID, qty := range quantities {
		orders = append(orders, domain.FoodOrder{FoodItemID: foodID, Quantity: qty})
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].FoodItemID < orders[j].FoodItemID })
	return orders
}

var _ SessionUseCase = (*SessionService)(nil)
