package repository

import (
	"context"
	"encoding/json"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingHistoryRepository interface {
	Insert(ctx context.Context, booking *domain.Booking) error
	List(ctx context.Context, limit int) ([]domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

type PGBookingHistoryRepository struct {
	db *pgxpool.Pool
}

func NewBookingHistoryRepository(db *pgxpool.Pool) BookingHistoryRepository {
	return &PGBookingHistoryRepository{db: db}
}

func (r *PGBookingHistoryRepository) Insert(ctx context.Context, booking *domain.Booking) error {
	foodItems, err := json.Marshal(booking.FoodItems)
	if err != nil {
		return err
	}

	return r.db.QueryRow(ctx, `INSERT INTO bookings (session_id, external_id, room_ids, food_items, total_amount, status, check_in, check_out)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`,
		booking.SessionID, booking.ExternalID, booking.RoomIDs, foodItems, booking.TotalAmount, booking.Status, booking.CheckIn, booking.CheckOut).
		Scan(&booking.ID, &booking.CreatedAt)
}

func (r *PGBookingHistoryRepository) List(ctx context.Context, limit int) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT id, session_id, external_id, room_ids, food_items, total_amount, status, check_in, check_out, created_at
		FROM bookings ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

func (r *PGBookingHistoryRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT id, session_id, external_id, room_ids, food_items, total_amount, status, check_in, check_out, created_at
		FROM bookings WHERE id=$1`, id)
	return scanBooking(row.Scan)
}

func scanBooking(scan func(dest ...any) error) (*domain.Booking, error) {
	var b domain.Booking
	var foodItems []byte
	if err := scan(&b.ID, &b.SessionID, &b.ExternalID, &b.RoomIDs, &foodItems, &b.TotalAmount, &b.Status, &b.CheckIn, &b.CheckOut, &b.CreatedAt); err != nil {
		return nil, err
	}
	if len(foodItems) > 0 {
		if err := json.Unmarshal(foodItems, &b.FoodItems); err != nil {
			return nil, err
		}
	}
	return &b, nil
}

var _ BookingHistoryRepository = (*PGBookingHistoryRepository)(nil)
