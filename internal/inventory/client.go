package inventory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Domenick1991/hotelbooking/internal/domain"
)

// Client reads the room and food catalogs from the inventory service.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type roomDTO struct {
	ID            int64  `json:"id"`
	RoomNumber    int    `json:"roomNumber"`
	RoomType      string `json:"roomType"`
	PricePerNight int64  `json:"pricePerNight"`
	Available     bool   `json:"available"`
}

type foodItemDTO struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Cuisine string `json:"cuisine"`
	Price   int64  `json:"price"`
}

func (c *Client) Rooms(ctx context.Context) ([]domain.Room, error) {
	var dtos []roomDTO
	if err := c.getList(ctx, "/rooms", &dtos); err != nil {
		return nil, err
	}
	rooms := make([]domain.Room, 0, len(dtos))
	for _, d := range dtos {
		rooms = append(rooms, domain.Room{
			ID:            d.ID,
			RoomNumber:    d.RoomNumber,
			RoomType:      d.RoomType,
			PricePerNight: d.PricePerNight,
			Available:     d.Available,
		})
	}
	return rooms, nil
}

func (c *Client) Food(ctx context.Context) ([]domain.FoodItem, error) {
	var dtos []foodItemDTO
	if err := c.getList(ctx, "/food", &dtos); err != nil {
		return nil, err
	}
	items := make([]domain.FoodItem, 0, len(dtos))
	for _, d := range dtos {
		items = append(items, domain.FoodItem{
			ID:      d.ID,
			Name:    d.Name,
			Cuisine: d.Cuisine,
			Price:   d.Price,
		})
	}
	return items, nil
}

func (c *Client) getList(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("inventory request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("inventory request %s: unexpected status %d", path, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return decodeList(body, out)
}

// decodeList accepts either a bare JSON array or a paginated wrapper with a
// "content" field, so callers never branch on response shape.
func decodeList(body []byte, out interface{}) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(trimmed, out)
	}

	var wrapper struct {
		Content json.RawMessage `json:"content"`
	}
	if err := json.Unmarshal(trimmed, &wrapper); err != nil {
		return fmt.Errorf("decode inventory list: %w", err)
	}
	if wrapper.Content == nil {
		return fmt.Errorf("decode inventory list: neither array nor content wrapper")
	}
	return json.Unmarshal(wrapper.Content, out)
}
