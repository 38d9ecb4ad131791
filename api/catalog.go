package api

import (
	"net/http"

	"github.com/Domenick1991/hotelbooking/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	service catalog.CatalogUseCase
}

func NewCatalogHandler(service catalog.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{service: service}
}

func (h *CatalogHandler) Register(router *gin.RouterGroup) {
	router.GET("/rooms", h.rooms)
	router.GET("/rooms/groups", h.roomGroups)
	router.GET("/food", h.food)
	router.GET("/food/cuisines", h.cuisines)
}

type roomResponse struct {
	ID            int64  `json:"id"`
	RoomNumber    int    `json:"roomNumber"`
	RoomType      string `json:"roomType"`
	PricePerNight int64  `json:"pricePerNight"`
	Available     bool   `json:"available"`
}

type roomGroupResponse struct {
	Type           string `json:"type"`
	PricePerNight  int64  `json:"pricePerNight"`
	AvailableCount int    `json:"availableCount"`
	TotalCount     int    `json:"totalCount"`
}

type foodItemResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Cuisine string `json:"cuisine"`
	Price   int64  `json:"price"`
}

func (h *CatalogHandler) rooms(c *gin.Context) {
	rooms, err := h.service.Rooms(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	out := make([]roomResponse, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, roomResponse{
			ID:            r.ID,
			RoomNumber:    r.RoomNumber,
			RoomType:      r.RoomType,
			PricePerNight: r.PricePerNight,
			Available:     r.Available,
		})
	}
	c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) roomGroups(c *gin.Context) {
	groups, err := h.service.RoomGroups(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	out := make(map[string]roomGroupResponse, len(groups))
	for roomType, g := range groups {
		out[roomType] = roomGroupResponse{
			Type:           g.Type,
			PricePerNight:  g.PricePerNight,
			AvailableCount: g.AvailableCount,
			TotalCount:     g.TotalCount,
		}
	}
	c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) food(c *gin.Context) {
	items, err := h.service.Food(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	out := make([]foodItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, foodItemResponse{ID: item.ID, Name: item.Name, Cuisine: item.Cuisine, Price: item.Price})
	}
	c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) cuisines(c *gin.Context) {
	cuisines, err := h.service.Cuisines(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cuisines)
}
