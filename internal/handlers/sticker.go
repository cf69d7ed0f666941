package handlers

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tomplanche/vps-back/internal/database"
	"github.com/tomplanche/vps-back/internal/models"
	"github.com/tomplanche/vps-back/internal/pagination"
	"github.com/tomplanche/vps-back/internal/response"
	"gorm.io/gorm"
)

type StickerHandler struct{}

func NewStickerHandler() *StickerHandler {
	return &StickerHandler{}
}

// StickerRequest is the payload for creating a sticker.
type StickerRequest struct {
	Name      string   `json:"name" validate:"required"`
	Latitude  float64  `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64  `json:"longitude" validate:"gte=-180,lte=180"`
	PlaceName string   `json:"place_name" validate:"required"`
	Pictures  []string `json:"pictures"`
}

// StickerResponse is the external view of a sticker, with the pictures JSON
// column decoded into a string list.
type StickerResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	PlaceName string    `json:"place_name"`
	Pictures  []string  `json:"pictures"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toStickerResponse(model *models.Sticker) (*StickerResponse, error) {
	pictures := []string{}
	if len(model.Pictures) > 0 {
		if err := json.Unmarshal(model.Pictures, &pictures); err != nil {
			return nil, err
		}
	}

	return &StickerResponse{
		ID:        model.ID,
		Name:      model.Name,
		Latitude:  model.Latitude,
		Longitude: model.Longitude,
		PlaceName: model.PlaceName,
		Pictures:  pictures,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}, nil
}

// List returns all stickers, newest first, paginated.
func (h *StickerHandler) List(c *fiber.Ctx) error {
	params := pagination.FromCtx(c)

	var total int64
	if err := database.DB.Model(&models.Sticker{}).Count(&total).Error; err != nil {
		return response.Internal(c, err, "Failed to count stickers")
	}

	var rows []models.Sticker
	err := database.DB.Order("created_at DESC").
		Offset(params.Offset()).
		Limit(params.Limit).
		Find(&rows).Error
	if err != nil {
		return response.Internal(c, err, "Failed to fetch stickers")
	}

	stickers := make([]*StickerResponse, 0, len(rows))
	for i := range rows {
		sticker, err := toStickerResponse(&rows[i])
		if err != nil {
			return response.Internal(c, err, "Failed to decode sticker pictures")
		}
		stickers = append(stickers, sticker)
	}

	meta := pagination.NewMetadata(params, total, "/secure/stickers")

	return response.DataWithMetadata(c, fiber.Map{"stickers": stickers}, meta)
}

// Get returns a single sticker by ID.
func (h *StickerHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Sticker ID must be a number")
	}

	var model models.Sticker
	if err := database.DB.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Sticker not found")
		}
		return response.Internal(c, err, "Failed to fetch sticker")
	}

	sticker, err := toStickerResponse(&model)
	if err != nil {
		return response.Internal(c, err, "Failed to decode sticker pictures")
	}

	return response.Data(c, fiber.Map{"sticker": sticker})
}

// Create stores a new sticker.
func (h *StickerHandler) Create(c *fiber.Ctx) error {
	var req StickerRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return response.BadRequest(c, "Invalid sticker payload")
	}

	if req.Pictures == nil {
		req.Pictures = []string{}
	}
	pictures, err := json.Marshal(req.Pictures)
	if err != nil {
		return response.Internal(c, err, "Failed to encode sticker pictures")
	}

	model := models.Sticker{
		Name:      req.Name,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		PlaceName: req.PlaceName,
		Pictures:  pictures,
	}
	if err := database.DB.Create(&model).Error; err != nil {
		return response.Internal(c, err, "Failed to create sticker")
	}

	sticker, err := toStickerResponse(&model)
	if err != nil {
		return response.Internal(c, err, "Failed to decode sticker pictures")
	}

	return response.Data(c, fiber.Map{"sticker": sticker})
}
