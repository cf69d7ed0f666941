package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tomplanche/vps-back/internal/database"
	"github.com/tomplanche/vps-back/internal/models"
	"github.com/tomplanche/vps-back/internal/pagination"
	"github.com/tomplanche/vps-back/internal/response"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SourceHandler struct{}

func NewSourceHandler() *SourceHandler {
	return &SourceHandler{}
}

// SourceRequest is the payload for incrementing a source counter.
type SourceRequest struct {
	Source string `json:"source" validate:"required"`
}

// Increment bumps the counter for the named source, creating it with count=1
// on first use, and returns the new total.
func (h *SourceHandler) Increment(c *fiber.Ctx) error {
	var req SourceRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return response.BadRequest(c, "Source name is required")
	}

	// Atomic insert-or-increment keyed on the unique source name.
	row := &models.Source{Name: req.Source, Count: 1}
	err := database.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "name"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"count":      gorm.Expr("count + ?", 1),
			"updated_at": time.Now().UTC(),
		}),
	}).Create(row).Error
	if err != nil {
		return response.Internal(c, err, "Failed to increment source counter")
	}

	var current models.Source
	if err := database.DB.Where("name = ?", req.Source).First(&current).Error; err != nil {
		return response.Internal(c, err, "Failed to fetch updated source count")
	}

	return response.Data(c, fiber.Map{
		current.Name: current.Count,
	})
}

// List returns all source counters as a name -> count map, paginated and
// ordered by name.
func (h *SourceHandler) List(c *fiber.Ctx) error {
	params := pagination.FromCtx(c)

	var total int64
	if err := database.DB.Model(&models.Source{}).Count(&total).Error; err != nil {
		return response.Internal(c, err, "Failed to count sources")
	}

	var sources []models.Source
	err := database.DB.Order("name ASC").
		Offset(params.Offset()).
		Limit(params.Limit).
		Find(&sources).Error
	if err != nil {
		return response.Internal(c, err, "Failed to fetch sources")
	}

	counts := make(fiber.Map, len(sources))
	for _, source := range sources {
		counts[source.Name] = source.Count
	}

	meta := pagination.NewMetadata(params, total, "/secure/source")

	return response.DataWithMetadata(c, fiber.Map{"sources": counts}, meta)
}
