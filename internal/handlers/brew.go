package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/tomplanche/vps-back/internal/brew"
	"github.com/tomplanche/vps-back/internal/database"
	"github.com/tomplanche/vps-back/internal/models"
	"github.com/tomplanche/vps-back/internal/response"
)

type BrewHandler struct{}

func NewBrewHandler() *BrewHandler {
	return &BrewHandler{}
}

// Track records one bottle download and redirects to the GitHub release
// asset. The project must be registered and the filename must parse; an
// unknown project is rejected before any database work.
func (h *BrewHandler) Track(c *fiber.Ctx) error {
	projectName := c.Params("project")
	filename := c.Params("filename")

	org, repo, ok := brew.LookupProject(projectName)
	if !ok {
		return response.NotFound(c, fmt.Sprintf("Unknown project: %s", projectName))
	}

	version, platform, ok := brew.ParseBottleFilename(projectName, filename)
	if !ok {
		return response.BadRequest(c, fmt.Sprintf("Could not parse filename: %s", filename))
	}

	if _, err := brew.RecordDownload(database.DB, projectName, version, platform); err != nil {
		return response.Internal(c, err, "Failed to record brew download")
	}

	redirectURL := brew.RedirectURL(org, repo, version, filename)
	if !validHeaderValue(redirectURL) {
		return response.Internal(c, fmt.Errorf("redirect URL is not a valid header value: %q", redirectURL), "Failed to build Location header")
	}

	c.Set(fiber.HeaderLocation, redirectURL)
	return c.SendStatus(fiber.StatusFound)
}

// Stats returns download totals per project, summed over versions and
// platforms, with a per-version breakdown.
func (h *BrewHandler) Stats(c *fiber.Ctx) error {
	var rows []models.BrewDownload
	if err := database.DB.Find(&rows).Error; err != nil {
		return response.Internal(c, err, "Failed to fetch brew downloads")
	}

	result := make(fiber.Map, len(rows))
	for projectName, stats := range brew.Aggregate(rows) {
		project := fiber.Map{
			"total_downloads": stats.Total,
			"total_installs":  stats.Total,
		}
		for version, count := range stats.Versions {
			project[version] = fiber.Map{
				"downloads": count,
				"installs":  count,
			}
		}
		result[projectName] = project
	}

	return response.Data(c, result)
}

// validHeaderValue reports whether s can be sent as an HTTP header value,
// i.e. contains no control characters.
func validHeaderValue(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] == 0x7f {
			return false
		}
	}
	return true
}
