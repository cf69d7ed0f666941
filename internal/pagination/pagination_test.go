package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestFromCtx(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, 20},
		{"explicit values", "?page=3&limit=50", 3, 50},
		{"zero page clamps to first", "?page=0", 1, 20},
		{"negative page clamps to first", "?page=-2", 1, 20},
		{"zero limit resets to default", "?limit=0", 1, 20},
		{"limit capped at maximum", "?limit=500", 1, 100},
		{"non numeric values fall back", "?page=abc&limit=xyz", 1, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Params

			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				got = FromCtx(c)
				return c.SendStatus(fiber.StatusOK)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/"+tt.query, nil))
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			resp.Body.Close()

			if got.Page != tt.wantPage {
				t.Errorf("page = %d, want %d", got.Page, tt.wantPage)
			}
			if got.Limit != tt.wantLimit {
				t.Errorf("limit = %d, want %d", got.Limit, tt.wantLimit)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	tests := []struct {
		page, limit, want int
	}{
		{1, 20, 0},
		{2, 20, 20},
		{3, 10, 20},
	}

	for _, tt := range tests {
		p := Params{Page: tt.page, Limit: tt.limit}
		if got := p.Offset(); got != tt.want {
			t.Errorf("Params{%d, %d}.Offset() = %d, want %d", tt.page, tt.limit, got, tt.want)
		}
	}
}

func TestNewMetadata(t *testing.T) {
	p := Params{Page: 2, Limit: 10}
	meta := NewMetadata(p, 25, "/secure/source")

	if meta.TotalPages != 3 {
		t.Errorf("total_pages = %d, want 3", meta.TotalPages)
	}
	if meta.PageCount != 10 {
		t.Errorf("page_count = %d, want 10", meta.PageCount)
	}
	if meta.TotalCount != 25 {
		t.Errorf("total_count = %d, want 25", meta.TotalCount)
	}
	if meta.Links.Next == nil || *meta.Links.Next != "/secure/source?page=3&limit=10" {
		t.Errorf("next = %v", meta.Links.Next)
	}
	if meta.Links.Prev == nil || *meta.Links.Prev != "/secure/source?page=1&limit=10" {
		t.Errorf("prev = %v", meta.Links.Prev)
	}
}

func TestNewMetadataLastPage(t *testing.T) {
	p := Params{Page: 3, Limit: 10}
	meta := NewMetadata(p, 25, "/secure/source")

	if meta.PageCount != 5 {
		t.Errorf("page_count = %d, want 5", meta.PageCount)
	}
	if meta.Links.Next != nil {
		t.Errorf("next = %v, want nil on last page", *meta.Links.Next)
	}
	if meta.Links.Prev == nil {
		t.Error("prev missing on last page")
	}
}

func TestNewMetadataEmpty(t *testing.T) {
	p := Params{Page: 1, Limit: 20}
	meta := NewMetadata(p, 0, "/secure/stickers")

	if meta.TotalPages != 0 {
		t.Errorf("total_pages = %d, want 0", meta.TotalPages)
	}
	if meta.PageCount != 0 {
		t.Errorf("page_count = %d, want 0", meta.PageCount)
	}
	if meta.Links.Next != nil || meta.Links.Prev != nil {
		t.Error("no links expected for an empty result set")
	}
}
