package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"forge/internal/domains/gallery/model"
)

func TestResolveImage(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		category string
		images   []string
		index    int
		want     string
	}{
		{
			name:     "uploaded image wins over everything",
			title:    "Spiral Staircase",
			category: model.CategoryResidential,
			images:   []string{"https://cdn.example.com/real.jpg"},
			index:    0,
			want:     "https://cdn.example.com/real.jpg",
		},
		{
			name:     "placeholder upload is skipped",
			title:    "Spiral Staircase",
			category: model.CategoryResidential,
			images:   []string{"/images/placeholder.svg"},
			index:    0,
			want:     "/images/stock/spiral-staircase.jpg",
		},
		{
			name:     "exact title match is case insensitive",
			title:    "  GLASS Balustrade ",
			category: model.CategoryResidential,
			index:    0,
			want:     "/images/stock/glass-balustrade.jpg",
		},
		{
			name:     "keyword match when no exact title",
			title:    "External staircase refit",
			category: model.CategoryCommercial,
			index:    0,
			want:     "/images/stock/staircase.jpg",
		},
		{
			name:     "first keyword in priority order wins",
			title:    "Gate and fence package",
			category: model.CategoryResidential,
			index:    0,
			want:     "/images/stock/gate.jpg",
		},
		{
			name:     "category stock rotation by index",
			title:    "Untitled work",
			category: model.CategoryIndustrial,
			index:    1,
			want:     "/images/stock/industrial-2.jpg",
		},
		{
			name:     "rotation wraps past the set length",
			title:    "Untitled work",
			category: model.CategoryIndustrial,
			index:    2,
			want:     "/images/stock/industrial-1.jpg",
		},
		{
			name:     "unknown category falls back to custom stock",
			title:    "Untitled work",
			category: "boats",
			index:    0,
			want:     "/images/stock/custom-1.jpg",
		},
		{
			name:     "negative index is normalized",
			title:    "Untitled work",
			category: model.CategoryIndustrial,
			index:    -1,
			want:     "/images/stock/industrial-2.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := model.ResolveImage(tt.title, tt.category, tt.images, tt.index)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveImage_Deterministic(t *testing.T) {
	first := model.ResolveImage("Untitled work", model.CategoryCustom, nil, 3)

	for range 10 {
		assert.Equal(t, first, model.ResolveImage("Untitled work", model.CategoryCustom, nil, 3))
	}
}

func TestResolveItemImage(t *testing.T) {
	category := model.CategoryResidential

	item := model.GalleryItem{
		Title:      "Back garden pergola",
		Category:   &category,
		CoverImage: "https://cdn.example.com/cover.jpg",
		Images:     model.ImageList{"https://cdn.example.com/extra.jpg"},
	}

	assert.Equal(t, "https://cdn.example.com/cover.jpg", model.ResolveItemImage(item, 0))

	item.CoverImage = ""
	item.Images = nil

	assert.Equal(t, "/images/stock/pergola.jpg", model.ResolveItemImage(item, 0))
}

func TestIsPlaceholder(t *testing.T) {
	assert.True(t, model.IsPlaceholder(""))
	assert.True(t, model.IsPlaceholder("/images/placeholder.svg"))
	assert.False(t, model.IsPlaceholder("https://cdn.example.com/real.jpg"))
}
