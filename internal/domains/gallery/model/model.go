package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"forge/shared/model"
)

const (
	TableName  = "gallery_items"
	EntityName = "gallery_item"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldCoverImage  = "cover_image"
	FieldImages      = "images"
	FieldUserID      = "user_id"
	FieldStatus      = "status"
	FieldLikeCount   = "like_count"
	FieldSaveCount   = "save_count"
)

const (
	CategoryAll         = "all"
	CategoryResidential = "residential"
	CategoryCommercial  = "commercial"
	CategoryIndustrial  = "industrial"
	CategoryCustom      = "custom"
)

const (
	StatusPublished = "published"
	StatusArchived  = "archived"
	StatusDeleted   = "deleted"
)

const (
	SortRecency = "recency"
	SortLikes   = "likes"
	SortSaves   = "saves"
)

const (
	MinImages = 2
	MaxImages = 4
)

// Categories lists the fixed category enumeration, without the "all" pseudo-category.
var Categories = []string{CategoryResidential, CategoryCommercial, CategoryIndustrial, CategoryCustom}

// ImageList stores the ordered gallery image URLs as a JSON column.
type ImageList []string

func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		l = ImageList{}
	}

	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal image list: %w", err)
	}

	return string(data), nil
}

func (l *ImageList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = ImageList{}

		return nil
	case []byte:
		return json.Unmarshal(v, l) //nolint:wrapcheck
	case string:
		return json.Unmarshal([]byte(v), l) //nolint:wrapcheck
	default:
		return errors.New("unsupported source type for image list")
	}
}

type GalleryItem struct {
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Category    *string   `db:"category"`
	CoverImage  string    `db:"cover_image"`
	Images      ImageList `db:"images"`
	UserID      *string   `db:"user_id"`
	Status      string    `db:"status"`
	LikeCount   int       `db:"like_count"`
	SaveCount   int       `db:"save_count"`
	model.Metadata
}

// CategoryOrDefault returns the item category, falling back to the custom bucket.
func (g *GalleryItem) CategoryOrDefault() string {
	if g.Category == nil || *g.Category == "" {
		return CategoryCustom
	}

	return *g.Category
}
