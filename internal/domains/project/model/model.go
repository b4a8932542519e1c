package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"forge/shared/model"
)

const (
	TableName  = "projects"
	EntityName = "project"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldImages      = "images"
	FieldLocation    = "location"
	FieldYear        = "year"
	FieldStatus      = "status"
	FieldFeatured    = "featured"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
	StatusDeleted   = "deleted"
)

// ImageList stores the project image URLs as a JSON column.
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

type Project struct {
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Category    string    `db:"category"`
	Images      ImageList `db:"images"`
	Location    string    `db:"location"`
	Year        int       `db:"year"`
	Status      string    `db:"status"`
	Featured    bool      `db:"featured"`
	model.Metadata
}
