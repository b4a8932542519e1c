package model

import "time"

const (
	TableName  = "engagement_edges"
	EntityName = "engagement_edge"

	FieldID        = "id"
	FieldUserID    = "user_id"
	FieldItemID    = "item_id"
	FieldKind      = "kind"
	FieldCreatedAt = "created_at"
)

const (
	KindLike = "like"
	KindSave = "save"
)

// ValidKind reports whether kind is part of the edge enumeration.
func ValidKind(kind string) bool {
	return kind == KindLike || kind == KindSave
}

// CounterColumn maps an edge kind to the denormalized counter it maintains
// on gallery_items.
func CounterColumn(kind string) string {
	if kind == KindSave {
		return "save_count"
	}

	return "like_count"
}

// Edge is one user's like or save of one gallery item. Toggle-off deletes
// the row, so existence equals active.
type Edge struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	ItemID    string    `db:"item_id"`
	Kind      string    `db:"kind"`
	CreatedAt time.Time `db:"created_at"`
}
