package model

import (
	"time"

	"forge/shared/model"
)

const (
	TableName  = "reviews"
	EntityName = "review"

	FieldID             = "id"
	FieldRating         = "rating"
	FieldComment        = "comment"
	FieldProjectID      = "project_id"
	FieldUserID         = "user_id"
	FieldAnonymousName  = "anonymous_name"
	FieldAnonymousEmail = "anonymous_email"
	FieldIsApproved     = "is_approved"
	FieldApprovedAt     = "approved_at"
	FieldRejectedAt     = "rejected_at"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

const (
	MinRating = 1
	MaxRating = 5
)

type Review struct {
	ID             string     `db:"id"`
	Rating         int        `db:"rating"`
	Comment        string     `db:"comment"`
	ProjectID      *string    `db:"project_id"`
	UserID         *string    `db:"user_id"`
	AnonymousName  *string    `db:"anonymous_name"`
	AnonymousEmail *string    `db:"anonymous_email"`
	IsApproved     bool       `db:"is_approved"`
	ApprovedAt     *time.Time `db:"approved_at"`
	RejectedAt     *time.Time `db:"rejected_at"`
	model.Metadata
}

// Status derives the moderation state. A review is pending until it is either
// approved or rejected; approval always wins over a stale rejection timestamp.
func (r *Review) Status() string {
	if r.IsApproved {
		return StatusApproved
	}

	if r.RejectedAt != nil {
		return StatusRejected
	}

	return StatusPending
}
