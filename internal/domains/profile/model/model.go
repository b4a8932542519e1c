package model

import "forge/shared/model"

const (
	TableName  = "profiles"
	EntityName = "profile"

	FieldID          = "id"
	FieldDisplayName = "display_name"
	FieldUsername    = "username"
	FieldAvatarURL   = "avatar_url"
	FieldPhone       = "phone"
	FieldEmail       = "email"
)

// Profile shares its id with the auth user it belongs to. Rows are created
// lazily on first authenticated access.
type Profile struct {
	ID          string  `db:"id"`
	DisplayName string  `db:"display_name"`
	Username    string  `db:"username"`
	AvatarURL   *string `db:"avatar_url"`
	Phone       *string `db:"phone"`
	Email       string  `db:"email"`
	model.Metadata
}
