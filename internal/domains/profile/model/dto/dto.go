package dto

import (
	"mime/multipart"

	"forge/internal/domains/profile/model"
	gDto "forge/shared/dto"
)

type UpdateProfileRequest struct {
	DisplayName string `db:"display_name" json:"display_name" validate:"omitempty,min=2,max=80"`
	Username    string `db:"username"     json:"username"     validate:"omitempty,min=3,max=32,alphanum"`
	Phone       string `db:"phone"        json:"phone"        validate:"omitempty,e164"`
	Email       string `db:"email"        json:"email"        validate:"omitempty,email"`
}

type UploadAvatarRequest struct {
	Avatar     *multipart.FileHeader `json:"avatar" swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=2"`
	AvatarFile multipart.File        `json:"-"`
}

type ProfileResponse struct {
	ID          string  `json:"id"`
	DisplayName string  `json:"display_name"`
	Username    string  `json:"username"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Email       string  `json:"email"`
	gDto.Metadata
}

func (r *ProfileResponse) FromModel(profile model.Profile) {
	r.ID = profile.ID
	r.DisplayName = profile.DisplayName
	r.Username = profile.Username
	r.AvatarURL = profile.AvatarURL
	r.Phone = profile.Phone
	r.Email = profile.Email
	r.Metadata.FromModel(profile.Metadata)
}

// PublicProfileResponse is the unauthenticated view. Contact details stay private.
type PublicProfileResponse struct {
	DisplayName string  `json:"display_name"`
	Username    string  `json:"username"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
}

func (r *PublicProfileResponse) FromModel(profile model.Profile) {
	r.DisplayName = profile.DisplayName
	r.Username = profile.Username
	r.AvatarURL = profile.AvatarURL
}

type UploadAvatarResponse struct {
	URL string `json:"url"`
}
