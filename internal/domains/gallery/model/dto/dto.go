package dto

import (
	"mime/multipart"

	"forge/internal/domains/gallery/model"
	"forge/shared"
	gDto "forge/shared/dto"
	gModel "forge/shared/model"
	"forge/shared/timezone"

	"github.com/google/uuid"
)

type CreateGalleryItemRequest struct {
	Title       string                  `json:"title"       validate:"required,min=3,max=120"`
	Description string                  `json:"description" validate:"omitempty,max=2000"`
	Category    string                  `json:"category"    validate:"required,oneof=residential commercial industrial custom"`
	Images      []*multipart.FileHeader `json:"images"      swaggerignore:"true" validate:"required,min=2,max=4,dive,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=5"`
	ImageFiles  []multipart.File        `json:"-"`
}

func (c *CreateGalleryItemRequest) ToModel(user string, imageURLs []string) model.GalleryItem {
	category := c.Category

	var cover string
	if len(imageURLs) > 0 {
		cover = imageURLs[0]
	}

	item := model.GalleryItem{
		ID:          uuid.NewString(),
		Title:       c.Title,
		Description: c.Description,
		Category:    &category,
		CoverImage:  cover,
		Images:      imageURLs,
		Status:      model.StatusPublished,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if user != "" {
		owner := user
		item.UserID = &owner
	}

	return item
}

type UpdateGalleryItemRequest struct {
	Title       string `db:"title"       json:"title"       validate:"omitempty,min=3,max=120"`
	Description string `db:"description" json:"description" validate:"omitempty,max=2000"`
	Category    string `db:"category"    json:"category"    validate:"omitempty,oneof=residential commercial industrial custom"`
	CoverImage  string `db:"cover_image" json:"cover_image" validate:"omitempty,url"`
}

type GalleryItemResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	CoverImage  string   `json:"cover_image"`
	Images      []string `json:"images"`
	Status      string   `json:"status"`
	LikeCount   int      `json:"like_count"`
	SaveCount   int      `json:"save_count"`
	Liked       bool     `json:"liked"`
	Saved       bool     `json:"saved"`
	gDto.Metadata
}

func (r *GalleryItemResponse) FromModel(item model.GalleryItem, index int) {
	r.ID = item.ID
	r.Title = item.Title
	r.Description = item.Description
	r.Category = item.CategoryOrDefault()
	r.CoverImage = model.ResolveItemImage(item, index)
	r.Images = item.Images
	r.Status = item.Status
	r.LikeCount = item.LikeCount
	r.SaveCount = item.SaveCount
	r.Metadata.FromModel(item.Metadata)
}

type GetGalleryItemsResponse struct {
	Items     []GalleryItemResponse `json:"items"`
	TotalData int                   `json:"total_data"`
	TotalPage int                   `json:"total_page"`
	HasMore   bool                  `json:"has_more"`
}

func (r *GetGalleryItemsResponse) FromModels(models []model.GalleryItem, totalData, page, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)
	r.HasMore = shared.HasMorePages(totalData, page, limit)

	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}

	r.Items = make([]GalleryItemResponse, len(models))
	for i, m := range models {
		r.Items[i].FromModel(m, offset+i)
	}
}

type UploadGalleryItemResponse struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	CoverImage string   `json:"cover_image"`
	Images     []string `json:"images"`
}

func (r *UploadGalleryItemResponse) FromModel(item model.GalleryItem) {
	r.ID = item.ID
	r.Title = item.Title
	r.CoverImage = item.CoverImage
	r.Images = item.Images
}
