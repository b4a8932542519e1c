package dto

import (
	"forge/internal/domains/gallery/model"
	gDto "forge/shared/dto"
)

// PageSize is the fixed gallery page size.
const PageSize = 9

type ListGalleryItemsRequest struct {
	Page     int    `json:"page"     validate:"omitempty,gte=1"`
	Category string `json:"category" validate:"omitempty,oneof=all residential commercial industrial custom"`
	Sort     string `json:"sort"     validate:"omitempty,oneof=recency likes saves"`
	Search   string `json:"search"   validate:"omitempty,max=120"`
}

func (r *ListGalleryItemsRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}

	if r.Category == "" {
		r.Category = model.CategoryAll
	}

	if r.Sort == "" {
		r.Sort = model.SortRecency
	}
}

// QueryParams maps the request onto repository paging and ordering.
func (r *ListGalleryItemsRequest) QueryParams() gDto.QueryParams {
	params := gDto.QueryParams{
		Page:    r.Page,
		Limit:   PageSize,
		SortDir: "DESC",
	}

	switch r.Sort {
	case model.SortLikes:
		params.SortBy = model.FieldLikeCount
	case model.SortSaves:
		params.SortBy = model.FieldSaveCount
	default:
		params.SortBy = "created_at"
	}

	return params
}

// Filter builds the repository filter: published rows only, plus the
// optional category and title search narrowing.
func (r *ListGalleryItemsRequest) Filter() gDto.FilterGroup {
	filters := []any{
		gDto.Filter{
			Field:    model.FieldStatus,
			Table:    model.TableName,
			Value:    model.StatusPublished,
			Operator: gDto.FilterOperatorEq,
		},
	}

	if r.Category != "" && r.Category != model.CategoryAll {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldCategory,
			Table:    model.TableName,
			Value:    r.Category,
			Operator: gDto.FilterOperatorEq,
		})
	}

	if r.Search != "" {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldTitle,
			Table:    model.TableName,
			Value:    r.Search,
			Operator: gDto.FilterOperatorLike,
		})
	}

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  filters,
	}
}
