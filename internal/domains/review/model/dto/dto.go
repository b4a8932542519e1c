package dto

import (
	"time"

	"forge/internal/domains/review/model"
	"forge/shared"
	gDto "forge/shared/dto"
	gModel "forge/shared/model"
	"forge/shared/timezone"

	"github.com/google/uuid"
)

type SubmitReviewRequest struct {
	Rating    int    `json:"rating"     validate:"required,gte=1,lte=5"`
	Comment   string `json:"comment"    validate:"required,min=3,max=2000"`
	ProjectID string `json:"project_id" validate:"omitempty,uuid"`
	Name      string `json:"name"       validate:"omitempty,min=2,max=80"`
	Email     string `json:"email"      validate:"omitempty,email"`
}

// ToModel builds a pending review. An authenticated submitter is recorded by
// user id; an anonymous one by the supplied name and email.
func (r *SubmitReviewRequest) ToModel(user string) model.Review {
	review := model.Review{
		ID:      uuid.NewString(),
		Rating:  r.Rating,
		Comment: r.Comment,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  r.submitter(user),
			ModifiedBy: r.submitter(user),
		},
	}

	if r.ProjectID != "" {
		projectID := r.ProjectID
		review.ProjectID = &projectID
	}

	if user != "" {
		owner := user
		review.UserID = &owner

		return review
	}

	name := r.Name
	email := r.Email
	review.AnonymousName = &name
	review.AnonymousEmail = &email

	return review
}

func (r *SubmitReviewRequest) submitter(user string) string {
	if user != "" {
		return user
	}

	return r.Name
}

type ReviewResponse struct {
	ID         string     `json:"id"`
	Rating     int        `json:"rating"`
	Comment    string     `json:"comment"`
	ProjectID  *string    `json:"project_id,omitempty"`
	Author     string     `json:"author"`
	Anonymous  bool       `json:"anonymous"`
	Status     string     `json:"status"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	RejectedAt *time.Time `json:"rejected_at,omitempty"`
	gDto.Metadata
}

func (r *ReviewResponse) FromModel(review model.Review) {
	r.ID = review.ID
	r.Rating = review.Rating
	r.Comment = review.Comment
	r.ProjectID = review.ProjectID
	r.Status = review.Status()
	r.ApprovedAt = review.ApprovedAt
	r.RejectedAt = review.RejectedAt
	r.Metadata.FromModel(review.Metadata)

	if review.UserID != nil {
		r.Author = *review.UserID

		return
	}

	r.Anonymous = true
	if review.AnonymousName != nil {
		r.Author = *review.AnonymousName
	}
}

type GetReviewsResponse struct {
	Reviews   []ReviewResponse `json:"reviews"`
	TotalData int              `json:"total_data"`
	TotalPage int              `json:"total_page"`
}

func (r *GetReviewsResponse) FromModels(models []model.Review, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reviews = make([]ReviewResponse, len(models))
	for i, m := range models {
		r.Reviews[i].FromModel(m)
	}
}

type ReviewStatsResponse struct {
	Total         int     `json:"total"`
	Pending       int     `json:"pending"`
	Approved      int     `json:"approved"`
	Rejected      int     `json:"rejected"`
	AverageRating float64 `json:"average_rating"`
	Truncated     bool    `json:"truncated"`
}

func (r *ReviewStatsResponse) FromModels(models []model.Review, truncated bool) {
	r.Total = len(models)
	r.Truncated = truncated

	ratingSum := 0

	for _, m := range models {
		ratingSum += m.Rating

		switch m.Status() {
		case model.StatusApproved:
			r.Approved++
		case model.StatusRejected:
			r.Rejected++
		default:
			r.Pending++
		}
	}

	if r.Total > 0 {
		r.AverageRating = float64(ratingSum) / float64(r.Total)
	}
}
