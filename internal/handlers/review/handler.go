package review

import (
	"net/http"

	"forge/infras/otel"
	"forge/internal/domains/review/model/dto"
	"forge/internal/domains/review/service"
	"forge/shared/constant"
	gDto "forge/shared/dto"
	"forge/shared/validator"
	"forge/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Review
	otel    otel.Otel
}

func New(service service.Review, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reviews", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.SubmitReview)
		routerGroup.Get("/", handler.GetReviews)
	})

	router.Route("/admin/reviews", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetReviewsForModeration)
		routerGroup.Get("/stats", handler.GetReviewStats)
		routerGroup.Post("/{id}/approve", handler.ApproveReview)
		routerGroup.Post("/{id}/reject", handler.RejectReview)
		routerGroup.Delete("/{id}", handler.DeleteReview)
	})
}

// SubmitReview accepts a new customer review.
// @Summary Submit a review
// @Description Submit a review. Anonymous submitters must provide name and email. Reviews start pending until moderated.
// @Tags Review
// @Accept json
// @Produce json
// @Param request body dto.SubmitReviewRequest true "Submit Review Request"
// @Success 201 {object} dto.ReviewResponse "Review submitted"
// @Failure 400 {object} response.Error
// @Router /v1/reviews [post]
func (handler *Handler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitReview")
	defer scope.End()

	req := dto.SubmitReviewRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate review submission")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Submit(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit review")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Review submitted successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetReviews lists approved reviews.
// @Summary List approved reviews
// @Tags Review
// @Produce json
// @Param page query int false "Page number"
// @Param project_id query string false "Filter by project"
// @Success 200 {object} dto.GetReviewsResponse "Approved reviews"
// @Router /v1/reviews [get]
func (handler *Handler) GetReviews(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReviews")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)
	projectID := r.URL.Query().Get(constant.RequestParamProject)

	res, err := handler.service.List(ctx, params.Page, projectID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list reviews")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetReviewsForModeration lists reviews by moderation status.
// @Summary List reviews for moderation
// @Tags Review
// @Produce json
// @Param page query int false "Page number"
// @Param status query string false "Moderation status: pending, approved, rejected"
// @Success 200 {object} dto.GetReviewsResponse "Reviews"
// @Failure 400 {object} response.Error
// @Router /v1/admin/reviews [get]
// @Security BearerAuth
func (handler *Handler) GetReviewsForModeration(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReviewsForModeration")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)
	status := r.URL.Query().Get(constant.RequestParamStatus)

	res, err := handler.service.AdminList(ctx, params.Page, status)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list reviews for moderation")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetReviewStats returns moderation counts and the average rating.
// @Summary Review statistics
// @Tags Review
// @Produce json
// @Success 200 {object} dto.ReviewStatsResponse "Review statistics"
// @Router /v1/admin/reviews/stats [get]
// @Security BearerAuth
func (handler *Handler) GetReviewStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReviewStats")
	defer scope.End()

	res, err := handler.service.Stats(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to compute review stats")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ApproveReview marks a review approved.
// @Summary Approve a review
// @Tags Review
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} response.Message "Review approved successfully"
// @Failure 404 {object} response.Error
// @Router /v1/admin/reviews/{id}/approve [post]
// @Security BearerAuth
func (handler *Handler) ApproveReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ApproveReview")
	defer scope.End()

	if err := handler.service.Approve(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to approve review")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Review approved successfully")
}

// RejectReview marks a review rejected.
// @Summary Reject a review
// @Tags Review
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} response.Message "Review rejected successfully"
// @Failure 404 {object} response.Error
// @Router /v1/admin/reviews/{id}/reject [post]
// @Security BearerAuth
func (handler *Handler) RejectReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RejectReview")
	defer scope.End()

	if err := handler.service.Reject(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reject review")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Review rejected successfully")
}

// DeleteReview removes a review permanently.
// @Summary Delete a review
// @Tags Review
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} response.Message "Review deleted successfully"
// @Failure 404 {object} response.Error
// @Router /v1/admin/reviews/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteReview")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete review")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Review deleted successfully")
}
