package engagement

import (
	"net/http"

	"forge/infras/otel"
	"forge/internal/domains/engagement/model"
	"forge/internal/domains/engagement/service"
	"forge/shared/constant"
	gDto "forge/shared/dto"
	"forge/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Engagement
	otel    otel.Otel
}

func New(service service.Engagement, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/gallery/{id}/like", handler.ToggleLike)
	router.Post("/gallery/{id}/save", handler.ToggleSave)
	router.Get("/gallery/{id}/engagement", handler.GetEngagement)
	router.Get("/me/saves", handler.GetSavedItems)
}

// ToggleLike flips the caller's like on a gallery item.
// @Summary Toggle a like
// @Description Like or unlike a gallery item. Returns the resulting state and counter.
// @Tags Engagement
// @Produce json
// @Param id path string true "Gallery item ID"
// @Success 200 {object} dto.ToggleResponse "Resulting engagement state"
// @Failure 401 {object} response.Error "Sign in required"
// @Failure 404 {object} response.Error
// @Router /v1/gallery/{id}/like [post]
// @Security BearerAuth
func (handler *Handler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	handler.toggle(w, r, model.KindLike)
}

// ToggleSave flips the caller's save on a gallery item.
// @Summary Toggle a save
// @Description Save or unsave a gallery item. Returns the resulting state and counter.
// @Tags Engagement
// @Produce json
// @Param id path string true "Gallery item ID"
// @Success 200 {object} dto.ToggleResponse "Resulting engagement state"
// @Failure 401 {object} response.Error "Sign in required"
// @Failure 404 {object} response.Error
// @Router /v1/gallery/{id}/save [post]
// @Security BearerAuth
func (handler *Handler) ToggleSave(w http.ResponseWriter, r *http.Request) {
	handler.toggle(w, r, model.KindSave)
}

func (handler *Handler) toggle(w http.ResponseWriter, r *http.Request, kind string) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Toggle")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Toggle(ctx, id, kind)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("kind", kind).Msg("failed to toggle engagement")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Engagement toggled successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetEngagement returns the caller's flags and counters for an item.
// @Summary Get engagement state
// @Tags Engagement
// @Produce json
// @Param id path string true "Gallery item ID"
// @Success 200 {object} dto.EngagementResponse "Engagement state"
// @Failure 404 {object} response.Error
// @Router /v1/gallery/{id}/engagement [get]
func (handler *Handler) GetEngagement(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEngagement")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get engagement state")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetSavedItems lists the gallery items the caller has saved.
// @Summary List saved gallery items
// @Tags Engagement
// @Produce json
// @Param page query int false "Page number"
// @Success 200 {object} dto.GetGalleryItemsResponse "Saved gallery items"
// @Failure 401 {object} response.Error "Sign in required"
// @Router /v1/me/saves [get]
// @Security BearerAuth
func (handler *Handler) GetSavedItems(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSavedItems")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	res, err := handler.service.SavedItems(ctx, params.Page)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list saved items")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
