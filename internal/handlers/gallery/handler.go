package gallery

import (
	"mime/multipart"
	"net/http"

	"forge/infras/otel"
	"forge/internal/domains/gallery/model/dto"
	"forge/internal/domains/gallery/service"
	"forge/shared/constant"
	gDto "forge/shared/dto"
	"forge/shared/validator"
	"forge/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.GalleryItem
	otel    otel.Otel
}

func New(service service.GalleryItem, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers with full paths because the /gallery subtree is shared
// with the engagement endpoints.
func (handler *Handler) Router(router chi.Router) {
	router.Get("/gallery", handler.ListGalleryItems)
	router.Post("/gallery", handler.CreateGalleryItem)
	router.Get("/gallery/{id}", handler.GetGalleryItemByID)
	router.Patch("/gallery/{id}", handler.UpdateGalleryItem)
	router.Post("/gallery/{id}/archive", handler.ArchiveGalleryItem)
	router.Post("/gallery/{id}/restore", handler.RestoreGalleryItem)
	router.Delete("/gallery/{id}", handler.DeleteGalleryItem)
}

// ListGalleryItems retrieves a page of published gallery items.
// @Summary List gallery items
// @Description Retrieve published gallery items with category filter and sorting. Falls back to the built-in catalogue when the store is unavailable or empty.
// @Tags Gallery
// @Accept json
// @Produce json
// @Param page query int false "Page number (fixed page size of 9)"
// @Param category query string false "Category filter: all, residential, commercial, industrial, custom"
// @Param sort query string false "Sort key: recency, likes, saves"
// @Success 200 {object} dto.GetGalleryItemsResponse "Page of gallery items"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/gallery [get]
func (handler *Handler) ListGalleryItems(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListGalleryItems")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	req := dto.ListGalleryItemsRequest{
		Page:     params.Page,
		Category: r.URL.Query().Get(constant.RequestParamCategory),
		Sort:     r.URL.Query().Get(constant.RequestParamSort),
		Search:   r.URL.Query().Get("search"),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate listing parameters")

		response.WithError(w, err)

		return
	}

	items, err := handler.service.List(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list gallery items")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Gallery items retrieved successfully")

	response.WithJSON(w, http.StatusOK, items)
}

// GetGalleryItemByID retrieves a single gallery item.
// @Summary Get a gallery item by ID
// @Tags Gallery
// @Accept json
// @Produce json
// @Param id path string true "Gallery item ID"
// @Success 200 {object} dto.GalleryItemResponse "Gallery item details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/gallery/{id} [get]
func (handler *Handler) GetGalleryItemByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGalleryItemByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	item, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get gallery item by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Gallery item retrieved successfully")

	response.WithJSON(w, http.StatusOK, item)
}

// CreateGalleryItem handles the multipart gallery upload.
// @Summary Upload a new gallery item
// @Description Create a gallery item from a multipart form carrying 2 to 4 images plus title, category and description.
// @Tags Gallery
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Item title"
// @Param category formData string true "Category: residential, commercial, industrial, custom"
// @Param description formData string false "Item description"
// @Param images formData file true "2-4 image files (png/jpg/jpeg/webp, max 5 MB each)"
// @Success 201 {object} dto.UploadGalleryItemResponse "Gallery item created"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/gallery [post]
// @Security BearerAuth
func (handler *Handler) CreateGalleryItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateGalleryItem")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	req := dto.CreateGalleryItemRequest{
		Title:       r.FormValue("title"),
		Category:    r.FormValue("category"),
		Description: r.FormValue("description"),
	}

	if r.MultipartForm != nil {
		req.Images = r.MultipartForm.File[constant.FormFile]
	}

	files := make([]multipart.File, 0, len(req.Images))

	for _, header := range req.Images {
		file, err := header.Open()
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to open uploaded file")

			response.WithError(w, err)

			return
		}
		defer file.Close()

		files = append(files, file)
	}

	req.ImageFiles = files

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate gallery upload")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create gallery item")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Gallery item created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// UpdateGalleryItem updates metadata of an existing gallery item.
// @Summary Update a gallery item
// @Tags Gallery
// @Accept json
// @Produce json
// @Param id path string true "Gallery item ID"
// @Param request body dto.UpdateGalleryItemRequest true "Update Gallery Item Request"
// @Success 200 {object} response.Message "Gallery item updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/gallery/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateGalleryItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateGalleryItem")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateGalleryItemRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update gallery item")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Gallery item updated successfully")
}

// ArchiveGalleryItem hides a gallery item from the public listing.
// @Summary Archive a gallery item
// @Tags Gallery
// @Produce json
// @Param id path string true "Gallery item ID"
// @Success 200 {object} response.Message "Gallery item archived successfully"
// @Failure 404 {object} response.Error
// @Router /v1/gallery/{id}/archive [post]
// @Security BearerAuth
func (handler *Handler) ArchiveGalleryItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ArchiveGalleryItem")
	defer scope.End()

	if err := handler.service.Archive(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to archive gallery item")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Gallery item archived successfully")
}

// RestoreGalleryItem returns an archived item to the public listing.
// @Summary Restore a gallery item
// @Tags Gallery
// @Produce json
// @Param id path string true "Gallery item ID"
// @Success 200 {object} response.Message "Gallery item restored successfully"
// @Failure 404 {object} response.Error
// @Router /v1/gallery/{id}/restore [post]
// @Security BearerAuth
func (handler *Handler) RestoreGalleryItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RestoreGalleryItem")
	defer scope.End()

	if err := handler.service.Restore(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to restore gallery item")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Gallery item restored successfully")
}

// DeleteGalleryItem soft-deletes a gallery item.
// @Summary Delete a gallery item
// @Tags Gallery
// @Produce json
// @Param id path string true "Gallery item ID"
// @Success 200 {object} response.Message "Gallery item deleted successfully"
// @Failure 404 {object} response.Error
// @Router /v1/gallery/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteGalleryItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteGalleryItem")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete gallery item")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Gallery item deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Gallery item deleted successfully")
}
