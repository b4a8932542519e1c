package profile

import (
	"net/http"

	"forge/infras/otel"
	"forge/internal/domains/profile/model/dto"
	"forge/internal/domains/profile/service"
	"forge/shared/constant"
	"forge/shared/failure"
	"forge/shared/validator"
	"forge/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Profile
	otel    otel.Otel
}

func New(service service.Profile, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers full paths on the version group. The /me subtree is
// shared with other handlers, so no Route() mount here.
func (handler *Handler) Router(router chi.Router) {
	router.Get("/me/profile", handler.GetOwnProfile)
	router.Patch("/me/profile", handler.UpdateProfile)
	router.Post("/me/profile/avatar", handler.UploadAvatar)
	router.Get("/profiles/{username}", handler.GetProfileByUsername)
}

// GetOwnProfile returns the caller's profile, creating it on first access.
// @Summary Get own profile
// @Tags Profile
// @Produce json
// @Success 200 {object} dto.ProfileResponse "Profile details"
// @Failure 401 {object} response.Error "Sign in required"
// @Router /v1/me/profile [get]
// @Security BearerAuth
func (handler *Handler) GetOwnProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOwnProfile")
	defer scope.End()

	res, err := handler.service.GetOwn(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get own profile")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateProfile updates the caller's profile fields.
// @Summary Update own profile
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Update Profile Request"
// @Success 200 {object} dto.ProfileResponse "Updated profile"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error "Sign in required"
// @Failure 409 {object} response.Error "Username already taken"
// @Router /v1/me/profile [patch]
// @Security BearerAuth
func (handler *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProfile")
	defer scope.End()

	req := dto.UpdateProfileRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate profile update")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Update(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update profile")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UploadAvatar replaces the caller's avatar image.
// @Summary Upload an avatar
// @Tags Profile
// @Accept multipart/form-data
// @Produce json
// @Param avatar formData file true "Avatar image"
// @Success 200 {object} dto.UploadAvatarResponse "Avatar URL"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error "Sign in required"
// @Router /v1/me/profile/avatar [post]
// @Security BearerAuth
func (handler *Handler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadAvatar")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse avatar form")

		response.WithError(w, failure.BadRequestFromString("invalid multipart form"))

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFileAvatar)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read avatar file")

		response.WithError(w, failure.BadRequestFromString("avatar file is required"))

		return
	}
	defer file.Close()

	req := dto.UploadAvatarRequest{
		Avatar:     fileHeader,
		AvatarFile: file,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate avatar upload")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UploadAvatar(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload avatar")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Avatar uploaded successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetProfileByUsername returns the public view of a profile.
// @Summary Get a public profile
// @Tags Profile
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} dto.PublicProfileResponse "Public profile"
// @Failure 404 {object} response.Error
// @Router /v1/profiles/{username} [get]
func (handler *Handler) GetProfileByUsername(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProfileByUsername")
	defer scope.End()

	res, err := handler.service.GetByUsername(ctx, chi.URLParam(r, constant.RequestParamUsername))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get profile by username")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
