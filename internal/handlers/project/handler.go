package project

import (
	"net/http"

	"forge/infras/otel"
	"forge/internal/domains/project/model/dto"
	"forge/internal/domains/project/service"
	"forge/shared/constant"
	gDto "forge/shared/dto"
	"forge/shared/validator"
	"forge/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Project
	otel    otel.Otel
}

func New(service service.Project, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/projects", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetProjects)
		routerGroup.Get("/{id}", handler.GetProjectByID)
	})

	router.Route("/admin/projects", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetProjectsForAdmin)
		routerGroup.Post("/", handler.CreateProject)
		routerGroup.Patch("/{id}", handler.UpdateProject)
		routerGroup.Post("/{id}/publish", handler.PublishProject)
		routerGroup.Post("/{id}/archive", handler.ArchiveProject)
		routerGroup.Post("/{id}/feature", handler.ToggleProjectFeatured)
		routerGroup.Delete("/{id}", handler.DeleteProject)
	})
}

// GetProjects lists published portfolio projects, featured first.
// @Summary List published projects
// @Tags Project
// @Produce json
// @Param page query int false "Page number"
// @Param category query string false "Category filter"
// @Success 200 {object} dto.GetProjectsResponse "Published projects"
// @Router /v1/projects [get]
func (handler *Handler) GetProjects(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProjects")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)
	category := r.URL.Query().Get(constant.RequestParamCategory)

	res, err := handler.service.List(ctx, params.Page, category)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list projects")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetProjectByID retrieves one project.
// @Summary Get a project by ID
// @Tags Project
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} dto.ProjectResponse "Project details"
// @Failure 404 {object} response.Error
// @Router /v1/projects/{id} [get]
func (handler *Handler) GetProjectByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProjectByID")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get project")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetProjectsForAdmin lists projects across statuses for the admin panel.
// @Summary List projects for admin
// @Tags Project
// @Produce json
// @Param page query int false "Page number"
// @Param status query string false "Status filter: draft, published, archived"
// @Success 200 {object} dto.GetProjectsResponse "Projects"
// @Router /v1/admin/projects [get]
// @Security BearerAuth
func (handler *Handler) GetProjectsForAdmin(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProjectsForAdmin")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)
	status := r.URL.Query().Get(constant.RequestParamStatus)

	res, err := handler.service.AdminList(ctx, params.Page, status)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list projects for admin")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateProject creates a draft project.
// @Summary Create a project
// @Tags Project
// @Accept json
// @Produce json
// @Param request body dto.CreateProjectRequest true "Create Project Request"
// @Success 201 {object} dto.ProjectResponse "Project created"
// @Failure 400 {object} response.Error
// @Router /v1/admin/projects [post]
// @Security BearerAuth
func (handler *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateProject")
	defer scope.End()

	req := dto.CreateProjectRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate project creation")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create project")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// UpdateProject updates project fields.
// @Summary Update a project
// @Tags Project
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param request body dto.UpdateProjectRequest true "Update Project Request"
// @Success 200 {object} response.Message "Project updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/admin/projects/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProject")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateProjectRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate project update")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update project")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Project updated successfully")
}

// PublishProject makes a project publicly visible.
// @Summary Publish a project
// @Tags Project
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} response.Message "Project published successfully"
// @Failure 404 {object} response.Error
// @Router /v1/admin/projects/{id}/publish [post]
// @Security BearerAuth
func (handler *Handler) PublishProject(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PublishProject")
	defer scope.End()

	if err := handler.service.Publish(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to publish project")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Project published successfully")
}

// ArchiveProject hides a project from the public listing.
// @Summary Archive a project
// @Tags Project
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} response.Message "Project archived successfully"
// @Failure 404 {object} response.Error
// @Router /v1/admin/projects/{id}/archive [post]
// @Security BearerAuth
func (handler *Handler) ArchiveProject(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ArchiveProject")
	defer scope.End()

	if err := handler.service.Archive(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to archive project")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Project archived successfully")
}

// ToggleProjectFeatured flips the featured flag.
// @Summary Toggle the featured flag
// @Tags Project
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} response.Message "Resulting featured state"
// @Failure 404 {object} response.Error
// @Router /v1/admin/projects/{id}/feature [post]
// @Security BearerAuth
func (handler *Handler) ToggleProjectFeatured(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleProjectFeatured")
	defer scope.End()

	featured, err := handler.service.ToggleFeatured(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to toggle project featured flag")

		response.WithError(w, err)

		return
	}

	message := "Project unfeatured successfully"
	if featured {
		message = "Project featured successfully"
	}

	response.WithMessage(w, http.StatusOK, message)
}

// DeleteProject soft-deletes a project.
// @Summary Delete a project
// @Tags Project
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} response.Message "Project deleted successfully"
// @Failure 404 {object} response.Error
// @Router /v1/admin/projects/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteProject")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete project")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Project deleted successfully")
}
