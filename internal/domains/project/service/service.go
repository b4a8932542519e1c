package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"forge/config"
	"forge/infras/otel"
	"forge/internal/domains/project/model"
	"forge/internal/domains/project/model/dto"
	"forge/internal/domains/project/repository"
	"forge/shared"
	"forge/shared/cache"
	"forge/shared/constant"
	gDto "forge/shared/dto"
	"forge/shared/failure"
	"forge/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetProject    = "project:get"
	cacheGetAllProject = "project:get_all"
	cacheCountProject  = "project:count"

	pageSize = 12
)

type Project interface {
	List(ctx context.Context, page int, category string) (dto.GetProjectsResponse, error)
	AdminList(ctx context.Context, page int, status string) (dto.GetProjectsResponse, error)
	Get(ctx context.Context, id string) (dto.ProjectResponse, error)
	Create(ctx context.Context, req dto.CreateProjectRequest) (dto.ProjectResponse, error)
	Update(ctx context.Context, req dto.UpdateProjectRequest, id string) error
	Publish(ctx context.Context, id string) error
	Archive(ctx context.Context, id string) error
	ToggleFeatured(ctx context.Context, id string) (featured bool, err error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Project
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Project, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Project {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// List returns published projects, featured ones first.
func (s *serviceImpl) List(ctx context.Context, page int, category string) (res dto.GetProjectsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(err)

	if page < 1 {
		page = 1
	}

	filters := []any{
		gDto.Filter{Field: model.FieldStatus, Table: model.TableName, Value: model.StatusPublished, Operator: gDto.FilterOperatorEq},
	}

	if category != constant.Empty {
		filters = append(filters, gDto.Filter{
			Field: model.FieldCategory, Table: model.TableName, Value: category, Operator: gDto.FilterOperatorEq,
		})
	}

	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: filters}
	params := gDto.QueryParams{Page: page, Limit: pageSize, SortBy: "featured DESC, created_at", SortDir: "DESC"}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllProject, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for projects")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count projects")

		return res, err
	}

	projects, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get projects")

		return res, err
	}

	res.FromModels(projects, total, pageSize)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save projects to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) AdminList(ctx context.Context, page int, status string) (res dto.GetProjectsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AdminList")
	defer scope.End()
	defer scope.TraceIfError(err)

	if page < 1 {
		page = 1
	}

	filters := []any{
		gDto.Filter{Field: model.FieldStatus, Table: model.TableName, Value: model.StatusDeleted, Operator: gDto.FilterOperatorNotEq},
	}

	if status != constant.Empty {
		filters = append(filters, gDto.Filter{
			ArgName: "status_eq", Field: model.FieldStatus, Table: model.TableName, Value: status, Operator: gDto.FilterOperatorEq,
		})
	}

	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: filters}
	params := gDto.QueryParams{Page: page, Limit: pageSize, SortBy: "created_at", SortDir: "DESC"}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count projects for admin")

		return res, err
	}

	projects, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get projects for admin")

		return res, err
	}

	res.FromModels(projects, total, pageSize)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ProjectResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetProject, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for project")

		return res, nil
	}

	project, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get project")

		return res, fmt.Errorf("failed to get project: %w", err)
	}

	if project.ID == constant.Empty || project.Status == model.StatusDeleted {
		return res, failure.NotFound("project not found")
	}

	res.FromModel(project)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save project to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateProjectRequest) (res dto.ProjectResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	project := req.ToModel(user)

	if err = s.repo.Insert(ctx, project); err != nil {
		log.Error().Err(err).Msg("failed to insert project")

		return res, err
	}

	s.invalidateLists(ctx)
	res.FromModel(project)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateProjectRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check project existence")

		return err
	}

	if !exist {
		return failure.NotFound("project not found")
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update project")

		return fmt.Errorf("failed to update project: %w", err)
	}

	s.invalidateItem(ctx, id)

	return nil
}

func (s *serviceImpl) Publish(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, model.StatusPublished)
}

func (s *serviceImpl) Archive(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, model.StatusArchived)
}

// Delete is a soft delete via the status flag.
func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, model.StatusDeleted)
}

func (s *serviceImpl) ToggleFeatured(ctx context.Context, id string) (featured bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ToggleFeatured")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	project, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get project for feature toggle")

		return false, fmt.Errorf("failed to get project: %w", err)
	}

	if project.ID == constant.Empty || project.Status == model.StatusDeleted {
		return false, failure.NotFound("project not found")
	}

	featured = !project.Featured

	updatedFields := map[string]any{
		model.FieldFeatured:      featured,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to toggle project featured flag")

		return false, fmt.Errorf("failed to toggle project featured flag: %w", err)
	}

	s.invalidateItem(ctx, id)

	return featured, nil
}

func (s *serviceImpl) setStatus(ctx context.Context, id, status string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".setStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check project existence")

		return err
	}

	if !exist {
		return failure.NotFound("project not found")
	}

	updatedFields := map[string]any{
		model.FieldStatus:        status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Str("status", status).Msg("failed to change project status")

		return fmt.Errorf("failed to change project status: %w", err)
	}

	s.invalidateItem(ctx, id)

	return nil
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllProject)
		shared.InvalidateCaches(c, s.cache, cacheCountProject)
	}()
}

func (s *serviceImpl) invalidateItem(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetProject, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete project cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllProject)
		shared.InvalidateCaches(c, s.cache, cacheCountProject)
	}()
}
