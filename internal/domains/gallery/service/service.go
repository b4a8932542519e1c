package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"path"
	"strconv"

	"forge/config"
	"forge/infras/otel"
	"forge/infras/s3"
	"forge/internal/domains/gallery/model"
	"forge/internal/domains/gallery/model/dto"
	"forge/internal/domains/gallery/repository"
	"forge/shared"
	"forge/shared/cache"
	"forge/shared/constant"
	gDto "forge/shared/dto"
	"forge/shared/failure"
	"forge/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetGalleryItem    = "gallery:get"
	cacheGetAllGalleryItem = "gallery:get_all"
	cacheCountGalleryItem  = "gallery:count"
)

type GalleryItem interface {
	List(ctx context.Context, req dto.ListGalleryItemsRequest) (dto.GetGalleryItemsResponse, error)
	Get(ctx context.Context, id string) (dto.GalleryItemResponse, error)
	Create(ctx context.Context, req dto.CreateGalleryItemRequest) (dto.UploadGalleryItemResponse, error)
	Update(ctx context.Context, req dto.UpdateGalleryItemRequest, id string) error
	Archive(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.GalleryItem
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.GalleryItem, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) GalleryItem {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) List(ctx context.Context, req dto.ListGalleryItemsRequest) (res dto.GetGalleryItemsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(err)

	req.Normalize()

	params := req.QueryParams()
	filter := req.Filter()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllGalleryItem, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for gallery items")

		return res, nil
	}

	total, err := s.count(ctx, filter)
	if err != nil {
		log.Warn().Err(err).Msg("gallery count unavailable, serving fallback catalogue")

		return s.fallbackPage(req), nil
	}

	items, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Warn().Err(err).Msg("gallery fetch failed, serving fallback catalogue")

		return s.fallbackPage(req), nil
	}

	if total == 0 && req.Search == "" {
		log.Info().Str("category", req.Category).Msg("gallery empty, serving fallback catalogue")

		return s.fallbackPage(req), nil
	}

	res.FromModels(items, total, req.Page, dto.PageSize)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save gallery items to cache")
		}
	}()

	return res, nil
}

// fallbackPage pages through the built-in catalogue the same way the live
// listing pages through the table.
func (s *serviceImpl) fallbackPage(req dto.ListGalleryItemsRequest) (res dto.GetGalleryItemsResponse) {
	items := fallbackItems(req.Category)

	offset := (req.Page - 1) * dto.PageSize
	if offset >= len(items) {
		res.FromModels([]model.GalleryItem{}, len(items), req.Page, dto.PageSize)

		return res
	}

	end := offset + dto.PageSize
	if end > len(items) {
		end = len(items)
	}

	res.FromModels(items[offset:end], len(items), req.Page, dto.PageSize)

	return res
}

func (s *serviceImpl) count(ctx context.Context, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountGalleryItem, gDto.QueryParams{}, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		return total, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save gallery count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.GalleryItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetGalleryItem, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for gallery item")

		return res, nil
	}

	item, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get gallery item")

		return res, fmt.Errorf("failed to get gallery item: %w", err)
	}

	if item.ID == constant.Empty || item.Status == model.StatusDeleted {
		return res, failure.NotFound("gallery item not found")
	}

	res.FromModel(item, 0)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save gallery item to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateGalleryItemRequest) (res dto.UploadGalleryItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		return res, failure.SignInRequired
	}

	if len(req.Images) < model.MinImages || len(req.Images) > model.MaxImages {
		return res, failure.BadRequestFromString(fmt.Sprintf("between %d and %d images are required", model.MinImages, model.MaxImages))
	}

	bucketName := s.cfg.External.S3.BucketName
	directory := path.Join(model.EntityName, user, strconv.FormatInt(timezone.Now().Unix(), 10))

	uploadedNames := []string{}
	imageURLs := []string{}

	for i, header := range req.Images {
		fileName := fmt.Sprintf("%02d-%s", i+1, header.Filename)

		url, uploadErr := s.s3.UploadFile(ctx, bucketName, directory, req.ImageFiles[i], header, fileName)
		if uploadErr != nil {
			log.Error().Err(uploadErr).Str("fileName", fileName).Msg("failed to upload gallery image, aborting")
			s.cleanupUploads(ctx, bucketName, directory, uploadedNames)

			return res, fmt.Errorf("failed to upload gallery image: %w", uploadErr)
		}

		uploadedNames = append(uploadedNames, fileName)
		imageURLs = append(imageURLs, url)
	}

	item := req.ToModel(user, imageURLs)

	if err = s.repo.Insert(ctx, item); err != nil {
		s.cleanupUploads(ctx, bucketName, directory, uploadedNames)

		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllGalleryItem)
		shared.InvalidateCaches(c, s.cache, cacheCountGalleryItem)
	}()

	res.FromModel(item)

	return res, nil
}

// cleanupUploads removes already-staged objects after a failed upload run.
// Failures here are logged and otherwise swallowed.
func (s *serviceImpl) cleanupUploads(ctx context.Context, bucketName, directory string, fileNames []string) {
	c := context.WithoutCancel(ctx)

	for _, name := range fileNames {
		if err := s.s3.DeleteFile(c, bucketName, directory, name); err != nil {
			log.Error().Err(err).Str("fileName", name).Msg("failed to clean up staged gallery image")
		}
	}
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateGalleryItemRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check gallery item existence")

		return err
	}

	if !exist {
		return failure.NotFound("gallery item not found")
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update gallery item")

		return fmt.Errorf("failed to update gallery item: %w", err)
	}

	s.invalidateItem(ctx, id)

	return nil
}

func (s *serviceImpl) Archive(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, model.StatusArchived)
}

func (s *serviceImpl) Restore(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, model.StatusPublished)
}

// Delete is a soft delete. Uploaded objects stay in S3 with the row.
func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, model.StatusDeleted)
}

func (s *serviceImpl) setStatus(ctx context.Context, id, status string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".setStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check gallery item existence")

		return err
	}

	if !exist {
		return failure.NotFound("gallery item not found")
	}

	updatedFields := map[string]any{
		model.FieldStatus: status,
		"modified_at":     timezone.Now(),
		"modified_by":     user,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Str("status", status).Msg("failed to change gallery item status")

		return fmt.Errorf("failed to change gallery item status: %w", err)
	}

	s.invalidateItem(ctx, id)

	return nil
}

func (s *serviceImpl) invalidateItem(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetGalleryItem, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete gallery item cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllGalleryItem)
		shared.InvalidateCaches(c, s.cache, cacheCountGalleryItem)
	}()
}
