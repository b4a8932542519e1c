package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"forge/config"
	"forge/infras/kafka"
	"forge/infras/otel"
	"forge/internal/domains/engagement/model"
	"forge/internal/domains/engagement/model/dto"
	"forge/internal/domains/engagement/repository"
	galleryModel "forge/internal/domains/gallery/model"
	galleryDto "forge/internal/domains/gallery/model/dto"
	galleryRepo "forge/internal/domains/gallery/repository"
	"forge/shared"
	"forge/shared/cache"
	"forge/shared/constant"
	gDto "forge/shared/dto"
	"forge/shared/failure"
	"forge/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	topicEngagementToggled = "engagement.toggled"

	cacheGalleryPrefix = "gallery"
)

type Engagement interface {
	Toggle(ctx context.Context, itemID, kind string) (dto.ToggleResponse, error)
	Get(ctx context.Context, itemID string) (dto.EngagementResponse, error)
	SavedItems(ctx context.Context, page int) (galleryDto.GetGalleryItemsResponse, error)
}

type serviceImpl struct {
	repo    repository.Engagement
	gallery galleryRepo.GalleryItem
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
	kafka   kafka.Client
}

func New(repo repository.Engagement, gallery galleryRepo.GalleryItem, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, kafka kafka.Client) Engagement {
	return &serviceImpl{
		repo:    repo,
		gallery: gallery,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
		kafka:   kafka,
	}
}

func (s *serviceImpl) Toggle(ctx context.Context, itemID, kind string) (res dto.ToggleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Toggle")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		return res, failure.SignInRequired
	}

	if !model.ValidKind(kind) {
		return res, failure.BadRequestFromString("unknown engagement kind")
	}

	edge := model.Edge{
		ID:        uuid.NewString(),
		UserID:    user,
		ItemID:    itemID,
		Kind:      kind,
		CreatedAt: timezone.Now(),
	}

	active, count, err := s.repo.Toggle(ctx, edge)
	if err != nil {
		log.Error().Err(err).Str("itemID", itemID).Str("kind", kind).Msg("failed to toggle engagement")

		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGalleryPrefix)

		event := dto.ToggleEvent{
			UserID:   user,
			ItemID:   itemID,
			Kind:     kind,
			Active:   active,
			Count:    count,
			OccurUTC: timezone.Now().Unix(),
		}

		if s.cfg.Kafka.Enable {
			message := kafka.Message{Key: itemID, Value: event}
			if err := s.kafka.SendMessages(c, topicEngagementToggled, message); err != nil {
				log.Error().Err(err).Msg("failed to publish engagement toggle event")
			}
		}
	}()

	res.Active = active
	res.Count = count

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, itemID string) (res dto.EngagementResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	item, err := s.gallery.Get(ctx, shared.FilterByID(itemID, galleryModel.FieldID, galleryModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get gallery item for engagement")

		return res, fmt.Errorf("failed to get gallery item for engagement: %w", err)
	}

	if item.ID == constant.Empty || item.Status == galleryModel.StatusDeleted {
		return res, failure.NotFound("gallery item not found")
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	liked, saved, err := s.repo.Flags(ctx, user, itemID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get engagement flags")

		return res, err
	}

	res.Liked = liked
	res.Saved = saved
	res.LikeCount = item.LikeCount
	res.SaveCount = item.SaveCount

	return res, nil
}

func (s *serviceImpl) SavedItems(ctx context.Context, page int) (res galleryDto.GetGalleryItemsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SavedItems")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		return res, failure.SignInRequired
	}

	if page < 1 {
		page = 1
	}

	total, err := s.repo.CountBy(ctx, user, model.KindSave)
	if err != nil {
		log.Error().Err(err).Msg("failed to count saved items")

		return res, err
	}

	params := gDto.QueryParams{
		Page:    page,
		Limit:   galleryDto.PageSize,
		SortBy:  model.FieldCreatedAt,
		SortDir: "DESC",
	}

	ids, err := s.repo.ItemIDs(ctx, user, model.KindSave, params)
	if err != nil {
		log.Error().Err(err).Msg("failed to list saved item ids")

		return res, err
	}

	if len(ids) == 0 {
		res.FromModels([]galleryModel.GalleryItem{}, total, page, galleryDto.PageSize)

		return res, nil
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: galleryModel.FieldID, Table: galleryModel.TableName, Value: ids, Operator: gDto.FilterOperatorIn},
			gDto.Filter{Field: galleryModel.FieldStatus, Table: galleryModel.TableName, Value: galleryModel.StatusPublished, Operator: gDto.FilterOperatorEq},
		},
	}

	items, err := s.gallery.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to load saved items")

		return res, err
	}

	// Preserve the save order: edges were fetched newest first.
	byID := make(map[string]galleryModel.GalleryItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	ordered := make([]galleryModel.GalleryItem, 0, len(items))

	for _, id := range ids {
		if item, ok := byID[id]; ok {
			ordered = append(ordered, item)
		}
	}

	res.FromModels(ordered, total, page, galleryDto.PageSize)

	return res, nil
}
