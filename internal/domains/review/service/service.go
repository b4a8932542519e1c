package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"forge/config"
	"forge/infras/kafka"
	"forge/infras/otel"
	"forge/internal/domains/review/model"
	"forge/internal/domains/review/model/dto"
	"forge/internal/domains/review/repository"
	"forge/shared"
	"forge/shared/cache"
	"forge/shared/constant"
	gDto "forge/shared/dto"
	"forge/shared/failure"
	"forge/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllReview = "review:get_all"
	cacheCountReview  = "review:count"

	topicReviewSubmitted = "review.submitted"

	// maxStatsRows bounds the aggregate fetch; beyond it the stats are
	// computed over a truncated window and flagged as such.
	maxStatsRows = 1000

	pageSize = 10
)

type Review interface {
	Submit(ctx context.Context, req dto.SubmitReviewRequest) (dto.ReviewResponse, error)
	List(ctx context.Context, page int, projectID string) (dto.GetReviewsResponse, error)
	AdminList(ctx context.Context, page int, status string) (dto.GetReviewsResponse, error)
	Approve(ctx context.Context, id string) error
	Reject(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (dto.ReviewStatsResponse, error)
}

type serviceImpl struct {
	repo  repository.Review
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	kafka kafka.Client
}

func New(repo repository.Review, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, kafka kafka.Client) Review {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		kafka: kafka,
	}
}

func (s *serviceImpl) Submit(ctx context.Context, req dto.SubmitReviewRequest) (res dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if user == constant.Empty && (req.Name == constant.Empty || req.Email == constant.Empty) {
		return res, failure.BadRequestFromString("name and email are required for anonymous reviews")
	}

	review := req.ToModel(user)

	if err = s.repo.Insert(ctx, review); err != nil {
		log.Error().Err(err).Msg("failed to insert review")

		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllReview)
		shared.InvalidateCaches(c, s.cache, cacheCountReview)

		if s.cfg.Kafka.Enable {
			message := kafka.Message{Key: review.ID, Value: review}
			if err := s.kafka.SendMessages(c, topicReviewSubmitted, message); err != nil {
				log.Error().Err(err).Msg("failed to publish review submitted event")
			}
		}
	}()

	res.FromModel(review)

	return res, nil
}

func (s *serviceImpl) List(ctx context.Context, page int, projectID string) (res dto.GetReviewsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(err)

	if page < 1 {
		page = 1
	}

	filters := []any{
		gDto.Filter{Field: model.FieldIsApproved, Table: model.TableName, Value: true, Operator: gDto.FilterOperatorEq},
	}

	if projectID != constant.Empty {
		filters = append(filters, gDto.Filter{
			Field: model.FieldProjectID, Table: model.TableName, Value: projectID, Operator: gDto.FilterOperatorEq,
		})
	}

	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: filters}
	params := gDto.QueryParams{Page: page, Limit: pageSize, SortBy: model.FieldApprovedAt, SortDir: "DESC"}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReview, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reviews")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reviews")

		return res, err
	}

	reviews, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reviews")

		return res, err
	}

	res.FromModels(reviews, total, pageSize)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reviews to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) AdminList(ctx context.Context, page int, status string) (res dto.GetReviewsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AdminList")
	defer scope.End()
	defer scope.TraceIfError(err)

	if page < 1 {
		page = 1
	}

	filter, err := statusFilter(status)
	if err != nil {
		return res, err
	}

	params := gDto.QueryParams{Page: page, Limit: pageSize, SortBy: "created_at", SortDir: "DESC"}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reviews for moderation")

		return res, err
	}

	reviews, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reviews for moderation")

		return res, err
	}

	res.FromModels(reviews, total, pageSize)

	return res, nil
}

// statusFilter maps a moderation status onto the tri-state columns.
func statusFilter(status string) (gDto.FilterGroup, error) {
	switch status {
	case constant.Empty:
		return gDto.FilterGroup{}, nil
	case model.StatusApproved:
		return gDto.FilterGroup{Filters: []any{
			gDto.Filter{Field: model.FieldIsApproved, Table: model.TableName, Value: true, Operator: gDto.FilterOperatorEq},
		}}, nil
	case model.StatusPending:
		return gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: []any{
			gDto.Filter{Field: model.FieldIsApproved, Table: model.TableName, Value: false, Operator: gDto.FilterOperatorEq},
			gDto.Filter{Field: model.FieldRejectedAt, Table: model.TableName, Operator: gDto.FilterIsNull},
		}}, nil
	case model.StatusRejected:
		return gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: []any{
			gDto.Filter{Field: model.FieldIsApproved, Table: model.TableName, Value: false, Operator: gDto.FilterOperatorEq},
			gDto.Filter{Field: model.FieldRejectedAt, Table: model.TableName, Operator: gDto.FilterIsNotNull},
		}}, nil
	default:
		return gDto.FilterGroup{}, failure.BadRequestFromString("unknown review status")
	}
}

// Approve marks the review approved and clears any earlier rejection. All
// transitions between moderation states are permitted.
func (s *serviceImpl) Approve(ctx context.Context, id string) error {
	return s.moderate(ctx, id, map[string]any{
		model.FieldIsApproved: true,
		model.FieldApprovedAt: timezone.Now(),
		model.FieldRejectedAt: nil,
	})
}

func (s *serviceImpl) Reject(ctx context.Context, id string) error {
	return s.moderate(ctx, id, map[string]any{
		model.FieldIsApproved: false,
		model.FieldApprovedAt: nil,
		model.FieldRejectedAt: timezone.Now(),
	})
}

func (s *serviceImpl) moderate(ctx context.Context, id string, fields map[string]any) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".moderate")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check review existence")

		return err
	}

	if !exist {
		return failure.NotFound("review not found")
	}

	fields[constant.FieldModifiedAt] = timezone.Now()
	fields[constant.FieldModifiedBy] = user

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to moderate review")

		return fmt.Errorf("failed to moderate review: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllReview)
		shared.InvalidateCaches(c, s.cache, cacheCountReview)
	}()

	return nil
}

// Delete removes the review permanently, from any moderation state.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check review existence")

		return err
	}

	if !exist {
		return failure.NotFound("review not found")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete review")

		return fmt.Errorf("failed to delete review: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllReview)
		shared.InvalidateCaches(c, s.cache, cacheCountReview)
	}()

	return nil
}

func (s *serviceImpl) Stats(ctx context.Context) (res dto.ReviewStatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Stats")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{Limit: maxStatsRows, SortBy: "created_at", SortDir: "DESC"}

	reviews, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch reviews for stats")

		return res, err
	}

	truncated := len(reviews) == maxStatsRows
	if truncated {
		log.Warn().Int("cap", maxStatsRows).Msg("review stats computed over a truncated window")
	}

	res.FromModels(reviews, truncated)

	return res, nil
}
