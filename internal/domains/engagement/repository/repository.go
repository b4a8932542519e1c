package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"forge/infras/otel"
	"forge/infras/postgres"
	"forge/internal/domains/engagement/model"
	"forge/shared/constant"
	gDto "forge/shared/dto"
	"forge/shared/failure"
	"forge/shared/logger"
	gRepo "forge/shared/repository"

	"github.com/rs/zerolog/log"
)

type Engagement interface {
	Toggle(ctx context.Context, edge model.Edge) (active bool, count int, err error)
	Flags(ctx context.Context, userID, itemID string) (liked, saved bool, err error)
	ItemIDs(ctx context.Context, userID, kind string, params gDto.QueryParams) ([]string, error)
	CountBy(ctx context.Context, userID, kind string) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Edge]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Engagement {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Edge](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Toggle flips the edge and adjusts the matching denormalized counter in a
// single transaction. The counter is floored at zero. Returns the resulting
// state and counter value.
func (repo *repositoryImpl) Toggle(ctx context.Context, edge model.Edge) (active bool, count int, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".engagement_edge.Toggle")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return false, 0, fmt.Errorf("failed to begin toggle transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				log.Error().Err(rbErr).Msg("failed to roll back toggle transaction")
			}
		}
	}()

	deleteQuery := fmt.Sprintf(
		"DELETE FROM %s WHERE %s = $1 AND %s = $2 AND %s = $3",
		model.TableName, model.FieldUserID, model.FieldItemID, model.FieldKind,
	)

	res, err := tx.ExecContext(ctx, deleteQuery, edge.UserID, edge.ItemID, edge.Kind)
	if err != nil {
		logger.ErrorWithStack(err)

		return false, 0, fmt.Errorf("failed to toggle engagement edge: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)

		return false, 0, fmt.Errorf("failed to toggle engagement edge: %w", err)
	}

	delta := 1
	if affected > 0 {
		delta = -1
	} else {
		insertQuery := fmt.Sprintf(
			"INSERT INTO %s (id, user_id, item_id, kind, created_at) VALUES (:id, :user_id, :item_id, :kind, :created_at)",
			model.TableName,
		)

		if _, err = tx.NamedExecContext(ctx, insertQuery, edge); err != nil {
			logger.ErrorWithStack(err)

			return false, 0, fmt.Errorf("failed to insert engagement edge: %w", err)
		}

		active = true
	}

	counterColumn := model.CounterColumn(edge.Kind)
	counterQuery := fmt.Sprintf(
		"UPDATE gallery_items SET %s = GREATEST(%s + $1, 0) WHERE id = $2 RETURNING %s",
		counterColumn, counterColumn, counterColumn,
	)

	err = tx.QueryRowxContext(ctx, counterQuery, delta, edge.ItemID).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		err = failure.NotFound("gallery item not found")

		return false, 0, err
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return false, 0, fmt.Errorf("failed to adjust engagement counter: %w", err)
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return false, 0, fmt.Errorf("failed to commit toggle transaction: %w", err)
	}

	return active, count, nil
}

func (repo *repositoryImpl) Flags(ctx context.Context, userID, itemID string) (liked, saved bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".engagement_edge.Flags")
	defer scope.End()
	defer scope.TraceIfError(err)

	if userID == constant.Empty {
		return false, false, nil
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldUserID, Table: model.TableName, Value: userID, Operator: gDto.FilterOperatorEq},
			gDto.Filter{Field: model.FieldItemID, Table: model.TableName, Value: itemID, Operator: gDto.FilterOperatorEq},
		},
	}

	edges, err := repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		return false, false, err
	}

	for _, edge := range edges {
		switch edge.Kind {
		case model.KindLike:
			liked = true
		case model.KindSave:
			saved = true
		}
	}

	return liked, saved, nil
}

func (repo *repositoryImpl) ItemIDs(ctx context.Context, userID, kind string, params gDto.QueryParams) ([]string, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".engagement_edge.ItemIDs")
	defer scope.End()

	filter := byUserAndKind(userID, kind)

	edges, err := repo.GetAll(ctx, params, filter)
	if err != nil {
		scope.TraceError(err)

		return nil, err
	}

	ids := make([]string, len(edges))
	for i, edge := range edges {
		ids[i] = edge.ItemID
	}

	return ids, nil
}

func (repo *repositoryImpl) CountBy(ctx context.Context, userID, kind string) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".engagement_edge.CountBy")
	defer scope.End()

	return repo.Count(ctx, byUserAndKind(userID, kind)) //nolint:wrapcheck
}

func byUserAndKind(userID, kind string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldUserID, Table: model.TableName, Value: userID, Operator: gDto.FilterOperatorEq},
			gDto.Filter{Field: model.FieldKind, Table: model.TableName, Value: kind, Operator: gDto.FilterOperatorEq},
		},
	}
}
