package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./mocks/repository_mock.go -package=mocks

import (
	"context"

	"forge/infras/otel"
	"forge/infras/postgres"
	"forge/internal/domains/gallery/model"
	gDto "forge/shared/dto"
	gRepo "forge/shared/repository"
)

type GalleryItem interface {
	Insert(ctx context.Context, model model.GalleryItem) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.GalleryItem, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.GalleryItem, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.GalleryItem]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) GalleryItem {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.GalleryItem](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
