package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"manzil/infras/otel"
	"manzil/infras/postgres"
	"manzil/internal/domains/contact/model"
	gDto "manzil/shared/dto"
	gRepo "manzil/shared/repository"
)

type Contact interface {
	Insert(ctx context.Context, model model.ContactMessage) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ContactMessage, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ContactMessage, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type Newsletter interface {
	Insert(ctx context.Context, model model.NewsletterSubscription) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.NewsletterSubscription, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type contactRepositoryImpl struct {
	gRepo.Repository[model.ContactMessage]
	db   *postgres.Connection
	otel otel.Otel
}

func NewContact(db *postgres.Connection, otel otel.Otel) Contact {
	return &contactRepositoryImpl{
		Repository: gRepo.NewRepository[model.ContactMessage](model.ContactEntityName, model.ContactTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type newsletterRepositoryImpl struct {
	gRepo.Repository[model.NewsletterSubscription]
	db   *postgres.Connection
	otel otel.Otel
}

func NewNewsletter(db *postgres.Connection, otel otel.Otel) Newsletter {
	return &newsletterRepositoryImpl{
		Repository: gRepo.NewRepository[model.NewsletterSubscription](model.NewsletterEntityName, model.NewsletterTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
