package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"manzil/infras/otel"
	"manzil/infras/postgres"
	"manzil/internal/domains/room/model"
	"manzil/shared/constant"
	gDto "manzil/shared/dto"
	gRepo "manzil/shared/repository"
	"manzil/shared/timezone"
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	ConsumeAvailability(ctx context.Context, id, user string) (bool, error)
	RestoreAvailability(ctx context.Context, id, user string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ConsumeAvailability decrements the room's availability only while it is
// still positive. It reports false when no row qualified, which means the
// room is sold out (or does not exist).
func (repo *repositoryImpl) ConsumeAvailability(ctx context.Context, id, user string) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".ConsumeAvailability")
	defer scope.End()

	query := fmt.Sprintf("UPDATE %s SET available = available - 1, modified_at = :modified_at, modified_by = :modified_by WHERE id = :id AND available > 0", model.TableName)

	affected, err := repo.ExecNamed(ctx, query, map[string]any{
		"id":          id,
		"modified_at": timezone.Now(),
		"modified_by": user,
	})
	if err != nil {
		scope.TraceError(err)

		return false, fmt.Errorf("failed to consume room availability: %w", err)
	}

	return affected > 0, nil
}

// RestoreAvailability gives one unit of availability back, used when a
// booking is cancelled or fails after the decrement.
func (repo *repositoryImpl) RestoreAvailability(ctx context.Context, id, user string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".RestoreAvailability")
	defer scope.End()

	query := fmt.Sprintf("UPDATE %s SET available = available + 1, modified_at = :modified_at, modified_by = :modified_by WHERE id = :id", model.TableName)

	if _, err := repo.ExecNamed(ctx, query, map[string]any{
		"id":          id,
		"modified_at": timezone.Now(),
		"modified_by": user,
	}); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to restore room availability: %w", err)
	}

	return nil
}
