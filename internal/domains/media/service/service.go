package service

import (
	"context"
	"fmt"
	"manzil/config"
	"manzil/infras/otel"
	"manzil/infras/s3"
	"manzil/internal/domains/media/model"
	"manzil/internal/domains/media/model/dto"
	"manzil/internal/domains/media/repository"
	"manzil/shared"
	"manzil/shared/cache"
	"manzil/shared/constant"
	gDto "manzil/shared/dto"
	"manzil/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllMedia = "media:gets"
)

type Media interface {
	Upload(ctx context.Context, req dto.UploadMediaRequest) (dto.MediaResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetMediaResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo    repository.Media
	storage s3.S3
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
}

func New(repo repository.Media, storage s3.S3, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Media {
	return &serviceImpl{
		repo:    repo,
		storage: storage,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
	}
}

// Upload pushes the file to object storage under a generated name and keeps
// a record of it. The generated name avoids collisions between uploads that
// share an original filename.
func (s *serviceImpl) Upload(ctx context.Context, req dto.UploadMediaRequest) (res dto.MediaResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upload")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	objectName := fmt.Sprintf("%s_%s", uuid.NewString(), req.File.Filename)

	url, err := s.storage.UploadFile(ctx, s.cfg.External.S3.BucketName, model.EntityName, req.FileData, req.File, objectName)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload media")

		return res, fmt.Errorf("failed to upload media: %w", err)
	}

	media := req.ToModel(user, url)

	if err = s.repo.Insert(ctx, media); err != nil {
		log.Error().Err(err).Msg("failed to save media record")

		if deleteErr := s.storage.DeleteFile(ctx, s.cfg.External.S3.BucketName, model.EntityName, objectName); deleteErr != nil {
			log.Error().Err(deleteErr).Str("objectName", objectName).Msg("failed to clean up uploaded file")
		}

		return res, fmt.Errorf("failed to save media record: %w", err)
	}

	res.FromModel(media)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllMedia)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetMediaResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllMedia, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for media")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count media")

		return res, fmt.Errorf("failed to count media: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get media")

		return res, fmt.Errorf("failed to get media: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save media to cache")
		}
	}()

	return res, nil
}

// Delete removes the record and then the stored object. A failing object
// delete is logged but does not resurrect the record.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	media, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get media")

		return fmt.Errorf("failed to get media: %w", err)
	}

	if media.ID == constant.Empty {
		return failure.NotFound("media not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete media record")

		return fmt.Errorf("failed to delete media record: %w", err)
	}

	objectName := s.storage.GetObjectNameFromURL(s.cfg.External.S3.BucketName, media.URL)
	if objectName != constant.Empty {
		if deleteErr := s.storage.DeleteFile(ctx, s.cfg.External.S3.BucketName, constant.Empty, objectName); deleteErr != nil {
			log.Error().Err(deleteErr).Str("objectName", objectName).Msg("failed to delete file from storage")
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllMedia)
	}()

	return nil
}
