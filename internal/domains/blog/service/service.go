package service

import (
	"context"
	"fmt"
	"manzil/config"
	"manzil/infras/otel"
	"manzil/internal/domains/blog/model"
	"manzil/internal/domains/blog/model/dto"
	"manzil/internal/domains/blog/repository"
	"manzil/shared"
	"manzil/shared/cache"
	"manzil/shared/constant"
	gDto "manzil/shared/dto"
	"manzil/shared/failure"
	"manzil/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBlog    = "blog:get"
	cacheGetAllBlog = "blog:gets"
	cacheCountBlog  = "blog:count"
)

type Blog interface {
	Create(ctx context.Context, req dto.CreateBlogRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBlogsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	GetPublished(ctx context.Context, req gDto.QueryParams, category string) (dto.GetBlogsResponse, error)
	Get(ctx context.Context, id string) (dto.BlogResponse, error)
	GetBySlug(ctx context.Context, slug string) (dto.BlogResponse, error)
	Update(ctx context.Context, req dto.UpdateBlogRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Blog
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Blog, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Blog {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBlogRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	slugTaken, err := s.repo.Exist(ctx, slugFilter(req.Slug))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if slug exists")

		return fmt.Errorf("failed to check if slug exists: %w", err)
	}

	if slugTaken {
		return failure.Conflict("slug is already in use") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create blog")

		return fmt.Errorf("failed to create blog: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBlog)
		shared.InvalidateCaches(c, s.cache, cacheCountBlog)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBlogsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBlog, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for blogs")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count blogs")

		return res, fmt.Errorf("failed to count blogs: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get blogs")

		return res, fmt.Errorf("failed to get blogs: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save blogs to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBlog, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for blog count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count blogs")

		return res, fmt.Errorf("failed to count blogs: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save blog count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetPublished(ctx context.Context, req gDto.QueryParams, category string) (res dto.GetBlogsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetPublished")
	defer scope.End()
	defer scope.TraceIfError(err)

	filters := []any{
		gDto.Filter{
			Field:    model.FieldPublished,
			Value:    true,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		},
	}

	if category != "" {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldCategory,
			Value:    category,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	filter := gDto.FilterGroup{
		Filters:  filters,
		Operator: gDto.FilterGroupOperatorAnd,
	}

	return s.GetAll(ctx, req, filter)
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BlogResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBlog, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for blog")

		return res, nil
	}

	blog, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get blog")

		return res, fmt.Errorf("failed to get blog: %w", err)
	}

	if blog.ID == constant.Empty {
		return res, failure.NotFound("blog not found") // nolint:wrapcheck
	}

	res.FromModel(blog)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save blog to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetBySlug(ctx context.Context, slug string) (res dto.BlogResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBySlug")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBlog, "slug", slug)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for blog")

		return res, nil
	}

	blog, err := s.repo.Get(ctx, slugFilter(slug))
	if err != nil {
		log.Error().Err(err).Msg("failed to get blog by slug")

		return res, fmt.Errorf("failed to get blog by slug: %w", err)
	}

	if blog.ID == constant.Empty || !blog.Published {
		return res, failure.NotFound("blog not found") // nolint:wrapcheck
	}

	res.FromModel(blog)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save blog to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBlogRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	blog, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get blog")

		return fmt.Errorf("failed to get blog: %w", err)
	}

	if blog.ID == constant.Empty {
		return failure.NotFound("blog not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)

	if blocks := req.ToBlocks(); blocks != nil {
		updatedFields["content"] = blocks
	}

	// First transition to published stamps the publication time.
	if req.Published != nil && *req.Published && !blog.Published {
		updatedFields["published_at"] = timezone.Now()
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update blog")

		return fmt.Errorf("failed to update blog: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBlog, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete blog from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetBlog)
		shared.InvalidateCaches(c, s.cache, cacheGetAllBlog)
		shared.InvalidateCaches(c, s.cache, cacheCountBlog)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if blog exists")

		return fmt.Errorf("failed to check if blog exists: %w", err)
	}

	if !exist {
		log.Error().Msg("blog not found")

		return failure.NotFound("blog not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete blog")

		return fmt.Errorf("failed to delete blog: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetBlog)
		shared.InvalidateCaches(c, s.cache, cacheGetAllBlog)
		shared.InvalidateCaches(c, s.cache, cacheCountBlog)
	}()

	return nil
}

func slugFilter(slug string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldSlug,
				Value:    slug,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}
}
