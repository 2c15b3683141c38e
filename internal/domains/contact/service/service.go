package service

import (
	"context"
	"fmt"
	"manzil/config"
	"manzil/infras/otel"
	"manzil/internal/domains/contact/model"
	"manzil/internal/domains/contact/model/dto"
	"manzil/internal/domains/contact/repository"
	"manzil/shared"
	"manzil/shared/cache"
	"manzil/shared/constant"
	gDto "manzil/shared/dto"
	"manzil/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllContact    = "contact:gets"
	cacheGetAllNewsletter = "newsletter:gets"
)

type Contact interface {
	CreateMessage(ctx context.Context, req dto.CreateContactMessageRequest) error
	GetMessages(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetContactMessagesResponse, error)
	DeleteMessage(ctx context.Context, id string) error
	Subscribe(ctx context.Context, req dto.SubscribeNewsletterRequest) error
	GetSubscriptions(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetNewsletterSubscriptionsResponse, error)
	Unsubscribe(ctx context.Context, email string) error
}

type serviceImpl struct {
	repo           repository.Contact
	newsletterRepo repository.Newsletter
	cfg            *config.Config
	cache          cache.RedisCache
	otel           otel.Otel
}

func New(repo repository.Contact, newsletterRepo repository.Newsletter, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Contact {
	return &serviceImpl{
		repo:           repo,
		newsletterRepo: newsletterRepo,
		cfg:            cfg,
		cache:          cache,
		otel:           otel,
	}
}

func (s *serviceImpl) CreateMessage(ctx context.Context, req dto.CreateContactMessageRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateMessage")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create contact message")

		return fmt.Errorf("failed to create contact message: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllContact)
	}()

	return nil
}

func (s *serviceImpl) GetMessages(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetContactMessagesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMessages")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllContact, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for contact messages")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count contact messages")

		return res, fmt.Errorf("failed to count contact messages: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get contact messages")

		return res, fmt.Errorf("failed to get contact messages: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save contact messages to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) DeleteMessage(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteMessage")
	defer scope.End()
	defer scope.TraceIfError(err)

	message, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.ContactTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get contact message")

		return fmt.Errorf("failed to get contact message: %w", err)
	}

	if message.ID == constant.Empty {
		return failure.NotFound("contact message not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.ContactTableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete contact message")

		return fmt.Errorf("failed to delete contact message: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllContact)
	}()

	return nil
}

// Subscribe stores a newsletter subscription. Subscribing an email twice is
// rejected as a conflict rather than silently deduplicated.
func (s *serviceImpl) Subscribe(ctx context.Context, req dto.SubscribeNewsletterRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Subscribe")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	subscribed, err := s.newsletterRepo.Exist(ctx, emailFilter(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check newsletter subscription")

		return fmt.Errorf("failed to check newsletter subscription: %w", err)
	}

	if subscribed {
		return failure.Conflict("email is already subscribed") // nolint:wrapcheck
	}

	if err = s.newsletterRepo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to subscribe to newsletter")

		return fmt.Errorf("failed to subscribe to newsletter: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllNewsletter)
	}()

	return nil
}

func (s *serviceImpl) GetSubscriptions(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetNewsletterSubscriptionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSubscriptions")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllNewsletter, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for newsletter subscriptions")

		return res, nil
	}

	total, err := s.newsletterRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count newsletter subscriptions")

		return res, fmt.Errorf("failed to count newsletter subscriptions: %w", err)
	}

	models, err := s.newsletterRepo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get newsletter subscriptions")

		return res, fmt.Errorf("failed to get newsletter subscriptions: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save newsletter subscriptions to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Unsubscribe(ctx context.Context, email string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Unsubscribe")
	defer scope.End()
	defer scope.TraceIfError(err)

	subscribed, err := s.newsletterRepo.Exist(ctx, emailFilter(email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check newsletter subscription")

		return fmt.Errorf("failed to check newsletter subscription: %w", err)
	}

	if !subscribed {
		return failure.NotFound("subscription not found") // nolint:wrapcheck
	}

	if err = s.newsletterRepo.Delete(ctx, emailFilter(email)); err != nil {
		log.Error().Err(err).Msg("failed to unsubscribe from newsletter")

		return fmt.Errorf("failed to unsubscribe from newsletter: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllNewsletter)
	}()

	return nil
}

func emailFilter(email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldEmail,
				Value:    email,
				Operator: gDto.FilterOperatorEq,
				Table:    model.NewsletterTableName,
			},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}
}
