package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"manzil/config"
	"manzil/infras/kafka"
	"manzil/infras/otel"
	"manzil/internal/domains/activity/model/dto"
	"manzil/internal/domains/activity/repository"
	"manzil/shared/constant"
	gDto "manzil/shared/dto"

	"github.com/rs/zerolog/log"
)

type Activity interface {
	Record(ctx context.Context, req dto.RecordActivityRequest)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetActivitiesResponse, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type serviceImpl struct {
	repo  repository.Activity
	kafka kafka.Client
	cfg   *config.Config
	otel  otel.Otel
}

func New(repo repository.Activity, kafka kafka.Client, cfg *config.Config, otel otel.Otel) Activity {
	return &serviceImpl{
		repo:  repo,
		kafka: kafka,
		cfg:   cfg,
		otel:  otel,
	}
}

// Record stores an activity entry and publishes it to the activity topic.
// Both writes are best-effort: a failing log write never fails the action
// that produced it.
func (s *serviceImpl) Record(ctx context.Context, req dto.RecordActivityRequest) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Record")
	defer scope.End()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	ip, _ := ctx.Value(constant.ContextKeyClientIP).(string)
	userAgent, _ := ctx.Value(constant.ContextKeyUserAgent).(string)

	activity := req.ToModel(user, ip, userAgent)

	if err := s.repo.Insert(ctx, activity); err != nil {
		log.Error().Err(err).Str("action", req.Action).Msg("failed to record activity")
	}

	if !s.cfg.Kafka.Enable {
		return
	}

	message := kafka.Message{
		Key:   activity.ID,
		Value: activity,
	}

	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.ActivityTopic, message); err != nil {
		log.Error().Err(err).Str("action", req.Action).Msg("failed to publish activity to kafka")
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetActivitiesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count activities")

		return res, fmt.Errorf("failed to count activities: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get activities")

		return res, fmt.Errorf("failed to get activities: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count activities")

		return res, fmt.Errorf("failed to count activities: %w", err)
	}

	return res, nil
}
