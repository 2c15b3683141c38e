package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"manzil/config"
	kafkaMocks "manzil/infras/kafka/mocks"
	"manzil/infras/otel/mocks"
	activityMocks "manzil/internal/domains/activity/mocks"
	"manzil/internal/domains/activity/model"
	"manzil/internal/domains/activity/model/dto"
	"manzil/internal/domains/activity/service"
	"manzil/shared/constant"
	gDto "manzil/shared/dto"
)

func newActivityService(t *testing.T, kafkaEnabled bool) (service.Activity, *activityMocks.MockActivity, *kafkaMocks.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := activityMocks.NewMockActivity(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Kafka.Enable = kafkaEnabled
	cfg.Kafka.ActivityTopic = "manzil.activities"

	svc := service.New(mockRepo, mockKafka, cfg, mockOtel)

	return svc, mockRepo, mockKafka
}

func recordRequest() dto.RecordActivityRequest {
	return dto.RecordActivityRequest{
		Action:   "booking.created",
		Entity:   "booking",
		EntityID: "booking-id",
		Detail:   map[string]any{"confirmation_code": "A1B2C3D4"},
	}
}

func TestActivityService_Record(t *testing.T) {
	t.Run("entry is stored and published", func(t *testing.T) {
		svc, mockRepo, mockKafka := newActivityService(t, true)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-id")
		ctx = context.WithValue(ctx, constant.ContextKeyClientIP, "203.0.113.7")
		ctx = context.WithValue(ctx, constant.ContextKeyUserAgent, "manzil-client/1.0")

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, activity model.Activity) error {
				assert.Equal(t, "booking.created", activity.Action)
				assert.Equal(t, "user-id", activity.UserID)
				assert.Equal(t, "203.0.113.7", activity.IP)
				assert.Equal(t, "manzil-client/1.0", activity.UserAgent)

				return nil
			})
		mockKafka.EXPECT().SendMessages(gomock.Any(), "manzil.activities", gomock.Any()).Return(nil)

		svc.Record(ctx, recordRequest())
	})

	t.Run("failing store still publishes", func(t *testing.T) {
		svc, mockRepo, mockKafka := newActivityService(t, true)

		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
		mockKafka.EXPECT().SendMessages(gomock.Any(), "manzil.activities", gomock.Any()).Return(errors.New("broker unavailable"))

		svc.Record(context.Background(), recordRequest())
	})

	t.Run("disabled kafka skips publishing", func(t *testing.T) {
		svc, mockRepo, _ := newActivityService(t, false)

		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		svc.Record(context.Background(), recordRequest())
	})
}

func TestActivityService_GetAll(t *testing.T) {
	svc, mockRepo, _ := newActivityService(t, false)

	mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Activity{
			{ID: "activity-1", Action: "booking.created"},
			{ID: "activity-2", Action: "booking.cancelled"},
		}, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 50}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Len(t, res.Activities, 2)
	assert.Equal(t, 2, res.TotalData)
}
