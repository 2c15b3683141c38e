package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"manzil/config"
	"manzil/infras/otel/mocks"
	s3Mocks "manzil/infras/s3/mocks"
	mediaMocks "manzil/internal/domains/media/mocks"
	"manzil/internal/domains/media/model"
	"manzil/internal/domains/media/model/dto"
	"manzil/internal/domains/media/service"
	cacheMocks "manzil/shared/cache/mocks"
	"manzil/shared/constant"
	"manzil/shared/failure"
)

const testBucket = "manzil-media"

func newMediaService(t *testing.T) (service.Media, *mediaMocks.MockMedia, *s3Mocks.MockS3, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mediaMocks.NewMockMedia(ctrl)
	mockStorage := s3Mocks.NewMockS3(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = testBucket

	svc := service.New(mockRepo, mockStorage, cfg, mockCache, mockOtel)

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return svc, mockRepo, mockStorage, mockCache
}

func uploadRequest() dto.UploadMediaRequest {
	header := textproto.MIMEHeader{}
	header.Set("Content-Type", "image/jpeg")

	return dto.UploadMediaRequest{
		File: &multipart.FileHeader{
			Filename: "pool.jpg",
			Header:   header,
			Size:     2048,
		},
		Category: "hotel",
	}
}

func TestMediaService_Upload(t *testing.T) {
	svc, mockRepo, mockStorage, _ := newMediaService(t)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")

	t.Run("successful upload", func(t *testing.T) {
		mockStorage.EXPECT().
			UploadFile(gomock.Any(), testBucket, model.EntityName, gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, _ multipart.File, _ *multipart.FileHeader, fileName string) (string, error) {
				assert.True(t, strings.HasSuffix(fileName, "_pool.jpg"))

				return "https://cdn.example.com/media/" + fileName, nil
			})
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, media model.Media) error {
				assert.Equal(t, "pool.jpg", media.FileName)
				assert.Equal(t, "image/jpeg", media.ContentType)
				assert.Equal(t, "admin-id", media.CreatedBy)

				return nil
			})

		res, err := svc.Upload(ctx, uploadRequest())

		assert.NoError(t, err)
		assert.Equal(t, "pool.jpg", res.FileName)
		assert.Contains(t, res.URL, "https://cdn.example.com/media/")
	})

	t.Run("failed record insert cleans up the uploaded file", func(t *testing.T) {
		mockStorage.EXPECT().
			UploadFile(gomock.Any(), testBucket, model.EntityName, gomock.Any(), gomock.Any(), gomock.Any()).
			Return("https://cdn.example.com/media/object", nil)
		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
		mockStorage.EXPECT().DeleteFile(gomock.Any(), testBucket, model.EntityName, gomock.Any()).Return(nil)

		_, err := svc.Upload(ctx, uploadRequest())

		assert.Error(t, err)
	})

	t.Run("storage failure", func(t *testing.T) {
		mockStorage.EXPECT().
			UploadFile(gomock.Any(), testBucket, model.EntityName, gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errors.New("storage unavailable"))

		_, err := svc.Upload(ctx, uploadRequest())

		assert.Error(t, err)
	})
}

func TestMediaService_Delete(t *testing.T) {
	svc, mockRepo, mockStorage, _ := newMediaService(t)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")

	t.Run("record and object are removed", func(t *testing.T) {
		media := model.Media{
			ID:  "media-id",
			URL: "https://cdn.example.com/media/object_pool.jpg",
		}

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(media, nil)
		mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		mockStorage.EXPECT().GetObjectNameFromURL(testBucket, media.URL).Return("media/object_pool.jpg")
		mockStorage.EXPECT().DeleteFile(gomock.Any(), testBucket, constant.Empty, "media/object_pool.jpg").Return(nil)

		err := svc.Delete(ctx, "media-id")

		assert.NoError(t, err)
	})

	t.Run("failing object delete does not fail the request", func(t *testing.T) {
		media := model.Media{
			ID:  "media-id",
			URL: "https://cdn.example.com/media/object_pool.jpg",
		}

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(media, nil)
		mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		mockStorage.EXPECT().GetObjectNameFromURL(testBucket, media.URL).Return("media/object_pool.jpg")
		mockStorage.EXPECT().DeleteFile(gomock.Any(), testBucket, constant.Empty, "media/object_pool.jpg").Return(errors.New("storage unavailable"))

		err := svc.Delete(ctx, "media-id")

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Media{}, nil)

		err := svc.Delete(ctx, "missing-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
