package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"manzil/config"
	"manzil/infras/otel/mocks"
	blogMocks "manzil/internal/domains/blog/mocks"
	"manzil/internal/domains/blog/model"
	"manzil/internal/domains/blog/model/dto"
	"manzil/internal/domains/blog/service"
	cacheMocks "manzil/shared/cache/mocks"
	"manzil/shared/constant"
	"manzil/shared/failure"
)

func newBlogService(t *testing.T) (service.Blog, *blogMocks.MockBlog, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := blogMocks.NewMockBlog(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return svc, mockRepo, mockCache
}

func createBlogRequest() dto.CreateBlogRequest {
	return dto.CreateBlogRequest{
		Title:    "Top Beaches in Jeddah",
		TitleAr:  "أفضل شواطئ جدة",
		Slug:     "top-beaches-in-jeddah",
		Category: "travel",
		Content: []dto.BlockRequest{
			{Type: "paragraph", Text: "The Red Sea coast has it all.", TextAr: "ساحل البحر الأحمر فيه كل شيء."},
		},
		Published: true,
	}
}

func TestBlogService_Create(t *testing.T) {
	svc, mockRepo, _ := newBlogService(t)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")

	t.Run("published post gets a publication time", func(t *testing.T) {
		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, blog model.Blog) error {
				assert.Equal(t, "top-beaches-in-jeddah", blog.Slug)
				assert.True(t, blog.Published)
				assert.NotNil(t, blog.PublishedAt)
				assert.Len(t, blog.Content, 1)

				return nil
			})

		err := svc.Create(ctx, createBlogRequest())

		assert.NoError(t, err)
	})

	t.Run("taken slug conflicts", func(t *testing.T) {
		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		err := svc.Create(ctx, createBlogRequest())

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestBlogService_GetBySlug(t *testing.T) {
	svc, mockRepo, mockCache := newBlogService(t)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()

	t.Run("published post", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Blog{
			ID:        "blog-id",
			Slug:      "top-beaches-in-jeddah",
			Published: true,
		}, nil)

		res, err := svc.GetBySlug(context.Background(), "top-beaches-in-jeddah")

		assert.NoError(t, err)
		assert.Equal(t, "top-beaches-in-jeddah", res.Slug)
	})

	t.Run("unpublished post is hidden", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Blog{
			ID:        "blog-id",
			Slug:      "draft-post",
			Published: false,
		}, nil)

		_, err := svc.GetBySlug(context.Background(), "draft-post")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("unknown slug", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Blog{}, nil)

		_, err := svc.GetBySlug(context.Background(), "missing-slug")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestBlogService_Update(t *testing.T) {
	svc, mockRepo, _ := newBlogService(t)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")

	t.Run("first publication stamps the publication time", func(t *testing.T) {
		published := true

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Blog{
			ID:        "blog-id",
			Published: false,
		}, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ interface{}) error {
				assert.Contains(t, fields, "published_at")

				return nil
			})

		err := svc.Update(ctx, dto.UpdateBlogRequest{Published: &published}, "blog-id")

		assert.NoError(t, err)
	})

	t.Run("already published post keeps its publication time", func(t *testing.T) {
		published := true

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Blog{
			ID:        "blog-id",
			Published: true,
		}, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ interface{}) error {
				assert.NotContains(t, fields, "published_at")

				return nil
			})

		err := svc.Update(ctx, dto.UpdateBlogRequest{Published: &published}, "blog-id")

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Blog{}, nil)

		err := svc.Update(ctx, dto.UpdateBlogRequest{}, "missing-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
