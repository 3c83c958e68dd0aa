package usecase_test

import (
	"context"
	"errors"
	"testing"

	"portfolio-site/internal/domain"
	"portfolio-site/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockContentRepo struct {
	mock.Mock
}

func (m *MockContentRepo) Projects(ctx context.Context) (*domain.ProjectDocument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProjectDocument), args.Error(1)
}

func (m *MockContentRepo) Gallery(ctx context.Context) (*domain.GalleryDocument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GalleryDocument), args.Error(1)
}

func sampleGallery() *domain.GalleryDocument {
	return &domain.GalleryDocument{Gallery: []domain.MediaItem{
		{Type: domain.MediaImage, Thumbnail: "p1.jpg", FullImage: "p1-full.jpg", Title: "P1", Category: "photography"},
		{Type: domain.MediaVideo, Thumbnail: "v1.jpg", VideoURL: "https://www.youtube.com/embed/abc", Title: "V1", Category: "videos"},
		{Type: domain.MediaImage, Thumbnail: "p2.jpg", FullImage: "p2-full.jpg", Title: "P2", Category: "photography"},
		{Type: domain.MediaVideo, Thumbnail: "v2.jpg", VideoURL: "videos/demo.mp4", Title: "V2", Category: "videos"},
	}}
}

func TestFeaturedProjects(t *testing.T) {
	repo := new(MockContentRepo)
	repo.On("Projects", mock.Anything).Return(&domain.ProjectDocument{Projects: []domain.Project{
		{Title: "A", Featured: true},
		{Title: "B"},
		{Title: "C", Featured: true},
	}}, nil)

	uc := usecase.NewContentUsecase(repo)
	projects, err := uc.FeaturedProjects(context.Background())
	require.NoError(t, err)

	titles := []string{}
	for _, p := range projects {
		titles = append(titles, p.Title)
	}
	assert.Equal(t, []string{"A", "C"}, titles)
}

func TestFeaturedProjectsUnavailable(t *testing.T) {
	repo := new(MockContentRepo)
	repo.On("Projects", mock.Anything).Return(nil, domain.ErrContentUnavailable)

	_, err := usecase.NewContentUsecase(repo).FeaturedProjects(context.Background())
	assert.True(t, errors.Is(err, domain.ErrContentUnavailable))
}

func TestGalleryFilterKeepsEveryCard(t *testing.T) {
	repo := new(MockContentRepo)
	repo.On("Gallery", mock.Anything).Return(sampleGallery(), nil)

	view, err := usecase.NewContentUsecase(repo).Gallery(context.Background(), "videos")
	require.NoError(t, err)

	require.Len(t, view.Cards, 4)
	for _, card := range view.Cards {
		assert.Equal(t, card.Item.Category != "videos", card.Hidden, card.Item.Title)
	}
	assert.Equal(t, "videos", view.Filter)
}

func TestLightbox(t *testing.T) {
	repo := new(MockContentRepo)
	repo.On("Gallery", mock.Anything).Return(sampleGallery(), nil)
	uc := usecase.NewContentUsecase(repo)
	ctx := context.Background()

	t.Run("Should stay closed without a source", func(t *testing.T) {
		view, err := uc.Lightbox(ctx, domain.LightboxRequest{})
		require.NoError(t, err)
		assert.False(t, view.Open)
	})

	t.Run("Should open within the filtered set and infer the type", func(t *testing.T) {
		view, err := uc.Lightbox(ctx, domain.LightboxRequest{Filter: "videos", Source: "videos/demo.mp4"})
		require.NoError(t, err)
		assert.True(t, view.Open)
		assert.Equal(t, domain.SurfaceNative, view.Surface)
		assert.Equal(t, 1, view.Index)
		assert.Equal(t, 2, view.Total)
	})

	t.Run("Should wrap forward with next", func(t *testing.T) {
		view, err := uc.Lightbox(ctx, domain.LightboxRequest{Filter: "videos", Source: "videos/demo.mp4", Action: usecase.ActionNext})
		require.NoError(t, err)
		assert.Equal(t, 0, view.Index)
		assert.Equal(t, domain.SurfaceEmbed, view.Surface)
		assert.Equal(t, "https://www.youtube.com/embed/abc", view.EmbedSource)
	})

	t.Run("Should close on Escape", func(t *testing.T) {
		view, err := uc.Lightbox(ctx, domain.LightboxRequest{Source: "p1-full.jpg", Key: "Escape"})
		require.NoError(t, err)
		assert.False(t, view.Open)
		assert.False(t, view.ScrollLocked)
		assert.Empty(t, view.EmbedSource)
	})

	t.Run("Should wrap backward from the first item", func(t *testing.T) {
		view, err := uc.Lightbox(ctx, domain.LightboxRequest{Filter: "all", Source: "p1-full.jpg", Key: "ArrowLeft"})
		require.NoError(t, err)
		assert.Equal(t, 3, view.Index)
		assert.Equal(t, "videos/demo.mp4", view.Current.Source)
	})
}

func TestHealthCheck(t *testing.T) {
	uc := usecase.NewHealthUsecase(map[string]usecase.HealthProbe{
		"content": func(context.Context) error { return nil },
		"redis":   func(context.Context) error { return usecase.ErrProbeDisabled },
	})
	assert.Equal(t, map[string]string{"status": "ok", "content": "ok", "redis": "disabled"}, uc.Check(context.Background()))

	uc = usecase.NewHealthUsecase(map[string]usecase.HealthProbe{
		"content": func(context.Context) error { return domain.ErrContentUnavailable },
	})
	result := uc.Check(context.Background())
	assert.Equal(t, "degraded", result["status"])
	assert.Equal(t, "unavailable", result["content"])
}
