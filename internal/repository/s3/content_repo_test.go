package s3

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"portfolio-site/internal/domain"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockGetter struct {
	mock.Mock
}

func (m *mockGetter) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	args := m.Called(aws.ToString(params.Bucket), aws.ToString(params.Key))
	if out := args.Get(0); out != nil {
		return out.(*s3.GetObjectOutput), args.Error(1)
	}
	return nil, args.Error(1)
}

func body(s string) *s3.GetObjectOutput {
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(s))}
}

const galleryDoc = `{"gallery":[{"type":"video","thumbnail":"t.jpg","videoUrl":"https://youtu.be/x","title":"V","category":"videos"}]}`

func TestGalleryFetchesAndCaches(t *testing.T) {
	getter := new(mockGetter)
	getter.On("GetObject", "site", "content/gallery.json").Return(body(galleryDoc), nil).Once()

	repo := NewContentRepository(getter, "site", "content", time.Minute)

	for i := 0; i < 3; i++ {
		doc, err := repo.Gallery(context.Background())
		require.NoError(t, err)
		assert.Equal(t, domain.MediaVideo, doc.Gallery[0].Type)
	}
	getter.AssertExpectations(t)
}

func TestGalleryServesStaleCopyOnFailure(t *testing.T) {
	getter := new(mockGetter)
	getter.On("GetObject", "site", "gallery.json").Return(body(galleryDoc), nil).Once()
	getter.On("GetObject", "site", "gallery.json").Return(nil, errors.New("network down")).Once()

	now := time.Now()
	repo := NewContentRepository(getter, "site", "", time.Minute)
	repo.now = func() time.Time { return now }

	_, err := repo.Gallery(context.Background())
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	doc, err := repo.Gallery(context.Background())
	require.NoError(t, err)
	assert.Len(t, doc.Gallery, 1)
	getter.AssertExpectations(t)
}

// slowGallery blocks gallery reads until release is closed
type slowGallery struct {
	started chan struct{}
	release chan struct{}
}

func (g *slowGallery) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if aws.ToString(params.Key) == "gallery.json" {
		close(g.started)
		<-g.release
		return body(galleryDoc), nil
	}
	return body(`{"projects":[{"title":"P","description":"d","image":"p.jpg","link":"https://p.example","featured":true}]}`), nil
}

func TestSlowFetchDoesNotBlockOtherDocument(t *testing.T) {
	getter := &slowGallery{started: make(chan struct{}), release: make(chan struct{})}
	repo := NewContentRepository(getter, "site", "", time.Minute)

	galleryDone := make(chan error, 1)
	go func() {
		_, err := repo.Gallery(context.Background())
		galleryDone <- err
	}()
	<-getter.started

	projectsDone := make(chan error, 1)
	go func() {
		_, err := repo.Projects(context.Background())
		projectsDone <- err
	}()

	select {
	case err := <-projectsDone:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("projects read waited on the gallery fetch")
	}

	close(getter.release)
	require.NoError(t, <-galleryDone)
}

func TestProjectsUnavailable(t *testing.T) {
	getter := new(mockGetter)
	getter.On("GetObject", "site", "projects.json").Return(nil, errors.New("NoSuchKey"))

	repo := NewContentRepository(getter, "site", "", 0)
	_, err := repo.Projects(context.Background())
	assert.ErrorIs(t, err, domain.ErrContentUnavailable)
}

func TestNoBucketConfigured(t *testing.T) {
	repo := NewContentRepository(new(mockGetter), "", "", 0)
	_, err := repo.Projects(context.Background())
	assert.ErrorIs(t, err, domain.ErrContentUnavailable)
}
