package repository

import (
	"errors"
	"testing"

	"portfolio-site/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeProjects(t *testing.T) {
	doc, err := DecodeProjects([]byte(`{"projects":[{"title":"A","description":"d","image":"i","link":"l","tags":["x"],"featured":true}]}`))
	require.NoError(t, err)
	require.Len(t, doc.Projects, 1)
	assert.True(t, doc.Projects[0].Featured)
	assert.Equal(t, []string{"x"}, doc.Projects[0].Tags)
}

func TestDecodeGalleryRejectsSchemaViolation(t *testing.T) {
	_, err := DecodeGallery([]byte(`{"gallery":[{"type":"image","title":"A"}]}`))
	assert.Error(t, err)
}

func TestUnavailableWrapsBoth(t *testing.T) {
	cause := errors.New("boom")
	err := Unavailable(GalleryFile, cause)
	assert.ErrorIs(t, err, domain.ErrContentUnavailable)
	assert.ErrorIs(t, err, cause)
}
