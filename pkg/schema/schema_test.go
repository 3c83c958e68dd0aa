package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateProjects(t *testing.T) {
	valid := []byte(`{"projects":[{"title":"Site","description":"d","image":"images/a.jpg","link":"https://example.com","tags":["go"],"featured":true}]}`)
	require.NoError(t, Validate(Projects, valid))

	err := Validate(Projects, []byte(`{"projects":[{"title":"Site","featured":"yes"}]}`))
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, Projects, ve.Document)
	assert.NotEmpty(t, ve.Issues)
}

func TestValidateGalleryRequiresSourceForType(t *testing.T) {
	ok := []byte(`{"gallery":[
		{"type":"image","thumbnail":"t.jpg","fullImage":"f.jpg","title":"A","category":"photography"},
		{"type":"video","thumbnail":"t.jpg","videoUrl":"https://youtu.be/x","title":"B","category":"videos"}
	]}`)
	require.NoError(t, Validate(Gallery, ok))

	missing := []byte(`{"gallery":[{"type":"video","thumbnail":"t.jpg","title":"B","category":"videos"}]}`)
	err := Validate(Gallery, missing)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Error(), "/gallery/0")
}

func TestValidateGalleryRejectsUnknownType(t *testing.T) {
	doc := []byte(`{"gallery":[{"type":"audio","thumbnail":"t","fullImage":"f","title":"A","category":"c"}]}`)
	assert.Error(t, Validate(Gallery, doc))
}

func TestValidateMalformedJSON(t *testing.T) {
	err := Validate(Gallery, []byte(`{"gallery":[`))
	require.Error(t, err)
	var ve *ValidationError
	assert.NotErrorAs(t, err, &ve)
}

func TestValidateUnknownDocument(t *testing.T) {
	assert.Error(t, Validate(Document("other"), []byte(`{}`)))
}
