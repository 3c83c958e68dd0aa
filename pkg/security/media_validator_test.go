package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateMediaFile(t *testing.T) {
	jpeg := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F'}
	mp4 := []byte{0x00, 0x00, 0x00, 0x18, 'f', 't', 'y', 'p', 'i', 's', 'o', 'm'}

	tests := []struct {
		name  string
		file  string
		data  []byte
		valid bool
	}{
		{"jpeg", "images/photo1.jpg", jpeg, true},
		{"uppercase extension", "images/PHOTO.JPEG", jpeg, true},
		{"mp4", "videos/demo.mp4", mp4, true},
		{"spoofed png", "images/fake.png", jpeg, false},
		{"short file", "images/tiny.png", []byte{0x89}, false},
		{"no extension", "images/photo", jpeg, false},
		{"not media", "notes.txt", []byte("hello"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateMediaFile(tt.file, tt.data)
			assert.Equal(t, tt.valid, res.Valid, res.Error)
			if !tt.valid {
				assert.NotEmpty(t, res.Error)
			}
		})
	}
}

func TestIsImageExtension(t *testing.T) {
	assert.True(t, IsImageExtension(".PNG"))
	assert.False(t, IsImageExtension(".mp4"))
}
