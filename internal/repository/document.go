// Package repository holds the content document decoding shared by the
// file and object-storage repositories.
package repository

import (
	"encoding/json"
	"fmt"

	"portfolio-site/internal/domain"
	"portfolio-site/pkg/schema"
)

const (
	ProjectsFile = "projects.json"
	GalleryFile  = "gallery.json"
)

// DecodeProjects validates data against the projects schema and decodes it
func DecodeProjects(data []byte) (*domain.ProjectDocument, error) {
	if err := schema.Validate(schema.Projects, data); err != nil {
		return nil, err
	}
	var doc domain.ProjectDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode projects document: %w", err)
	}
	return &doc, nil
}

// DecodeGallery validates data against the gallery schema and decodes it
func DecodeGallery(data []byte) (*domain.GalleryDocument, error) {
	if err := schema.Validate(schema.Gallery, data); err != nil {
		return nil, err
	}
	var doc domain.GalleryDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode gallery document: %w", err)
	}
	return &doc, nil
}

// Unavailable marks a load failure so callers can match domain.ErrContentUnavailable
func Unavailable(name string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrContentUnavailable, name, err)
}
