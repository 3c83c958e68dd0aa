package domain

import (
	"context"
	"errors"
)

// ErrContentUnavailable is returned when a content document could not be loaded
var ErrContentUnavailable = errors.New("content document unavailable")

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// CategoryCertifications marks gallery items that carry issuer/credential details
const CategoryCertifications = "certifications"

// FilterAll is the gallery filter tag that shows every item
const FilterAll = "all"

// Project represents a portfolio project
type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Link        string   `json:"link"`
	GitHub      string   `json:"github,omitempty"`
	Tags        []string `json:"tags"`
	Featured    bool     `json:"featured"`
}

// ProjectDocument wraps the array of projects
type ProjectDocument struct {
	Projects []Project `json:"projects"`
}

// MediaItem is one gallery entry
type MediaItem struct {
	Type          MediaType `json:"type"`
	Thumbnail     string    `json:"thumbnail"`
	FullImage     string    `json:"fullImage,omitempty"`
	VideoURL      string    `json:"videoUrl,omitempty"`
	Title         string    `json:"title"`
	Category      string    `json:"category"`
	Issuer        string    `json:"issuer,omitempty"`
	CredentialURL string    `json:"credentialUrl,omitempty"`
}

func (m MediaItem) IsVideo() bool {
	return m.Type == MediaVideo
}

// Source returns the URL the lightbox displays for this item
func (m MediaItem) Source() string {
	if m.IsVideo() {
		return m.VideoURL
	}
	return m.FullImage
}

func (m MediaItem) IsCertification() bool {
	return m.Category == CategoryCertifications
}

// GalleryDocument wraps the array of gallery items
type GalleryDocument struct {
	Gallery []MediaItem `json:"gallery"`
}

// GalleryCard is a rendered gallery item with its visibility
type GalleryCard struct {
	Item   MediaItem `json:"item"`
	Hidden bool      `json:"hidden"`
}

// FilterButton is one gallery filter control
type FilterButton struct {
	Tag    string `json:"tag"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

// GalleryView is the gallery section after a filter has been applied
type GalleryView struct {
	Filter  string         `json:"filter"`
	Filters []FilterButton `json:"filters"`
	Cards   []GalleryCard  `json:"cards"`
}

// MediaSurface is the lightbox element that displays the current media
type MediaSurface string

const (
	SurfaceNone   MediaSurface = ""
	SurfaceImage  MediaSurface = "image"
	SurfaceEmbed  MediaSurface = "embed"
	SurfaceNative MediaSurface = "native"
)

// MediaRef is one entry of the lightbox navigable set
type MediaRef struct {
	Type   MediaType `json:"type"`
	Source string    `json:"src"`
	Title  string    `json:"title,omitempty"`
}

// LightboxView is a snapshot of the lightbox state
type LightboxView struct {
	Open          bool         `json:"open"`
	Surface       MediaSurface `json:"surface,omitempty"`
	Current       *MediaRef    `json:"current,omitempty"`
	Index         int          `json:"index"`
	Total         int          `json:"total"`
	ScrollLocked  bool         `json:"scroll_locked"`
	EmbedSource   string       `json:"embed_src,omitempty"`
	NativeSource  string       `json:"native_src,omitempty"`
	NativePlaying bool         `json:"native_playing"`
	Prev          *MediaRef    `json:"prev,omitempty"`
	Next          *MediaRef    `json:"next,omitempty"`
}

// LightboxRequest describes one lightbox interaction
type LightboxRequest struct {
	Filter string
	Source string
	Type   MediaType
	Action string // "", "next", "prev", "close" or "play"
	Key    string // keyboard key, e.g. "Escape", "ArrowLeft", "ArrowRight"
}

// ContentRepository loads the static content documents
type ContentRepository interface {
	Projects(ctx context.Context) (*ProjectDocument, error)
	Gallery(ctx context.Context) (*GalleryDocument, error)
}

// ContentUsecase serves the portfolio sections
type ContentUsecase interface {
	ProjectDocument(ctx context.Context) (*ProjectDocument, error)
	GalleryDocument(ctx context.Context) (*GalleryDocument, error)
	FeaturedProjects(ctx context.Context) ([]Project, error)
	Gallery(ctx context.Context, filter string) (*GalleryView, error)
	Lightbox(ctx context.Context, req LightboxRequest) (*LightboxView, error)
}
