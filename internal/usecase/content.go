package usecase

import (
	"context"

	"portfolio-site/internal/domain"
	"portfolio-site/internal/gallery"
)

// Lightbox actions accepted in domain.LightboxRequest.Action
const (
	ActionNext  = "next"
	ActionPrev  = "prev"
	ActionClose = "close"
	ActionPlay  = "play"
)

type contentUsecase struct {
	repo domain.ContentRepository
}

func NewContentUsecase(repo domain.ContentRepository) domain.ContentUsecase {
	return &contentUsecase{repo: repo}
}

func (uc *contentUsecase) ProjectDocument(ctx context.Context) (*domain.ProjectDocument, error) {
	return uc.repo.Projects(ctx)
}

func (uc *contentUsecase) GalleryDocument(ctx context.Context) (*domain.GalleryDocument, error) {
	return uc.repo.Gallery(ctx)
}

// FeaturedProjects returns the featured projects in document order
func (uc *contentUsecase) FeaturedProjects(ctx context.Context) ([]domain.Project, error) {
	doc, err := uc.repo.Projects(ctx)
	if err != nil {
		return nil, err
	}
	featured := make([]domain.Project, 0, len(doc.Projects))
	for _, p := range doc.Projects {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return featured, nil
}

// Gallery returns every item with its visibility under filter
func (uc *contentUsecase) Gallery(ctx context.Context, filter string) (*domain.GalleryView, error) {
	doc, err := uc.repo.Gallery(ctx)
	if err != nil {
		return nil, err
	}
	f := gallery.NewFilter(doc.Gallery)
	f.Select(filter)
	return f.View(), nil
}

// Lightbox replays one interaction: open req.Source within the filtered set,
// then apply the action and the key, in that order.
func (uc *contentUsecase) Lightbox(ctx context.Context, req domain.LightboxRequest) (*domain.LightboxView, error) {
	nav := gallery.NewNavigator()
	if req.Source == "" {
		return nav.View(), nil
	}

	doc, err := uc.repo.Gallery(ctx)
	if err != nil {
		return nil, err
	}
	f := gallery.NewFilter(doc.Gallery)
	f.Select(req.Filter)

	typ := req.Type
	if typ == "" {
		typ = mediaTypeOf(doc.Gallery, req.Source)
	}
	nav.Open(f.Visible(), typ, req.Source)

	switch req.Action {
	case ActionNext:
		nav.Next()
	case ActionPrev:
		nav.Previous()
	case ActionClose:
		nav.Close()
	case ActionPlay:
		nav.Play()
	}
	if req.Key != "" {
		nav.HandleKey(req.Key)
	}
	return nav.View(), nil
}

// mediaTypeOf looks up the type of src, treating unknown sources as images
func mediaTypeOf(items []domain.MediaItem, src string) domain.MediaType {
	for _, item := range items {
		if item.Source() == src {
			return item.Type
		}
	}
	return domain.MediaImage
}
