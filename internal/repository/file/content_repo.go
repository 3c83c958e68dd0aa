package file

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"portfolio-site/internal/domain"
	"portfolio-site/internal/repository"
	"portfolio-site/pkg/debounce"

	"github.com/fsnotify/fsnotify"
)

// ContentRepository serves projects.json and gallery.json from a directory.
// Documents are cached after load; a failed reload keeps the last good copy.
type ContentRepository struct {
	dir    string
	logger *slog.Logger

	mu          sync.RWMutex
	projects    *domain.ProjectDocument
	projectsErr error
	gallery     *domain.GalleryDocument
	galleryErr  error

	watchMu   sync.Mutex
	watcher   *fsnotify.Watcher
	debouncer *debounce.Debouncer
	done      chan struct{}
}

// NewContentRepository creates the repository and performs the initial load
func NewContentRepository(dir string, logger *slog.Logger) *ContentRepository {
	r := &ContentRepository{
		dir:    dir,
		logger: logger.With("component", "content_repository"),
	}
	r.Reload()
	return r
}

var _ domain.ContentRepository = (*ContentRepository)(nil)

func (r *ContentRepository) Projects(_ context.Context) (*domain.ProjectDocument, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.projects == nil {
		return nil, r.projectsErr
	}
	return r.projects, nil
}

func (r *ContentRepository) Gallery(_ context.Context) (*domain.GalleryDocument, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.gallery == nil {
		return nil, r.galleryErr
	}
	return r.gallery, nil
}

// Reload re-reads both documents from disk
func (r *ContentRepository) Reload() {
	projects, pErr := r.loadProjects()
	gallery, gErr := r.loadGallery()

	r.mu.Lock()
	defer r.mu.Unlock()

	if pErr != nil {
		r.logger.Error("failed to load projects document", "error", pErr)
		if r.projects == nil {
			r.projectsErr = pErr
		}
	} else {
		r.projects, r.projectsErr = projects, nil
	}

	if gErr != nil {
		r.logger.Error("failed to load gallery document", "error", gErr)
		if r.gallery == nil {
			r.galleryErr = gErr
		}
	} else {
		r.gallery, r.galleryErr = gallery, nil
	}
}

func (r *ContentRepository) loadProjects() (*domain.ProjectDocument, error) {
	data, err := os.ReadFile(filepath.Join(r.dir, repository.ProjectsFile))
	if err != nil {
		return nil, repository.Unavailable(repository.ProjectsFile, err)
	}
	doc, err := repository.DecodeProjects(data)
	if err != nil {
		return nil, repository.Unavailable(repository.ProjectsFile, err)
	}
	return doc, nil
}

func (r *ContentRepository) loadGallery() (*domain.GalleryDocument, error) {
	data, err := os.ReadFile(filepath.Join(r.dir, repository.GalleryFile))
	if err != nil {
		return nil, repository.Unavailable(repository.GalleryFile, err)
	}
	doc, err := repository.DecodeGallery(data)
	if err != nil {
		return nil, repository.Unavailable(repository.GalleryFile, err)
	}
	return doc, nil
}

// Watch reloads the documents whenever they change on disk.
// Bursts of events within delay collapse into one reload.
// The watcher runs until ctx is done or Close is called.
func (r *ContentRepository) Watch(ctx context.Context, delay time.Duration) error {
	r.watchMu.Lock()
	defer r.watchMu.Unlock()

	if r.watcher != nil {
		return nil
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := w.Add(r.dir); err != nil {
		w.Close()
		return fmt.Errorf("failed to watch %s: %w", r.dir, err)
	}

	r.watcher = w
	r.debouncer = debounce.New(delay)
	r.done = make(chan struct{})

	go r.run(ctx, w, r.debouncer, r.done)

	r.logger.Info("watching content directory", "dir", r.dir)
	return nil
}

func (r *ContentRepository) run(ctx context.Context, w *fsnotify.Watcher, d *debounce.Debouncer, done chan struct{}) {
	defer close(done)
	defer d.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.Events:
			if !ok {
				return
			}
			if !isContentEvent(event) {
				continue
			}
			r.logger.Debug("content file changed", "file", event.Name, "op", event.Op.String())
			d.Trigger(r.Reload)
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			r.logger.Error("content watcher error", "error", err)
		}
	}
}

func isContentEvent(event fsnotify.Event) bool {
	switch filepath.Base(event.Name) {
	case repository.ProjectsFile, repository.GalleryFile:
	default:
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}

// Close stops the watcher, if running, and waits for it to exit
func (r *ContentRepository) Close() error {
	r.watchMu.Lock()
	defer r.watchMu.Unlock()

	if r.watcher == nil {
		return nil
	}
	err := r.watcher.Close()
	<-r.done
	r.watcher = nil
	return err
}
