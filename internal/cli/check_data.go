package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"portfolio-site/internal/domain"
	"portfolio-site/internal/repository"
	"portfolio-site/pkg/security"

	"github.com/spf13/cobra"
)

var errCheckFailed = errors.New("content check failed")

func newCheckDataCmd() *cobra.Command {
	var dataDir, mediaDir string

	cmd := &cobra.Command{
		Use:   "check-data",
		Short: "Validate the content documents and the media they reference",
		RunE: func(cmd *cobra.Command, args []string) error {
			problems := checkData(dataDir, mediaDir)
			for _, p := range problems {
				fmt.Fprintln(cmd.ErrOrStderr(), p)
			}
			if len(problems) > 0 {
				return fmt.Errorf("%w: %d problem(s)", errCheckFailed, len(problems))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Content documents OK")
			return nil
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", "data", "Directory holding projects.json and gallery.json")
	cmd.Flags().StringVar(&mediaDir, "media", "public", "Directory serving /images and /videos")
	return cmd
}

func checkData(dataDir, mediaDir string) []string {
	var problems []string
	var paths []string

	if data, err := os.ReadFile(filepath.Join(dataDir, repository.ProjectsFile)); err != nil {
		problems = append(problems, fmt.Sprintf("%s: %v", repository.ProjectsFile, err))
	} else if doc, err := repository.DecodeProjects(data); err != nil {
		problems = append(problems, fmt.Sprintf("%s: %v", repository.ProjectsFile, err))
	} else {
		for _, p := range doc.Projects {
			paths = append(paths, p.Image)
		}
	}

	if data, err := os.ReadFile(filepath.Join(dataDir, repository.GalleryFile)); err != nil {
		problems = append(problems, fmt.Sprintf("%s: %v", repository.GalleryFile, err))
	} else if doc, err := repository.DecodeGallery(data); err != nil {
		problems = append(problems, fmt.Sprintf("%s: %v", repository.GalleryFile, err))
	} else {
		paths = append(paths, galleryPaths(doc.Gallery)...)
	}

	seen := make(map[string]bool)
	for _, ref := range paths {
		if !isLocalMedia(ref) || seen[ref] {
			continue
		}
		seen[ref] = true

		full := filepath.Join(mediaDir, filepath.FromSlash(strings.TrimPrefix(ref, "/")))
		data, err := os.ReadFile(full)
		if err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", ref, err))
			continue
		}
		if res := security.ValidateMediaFile(full, data); !res.Valid {
			problems = append(problems, fmt.Sprintf("%s: %s (detected %s)", ref, res.Error, res.DetectedMIME))
		}
	}
	return problems
}

func galleryPaths(items []domain.MediaItem) []string {
	var paths []string
	for _, item := range items {
		paths = append(paths, item.Thumbnail)
		if item.IsVideo() {
			paths = append(paths, item.VideoURL)
		} else {
			paths = append(paths, item.FullImage)
		}
	}
	return paths
}

// isLocalMedia reports whether ref points into the media directory rather than an external host
func isLocalMedia(ref string) bool {
	if ref == "" || strings.HasPrefix(ref, "//") {
		return false
	}
	return !strings.Contains(ref, "://")
}
