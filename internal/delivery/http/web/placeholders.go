package web

import "portfolio-site/internal/domain"

// Shown when a content document cannot be loaded, so the page never renders empty
var (
	placeholderProjects = []domain.Project{
		{
			Title:       "Sample Project",
			Description: "Project details appear here once data/projects.json is available.",
			Image:       "images/photo1.jpg",
			Link:        "#projects",
			Tags:        []string{"Go", "HTML", "CSS"},
			Featured:    true,
		},
	}

	placeholderGallery = []domain.MediaItem{
		{Type: domain.MediaImage, Thumbnail: "images/photo1.jpg", FullImage: "images/photo1.jpg", Title: "Creative Design", Category: "photography"},
		{Type: domain.MediaImage, Thumbnail: "images/design1.jpg", FullImage: "images/design1.jpg", Title: "Logo Design", Category: "design"},
		{Type: domain.MediaVideo, Thumbnail: "images/video-thumb1.jpg", VideoURL: "videos/demo.mp4", Title: "Project Demo", Category: "videos"},
	}
)

const (
	emptyProjectsText = "No featured projects found. Edit data/projects.json to add your projects."
	emptyGalleryText  = "No gallery items found. Edit data/gallery.json to add your media."
)
