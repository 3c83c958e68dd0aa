// Package web renders the portfolio page on the server.
package web

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"strings"

	"portfolio-site/internal/domain"
	"portfolio-site/internal/gallery"
	"portfolio-site/internal/usecase"
	"portfolio-site/pkg/logger"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed assets
var assetFS embed.FS

var pageTemplate = template.Must(template.New("").Funcs(template.FuncMap{
	"categoryLabel": gallery.CategoryLabel,
	"dict":          dict,
	"asset":         assetPath,
}).ParseFS(templateFS, "templates/*.html"))

// projectCard is a featured project, flagged when it stands in for missing data
type projectCard struct {
	domain.Project
	Placeholder bool
}

type pageData struct {
	Projects      []projectCard
	ProjectsEmpty string
	Gallery       *domain.GalleryView
	GalleryEmpty  string
	Lightbox      *domain.LightboxView
}

type PageHandler struct {
	contentUC domain.ContentUsecase
}

// NewPageHandler registers the HTML routes and the embedded static assets
func NewPageHandler(r gin.IRouter, contentUC domain.ContentUsecase) {
	handler := &PageHandler{contentUC: contentUC}

	assets, _ := fs.Sub(assetFS, "assets")
	r.StaticFS("/assets", http.FS(assets))

	r.GET("/", handler.Index)
	r.GET("/gallery/view", handler.LightboxPage)
}

// Index renders the portfolio with the gallery filtered by ?filter=
func (h *PageHandler) Index(c *gin.Context) {
	data := h.build(c, c.Query("filter"))
	data.Lightbox = gallery.NewNavigator().View()
	h.render(c, data)
}

// LightboxPage renders the portfolio with the lightbox open on ?src=.
// A request that moves or closes the lightbox is redirected to the URL of the
// resulting state, so the next key press starts from the new item.
func (h *PageHandler) LightboxPage(c *gin.Context) {
	filter := c.Query("filter")
	data := h.build(c, filter)

	req := domain.LightboxRequest{
		Filter: filter,
		Source: c.Query("src"),
		Type:   domain.MediaType(c.Query("type")),
		Action: c.Query("action"),
		Key:    c.Query("key"),
	}
	view, err := h.contentUC.Lightbox(c.Request.Context(), req)
	if err != nil {
		logger.Log.Error("Failed to build lightbox", "error", err)
		view = gallery.NewNavigator().View()
	} else if movesLightbox(req) {
		if view.Open && view.Current != nil {
			c.Redirect(http.StatusSeeOther, lightboxURL(data.Gallery.Filter, *view.Current))
		} else {
			c.Redirect(http.StatusSeeOther, galleryURL(data.Gallery.Filter))
		}
		return
	}
	data.Lightbox = view
	h.render(c, data)
}

// movesLightbox reports whether req changes the current item or closes the lightbox
func movesLightbox(req domain.LightboxRequest) bool {
	return req.Key != "" || (req.Action != "" && req.Action != usecase.ActionPlay)
}

func lightboxURL(filter string, ref domain.MediaRef) string {
	q := url.Values{}
	q.Set("filter", filter)
	q.Set("src", ref.Source)
	q.Set("type", string(ref.Type))
	return "/gallery/view?" + q.Encode()
}

func galleryURL(filter string) string {
	return "/?filter=" + url.QueryEscape(filter) + "#gallery"
}

func (h *PageHandler) build(c *gin.Context, filter string) *pageData {
	ctx := c.Request.Context()
	data := &pageData{
		ProjectsEmpty: emptyProjectsText,
		GalleryEmpty:  emptyGalleryText,
	}

	projects, err := h.contentUC.FeaturedProjects(ctx)
	if err != nil {
		logUnavailable("projects", err)
		for _, p := range placeholderProjects {
			data.Projects = append(data.Projects, projectCard{Project: p, Placeholder: true})
		}
	} else {
		for _, p := range projects {
			data.Projects = append(data.Projects, projectCard{Project: p})
		}
	}

	view, err := h.contentUC.Gallery(ctx, filter)
	if err != nil {
		logUnavailable("gallery", err)
		f := gallery.NewFilter(placeholderGallery)
		f.Select(filter)
		view = f.View()
	}
	data.Gallery = view
	return data
}

func (h *PageHandler) render(c *gin.Context, data *pageData) {
	var buf bytes.Buffer
	if err := pageTemplate.ExecuteTemplate(&buf, "page", data); err != nil {
		c.Error(err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func logUnavailable(section string, err error) {
	if errors.Is(err, domain.ErrContentUnavailable) {
		logger.Log.Warn("Content unavailable, showing placeholders", "section", section, "error", err)
		return
	}
	logger.Log.Error("Failed to load content", "section", section, "error", err)
}

// dict builds a map from alternating keys and values for nested templates
func dict(pairs ...interface{}) (map[string]interface{}, error) {
	if len(pairs)%2 != 0 {
		return nil, errors.New("dict requires key/value pairs")
	}
	m := make(map[string]interface{}, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok || strings.TrimSpace(key) == "" {
			return nil, errors.New("dict keys must be non-empty strings")
		}
		m[key] = pairs[i+1]
	}
	return m, nil
}

// assetPath roots document-relative media paths so they resolve from any page
func assetPath(p string) string {
	if p == "" || strings.HasPrefix(p, "/") || strings.HasPrefix(p, "#") || strings.Contains(p, "://") {
		return p
	}
	return "/" + strings.TrimPrefix(p, "./")
}
