package v1

import (
	"net/http"

	"portfolio-site/internal/delivery/http/response"
	"portfolio-site/internal/domain"
	"portfolio-site/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const msgContentUnavailable = "Content temporarily unavailable"

type ContentHandler struct {
	contentUC domain.ContentUsecase
}

// NewContentHandler registers the JSON content API under public
func NewContentHandler(public gin.IRoutes, contentUC domain.ContentUsecase) {
	handler := &ContentHandler{contentUC: contentUC}

	public.GET("/projects", handler.FeaturedProjects)
	public.GET("/gallery", handler.Gallery)
	public.GET("/gallery/lightbox", handler.Lightbox)
}

// NewDocumentHandler serves the raw content documents at /data/*.json
func NewDocumentHandler(r gin.IRoutes, contentUC domain.ContentUsecase) {
	handler := &ContentHandler{contentUC: contentUC}

	r.GET("/data/projects.json", handler.ProjectDocument)
	r.GET("/data/gallery.json", handler.GalleryDocument)
}

// FeaturedProjects godoc
// @Summary      List featured projects
// @Tags         content
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Project}
// @Failure      503  {object}  response.Response
// @Router       /projects [get]
func (h *ContentHandler) FeaturedProjects(c *gin.Context) {
	projects, err := h.contentUC.FeaturedProjects(c.Request.Context())
	if err != nil {
		c.Error(unavailable(err))
		return
	}
	response.Success(c, http.StatusOK, "Featured projects retrieved", projects)
}

// Gallery godoc
// @Summary      List gallery items with filter state
// @Description  Every item is returned; items outside the filter are marked hidden. Unknown filters fall back to "all".
// @Tags         content
// @Produce      json
// @Param        filter  query     string  false  "Category tag or all"
// @Success      200     {object}  response.Response{data=domain.GalleryView}
// @Failure      503     {object}  response.Response
// @Router       /gallery [get]
func (h *ContentHandler) Gallery(c *gin.Context) {
	view, err := h.contentUC.Gallery(c.Request.Context(), c.Query("filter"))
	if err != nil {
		c.Error(unavailable(err))
		return
	}
	response.Success(c, http.StatusOK, "Gallery retrieved", view)
}

// Lightbox godoc
// @Summary      Lightbox state
// @Description  Opens src within the filtered gallery, then applies action (next, prev, close, play) and key (Escape, ArrowLeft, ArrowRight).
// @Tags         content
// @Produce      json
// @Param        filter  query     string  false  "Category tag or all"
// @Param        src     query     string  false  "Media source to open"
// @Param        type    query     string  false  "image or video"
// @Param        action  query     string  false  "next, prev, close or play"
// @Param        key     query     string  false  "Keyboard key"
// @Success      200     {object}  response.Response{data=domain.LightboxView}
// @Failure      503     {object}  response.Response
// @Router       /gallery/lightbox [get]
func (h *ContentHandler) Lightbox(c *gin.Context) {
	view, err := h.contentUC.Lightbox(c.Request.Context(), domain.LightboxRequest{
		Filter: c.Query("filter"),
		Source: c.Query("src"),
		Type:   domain.MediaType(c.Query("type")),
		Action: c.Query("action"),
		Key:    c.Query("key"),
	})
	if err != nil {
		c.Error(unavailable(err))
		return
	}
	response.Success(c, http.StatusOK, "Lightbox state", view)
}

// ProjectDocument returns projects.json as loaded, featured or not
func (h *ContentHandler) ProjectDocument(c *gin.Context) {
	doc, err := h.contentUC.ProjectDocument(c.Request.Context())
	if err != nil {
		c.Error(unavailable(err))
		return
	}
	c.JSON(http.StatusOK, doc)
}

// GalleryDocument returns gallery.json as loaded
func (h *ContentHandler) GalleryDocument(c *gin.Context) {
	doc, err := h.contentUC.GalleryDocument(c.Request.Context())
	if err != nil {
		c.Error(unavailable(err))
		return
	}
	c.JSON(http.StatusOK, doc)
}

func unavailable(err error) *apperror.AppError {
	return apperror.New(http.StatusServiceUnavailable, msgContentUnavailable, err)
}
