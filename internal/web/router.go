package web

import (
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spacesedan/sentiment-analyzer/internal/ui"
)

//go:embed templates/index.html
var templateFS embed.FS

const INDEX_TEMPLATE = "index.html"

type Submitter interface {
	Submit(ctx context.Context, text string) ui.View
}

type pageData struct {
	State    string
	View     ui.View
	Banner   template.HTML
	Progress string
}

type Handler struct {
	presenter Submitter
}

func NewHandler(presenter Submitter) *Handler {
	return &Handler{presenter: presenter}
}

func NewRouter(presenter Submitter) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())
	r.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/"+INDEX_TEMPLATE)))

	h := NewHandler(presenter)
	r.GET("/", h.GetIndex)
	r.POST("/", h.PostAnalyze)
	r.GET("/health", h.GetHealth)

	return r
}

func (h *Handler) GetIndex(c *gin.Context) {
	c.HTML(http.StatusOK, INDEX_TEMPLATE, newPageData(ui.IdleView()))
}

func (h *Handler) PostAnalyze(c *gin.Context) {
	view := h.presenter.Submit(c.Request.Context(), c.PostForm("text"))
	c.HTML(http.StatusOK, INDEX_TEMPLATE, newPageData(view))
}

func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func newPageData(view ui.View) pageData {
	data := pageData{
		State: view.State.String(),
		View:  view,
	}
	if view.ShowProgress() {
		data.Banner = renderMarkdown(view.Banner())
		data.Progress = strconv.FormatFloat(view.Progress, 'f', -1, 64)
	}
	return data
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		slog.Info("[Web] Request handled",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("elapsed", time.Since(start)))
	}
}
