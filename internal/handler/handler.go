package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ramonfbmiranda/arquivosmaverick/internal/service"
)

// Banner is returned by GET /api/.
const Banner = "Gangue da Maverick API"

// ObjectStore receives uploaded photo files. It is satisfied by
// *storage.MinIOStorage.
type ObjectStore interface {
	UploadFile(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	ObjectURL(key string) string
}

// Handler serves the /api routes.
type Handler struct {
	svc       *service.Service
	uploads   ObjectStore
	maxUpload int64
}

type Option func(*Handler)

// WithUploads enables POST /api/uploads, storing files of at most maxBytes.
func WithUploads(store ObjectStore, maxBytes int64) Option {
	return func(h *Handler) {
		h.uploads = store
		h.maxUpload = maxBytes
	}
}

func New(svc *service.Service, opts ...Option) *Handler {
	h := &Handler{svc: svc}
	for _, o := range opts {
		o(h)
	}
	return h
}

// Register mounts every route under /api on r.
func (h *Handler) Register(r gin.IRouter) {
	api := r.Group("/api")

	api.GET("", h.root)
	api.GET("/", h.root)

	api.POST("/members", h.createMember)
	api.GET("/members", h.listMembers)
	api.GET("/members/:id", h.getMember)
	api.PUT("/members/:id", h.updateMember)
	api.DELETE("/members/:id", h.deleteMember)

	api.POST("/comments", h.createComment)
	api.GET("/comments/:member_id", h.listComments)

	api.POST("/quotes", h.createQuote)
	api.GET("/quotes", h.listQuotes)
	api.DELETE("/quotes/:id", h.deleteQuote)

	api.POST("/photos", h.createPhoto)
	api.GET("/photos", h.listPhotos)
	api.DELETE("/photos/:id", h.deletePhoto)

	if h.uploads != nil {
		api.POST("/uploads", h.upload)
	}
}

func (h *Handler) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": Banner})
}

func deletedMessage(entity string) gin.H {
	return gin.H{"message": entity + " deleted successfully"}
}
