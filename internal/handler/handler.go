package handler

import (
	"tickerpulse/internal/domain"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

// SnapshotReader is the read side of the snapshot store.
type SnapshotReader interface {
	Load(category domain.Category, symbol string) ([]byte, error)
	List(category domain.Category) ([]string, error)
}

type Handler struct {
	tracer    trace.Tracer
	snapshots SnapshotReader
}

func New(tracer trace.Tracer, snapshots SnapshotReader) *Handler {
	return &Handler{
		tracer:    tracer,
		snapshots: snapshots,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)
	r.GET("/api/snapshots/:category", h.ListSnapshots)
	r.GET("/api/snapshots/:category/:symbol", h.GetSnapshot)
}
