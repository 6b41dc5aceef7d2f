package handler

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"tickerpulse/internal/domain"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

var supportedCategories = []domain.Category{
	domain.CategoryPrice,
	domain.CategoryNews,
	domain.CategorySocial,
}

func parseCategory(raw string) (domain.Category, bool) {
	category := domain.Category(strings.ToLower(raw))
	for _, sc := range supportedCategories {
		if category == sc {
			return category, true
		}
	}
	return "", false
}

func (h *Handler) ListSnapshots(c *gin.Context) {
	_, span := h.tracer.Start(c.Request.Context(), "handler.list-snapshots")
	defer span.End()

	category, ok := parseCategory(c.Param("category"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":                "unsupported category: " + c.Param("category"),
			"supported_categories": supportedCategories,
		})
		return
	}
	span.SetAttributes(attribute.String("category", string(category)))

	symbols, err := h.snapshots.List(category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category": category,
		"symbols":  symbols,
	})
}

func (h *Handler) GetSnapshot(c *gin.Context) {
	_, span := h.tracer.Start(c.Request.Context(), "handler.get-snapshot")
	defer span.End()

	category, ok := parseCategory(c.Param("category"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":                "unsupported category: " + c.Param("category"),
			"supported_categories": supportedCategories,
		})
		return
	}

	symbol := strings.ToUpper(c.Param("symbol"))
	span.SetAttributes(
		attribute.String("category", string(category)),
		attribute.String("symbol", symbol),
	)

	data, err := h.snapshots.Load(category, symbol)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no snapshot for " + symbol})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, "application/json", data)
}
