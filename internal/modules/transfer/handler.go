package transfer

import (
	"fmt"
	"net/http"
	"time"

	"github.com/biographer-ai/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/database/export", h.export)
	rg.POST("/database/import", h.importDocument)
	rg.DELETE("/database/clear", h.clear)
	rg.GET("/database/stats", h.stats)
}

// GET /database/export — served as a download so browsers save it to disk.
func (h *Handler) export(c *gin.Context) {
	doc, err := h.svc.Export()
	if err != nil {
		response.InternalError(c, err)
		return
	}

	filename := fmt.Sprintf("biographer-export-%s.json", doc.ExportDate.Format("20060102-150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.JSON(http.StatusOK, doc)
}

// POST /database/import
func (h *Handler) importDocument(c *gin.Context) {
	var doc ExportDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.svc.Import(&doc); err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{
		"message":    "Database imported",
		"qaPairs":    len(doc.QAPairs),
		"importedAt": time.Now(),
	})
}

// DELETE /database/clear
func (h *Handler) clear(c *gin.Context) {
	if err := h.svc.Clear(); err != nil {
		response.InternalError(c, err)
		return
	}
	response.Message(c, "Database cleared")
}

// GET /database/stats
func (h *Handler) stats(c *gin.Context) {
	st, err := h.svc.Stats()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, st)
}
