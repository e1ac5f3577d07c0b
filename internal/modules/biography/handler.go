package biography

import (
	"errors"

	"github.com/biographer-ai/core/internal/modules/llm"
	"github.com/biographer-ai/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/biography", h.get)
	rg.POST("/biography/outline/generate", h.generateOutline)
	rg.PUT("/biography/outline", h.updateOutline)
	rg.POST("/biography/generate", h.generateFullText)
}

type updateOutlineDTO struct {
	Outline string `json:"outline" binding:"required"`
}

// GET /biography
func (h *Handler) get(c *gin.Context) {
	bio, err := h.svc.Get()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if bio == nil {
		response.OK(c, gin.H{
			"outline":          nil,
			"fullText":         nil,
			"wordCount":        0,
			"outlineUpdatedAt": nil,
			"textUpdatedAt":    nil,
		})
		return
	}
	response.OK(c, gin.H{
		"outline":          bio.Outline,
		"fullText":         bio.FullText,
		"wordCount":        bio.WordCount,
		"outlineUpdatedAt": bio.OutlineUpdatedAt,
		"textUpdatedAt":    bio.TextUpdatedAt,
	})
}

// POST /biography/outline/generate
func (h *Handler) generateOutline(c *gin.Context) {
	outline, err := h.svc.GenerateOutline(c.Request.Context())
	if err != nil {
		writeGenerateError(c, err)
		return
	}
	response.OK(c, gin.H{"outline": outline})
}

// PUT /biography/outline
func (h *Handler) updateOutline(c *gin.Context) {
	var dto updateOutlineDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.svc.UpdateOutline(dto.Outline); err != nil {
		response.InternalError(c, err)
		return
	}
	response.Message(c, "Outline updated")
}

// POST /biography/generate
func (h *Handler) generateFullText(c *gin.Context) {
	text, wordCount, err := h.svc.GenerateFullText(c.Request.Context())
	if err != nil {
		writeGenerateError(c, err)
		return
	}
	response.OK(c, gin.H{
		"fullText":  text,
		"wordCount": wordCount,
	})
}

func writeGenerateError(c *gin.Context, err error) {
	if errors.Is(err, llm.ErrNotConfigured) {
		response.BadRequest(c, "LLM not configured")
		return
	}
	response.InternalError(c, err)
}
