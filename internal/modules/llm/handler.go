package llm

import (
	"errors"

	"github.com/biographer-ai/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/models/:provider", h.getModels)
	rg.POST("/config/llm", h.setConfig)
	rg.GET("/config/llm", h.getConfig)
}

type setConfigDTO struct {
	Provider string `json:"provider" binding:"required"`
	Model    string `json:"model"    binding:"required"`
	APIKey   string `json:"apiKey"   binding:"required"`
}

// GET /models/:provider
func (h *Handler) getModels(c *gin.Context) {
	ms, ok := ModelsFor(c.Param("provider"))
	if !ok {
		response.BadRequest(c, "unsupported provider")
		return
	}
	response.OK(c, gin.H{"models": ms})
}

// POST /config/llm
func (h *Handler) setConfig(c *gin.Context) {
	var dto setConfigDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.svc.SetConfig(dto.Provider, dto.Model, dto.APIKey); err != nil {
		if errors.Is(err, ErrInvalidProvider) || errors.Is(err, ErrInvalidModel) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Message(c, "LLM configuration saved")
}

// GET /config/llm — the stored API key is never echoed back.
func (h *Handler) getConfig(c *gin.Context) {
	cfg, err := h.svc.GetConfig()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if cfg == nil {
		response.OK(c, gin.H{"configured": false})
		return
	}
	response.OK(c, gin.H{
		"provider":   cfg.Provider,
		"model":      cfg.Model,
		"configured": true,
	})
}
