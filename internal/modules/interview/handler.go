package interview

import (
	"errors"
	"strconv"

	"github.com/biographer-ai/core/internal/modules/llm"
	"github.com/biographer-ai/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/question/generate", h.generateQuestion)
	rg.POST("/answer", h.submitAnswer)
	rg.GET("/qa", h.list)
	rg.PUT("/qa/:id", h.update)
	rg.DELETE("/qa/:id", h.delete)
}

// POST /question/generate — the body is optional; an empty body means
// "generate from history with no hint".
func (h *Handler) generateQuestion(c *gin.Context) {
	var dto generateQuestionDTO
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&dto); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
	}

	pair, err := h.svc.GenerateQuestion(c.Request.Context(), dto.CustomQuestion, dto.QuestionPrompt)
	if err != nil {
		if errors.Is(err, llm.ErrNotConfigured) {
			response.BadRequest(c, "LLM not configured")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, gin.H{
		"id":       pair.ID,
		"question": pair.Question,
		"isCustom": pair.IsCustom,
	})
}

// POST /answer
func (h *Handler) submitAnswer(c *gin.Context) {
	var dto answerDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.svc.SubmitAnswer(dto.QAID, dto.Answer); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFoundMsg(c, "question not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Message(c, "Answer saved")
}

// GET /qa
func (h *Handler) list(c *gin.Context) {
	pairs, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"qaPairs": pairs})
}

// PUT /qa/:id
func (h *Handler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var dto UpdateQADTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.svc.Update(id, dto); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFoundMsg(c, "Q&A pair not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Message(c, "Q&A pair updated")
}

// DELETE /qa/:id
func (h *Handler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFoundMsg(c, "Q&A pair not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Message(c, "Q&A pair deleted")
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}
