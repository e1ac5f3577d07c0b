package app

import (
	"github.com/biographer-ai/core/internal/modules/biography"
	"github.com/biographer-ai/core/internal/modules/interview"
	"github.com/biographer-ai/core/internal/modules/llm"
	"github.com/biographer-ai/core/internal/modules/transfer"
	"github.com/biographer-ai/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes() {
	r := a.router
	db := a.db

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	r.GET("/", func(c *gin.Context) {
		response.OK(c, gin.H{"message": "Biographer AI Backend Running"})
	})

	llmSvc := llm.NewService(db, llm.NewClient())
	interviewSvc := interview.NewService(db, llmSvc)
	biographySvc := biography.NewService(db, llmSvc)
	transferSvc := transfer.NewService(db, a.cfg.Database.Path)

	api := r.Group("")
	llm.NewHandler(llmSvc).RegisterRoutes(api)
	interview.NewHandler(interviewSvc).RegisterRoutes(api)
	biography.NewHandler(biographySvc).RegisterRoutes(api)
	transfer.NewHandler(transferSvc).RegisterRoutes(api)
}
