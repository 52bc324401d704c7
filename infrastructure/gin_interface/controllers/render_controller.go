package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/kemo-beep/effectai/application/ports/outbound"
	"github.com/kemo-beep/effectai/infrastructure/gin_interface/dto"
)

// RenderController exposes render-job submission and progress polling.
// Both endpoints answer 503 when no render function is configured.
type RenderController interface {
	StartRender(c *gin.Context)
	GetProgress(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type renderController struct {
	logger        outbound.LoggerPort
	renderService outbound.RenderServicePort
}

func NewRenderController(logger outbound.LoggerPort, renderService outbound.RenderServicePort) RenderController {
	return &renderController{
		logger:        logger,
		renderService: renderService,
	}
}

func (ctrl *renderController) StartRender(c *gin.Context) {
	if ctrl.renderService == nil {
		c.JSON(503, gin.H{"error": "render service not configured"})
		return
	}

	var req dto.RenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": validationDetails(err)})
		return
	}

	res, err := ctrl.renderService.StartRender(c.Request.Context(), outbound.StartRenderParams{
		CompositionID: req.ID,
		InputProps:    req.InputProps,
	})
	if err != nil {
		ctrl.logger.Error(err, "Failed to start render")
		c.JSON(500, gin.H{"error": "Failed to start render"})
		return
	}

	c.JSON(200, dto.RenderResponse{
		RenderID:   res.RenderID,
		BucketName: res.BucketName,
	})
}

func (ctrl *renderController) GetProgress(c *gin.Context) {
	if ctrl.renderService == nil {
		c.JSON(503, gin.H{"error": "render service not configured"})
		return
	}

	var req dto.ProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": validationDetails(err)})
		return
	}

	progress, err := ctrl.renderService.GetProgress(c.Request.Context(), req.ID, req.BucketName)
	if err != nil {
		ctrl.logger.Error(err, "Failed to get render progress")
		c.JSON(500, gin.H{"error": "Failed to get progress"})
		return
	}

	c.JSON(200, progress)
}

func (ctrl *renderController) RegisterRoutes(g *gin.Engine) {
	g.POST("/render", ctrl.StartRender)
	g.POST("/progress", ctrl.GetProgress)
}
