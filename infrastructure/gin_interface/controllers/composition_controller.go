package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/kemo-beep/effectai/application/ports/inbound"
	"github.com/kemo-beep/effectai/application/ports/outbound"
	"github.com/kemo-beep/effectai/domain"
	"github.com/kemo-beep/effectai/infrastructure/gin_interface/dto"
)

type CompositionController interface {
	GenerateComposition(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type compositionController struct {
	logger    outbound.LoggerPort
	generator inbound.CompositionGeneratorPort
}

func NewCompositionController(logger outbound.LoggerPort,
	generator inbound.CompositionGeneratorPort) CompositionController {
	return &compositionController{
		logger:    logger,
		generator: generator,
	}
}

func (ctrl *compositionController) GenerateComposition(c *gin.Context) {
	var req dto.GenerateCompositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{
			"error":   "Invalid request",
			"details": validationDetails(err),
		})
		return
	}

	composition, err := ctrl.generator.Generate(c.Request.Context(), inbound.GenerateCompositionParams{
		Prompt:          req.Prompt,
		Style:           req.Style,
		DurationSeconds: req.Duration,
		AspectRatio:     domain.AspectRatio(req.AspectRatio),
	})
	if err != nil {
		ctrl.logger.Error(err, "Failed to generate composition")
		c.JSON(500, gin.H{"error": "Failed to generate motion graphics"})
		return
	}

	// The caller's aspect ratio always wins over whatever the backend chose.
	composition.AspectRatio = domain.AspectRatio(req.AspectRatio).OrDefault()

	c.JSON(200, composition)
}

func (ctrl *compositionController) RegisterRoutes(g *gin.Engine) {
	g.POST("/generate", ctrl.GenerateComposition)
}

// validationDetails flattens binding errors into field-level messages.
func validationDetails(err error) []gin.H {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []gin.H{{"message": err.Error()}}
	}

	details := make([]gin.H, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		details = append(details, gin.H{
			"field":   fieldErr.Field(),
			"rule":    fieldErr.Tag(),
			"message": fieldErr.Error(),
		})
	}
	return details
}
