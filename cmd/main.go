package main

import (
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/lambda"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"

	"github.com/kemo-beep/effectai/application/ports/outbound"
	"github.com/kemo-beep/effectai/application/services"
	"github.com/kemo-beep/effectai/config"
	"github.com/kemo-beep/effectai/infrastructure/adapters"
	"github.com/kemo-beep/effectai/infrastructure/gin_interface/controllers"
	"github.com/kemo-beep/effectai/middleware"
)

func main() {
	// Optional .env for local runs; real deployments set the environment.
	_ = godotenv.Load()

	serverConfig, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get server config")
	}

	geminiConfig, err := config.GetGeminiConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get gemini config")
	}

	renderConfig, err := config.GetRenderConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get render config")
	}

	styles, err := config.NewStyleRegistry(serverConfig.StyleConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load style registry")
	}

	zeroLogger := adapters.NewZerologWrapper()

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(serverConfig.WorkerPoolSize, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	contentFetcher := adapters.NewContentFetcher(&http.Client{}, zeroLogger)

	geminiBackend := adapters.NewGeminiBackend(contentFetcher, geminiConfig, workerPool, zeroLogger)
	if !geminiConfig.Enabled() {
		zeroLogger.Warn("GEMINI_API_KEY not set, every request uses the deterministic fallback")
	}

	instructionBuilder, err := services.NewInstructionBuilder(styles)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build instruction builder")
	}

	synthesizer := services.NewFallbackSynthesizer(styles)

	compositionGenerator := services.NewCompositionGenerator(zeroLogger, geminiBackend, instructionBuilder, synthesizer)

	compositionController := controllers.NewCompositionController(zeroLogger, compositionGenerator)

	var renderService outbound.RenderServicePort
	if renderConfig.Enabled() {
		sess := session.Must(session.NewSessionWithOptions(session.Options{
			SharedConfigState: session.SharedConfigEnable,
			Config:            aws.Config{Region: aws.String(renderConfig.Region)},
		}))
		renderService = adapters.NewLambdaRenderClient(lambda.New(sess), renderConfig, zeroLogger)
	} else {
		zeroLogger.Warn("RENDER_FUNCTION_NAME not set, render endpoints are disabled")
	}
	renderController := controllers.NewRenderController(zeroLogger, renderService)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		err = v.RegisterValidation("stylepreset", func(fl validator.FieldLevel) bool {
			return styles.Has(fl.Field().String())
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to register style validation")
		}
	}

	router := gin.Default()

	if err = router.SetTrustedProxies(nil); err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(zeroLogger))

	compositionController.RegisterRoutes(router)
	renderController.RegisterRoutes(router)

	if err = router.Run(":" + serverConfig.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
}
