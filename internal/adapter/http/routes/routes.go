package routes

import (
	"log"
	"strconv"

	_ "cobranzas_art/docs" // This will be auto-generated
	"cobranzas_art/internal/adapter/http/handlers"
	repository2 "cobranzas_art/internal/adapter/persistence/repository"
	"cobranzas_art/internal/config"
	"cobranzas_art/internal/consolidation"
	"cobranzas_art/internal/infrastructure/database"
	"cobranzas_art/internal/infrastructure/mail"
	"cobranzas_art/internal/usecase"
	"cobranzas_art/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ddb := database.ConnectDynamoDB(cfg)

	lotRepo := repository2.NewConsolidationLotDynamoRepository(ddb)
	emailLogRepo := repository2.NewEmailLogDynamoRepository(ddb)

	pipeline := consolidation.NewPipeline(cfg)
	consolidationUseCase := usecase.NewConsolidationUseCase(pipeline, lotRepo, cfg.OutputDir)

	var noticeGateway interfaces.INoticeGateway
	smtpGateway, err := mail.NewSMTPGateway(cfg)
	if err != nil {
		log.Printf("SMTP gateway not configured: %v", err)
	} else {
		noticeGateway = smtpGateway
	}
	noticeUseCase := usecase.NewNoticeUseCase(lotRepo, emailLogRepo, noticeGateway)

	consolidationHandler := handlers.NewConsolidationHandler(consolidationUseCase)
	noticeHandler := handlers.NewNoticeHandler(noticeUseCase)

	// Rutas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addConsolidationRoutes(v1, consolidationHandler, noticeHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
