package routes

import (
	"log"
	"strconv"

	_ "assistec_os/docs" // This will be auto-generated
	"assistec_os/internal/adapter/http/handlers"
	repository2 "assistec_os/internal/adapter/persistence/repository"
	"assistec_os/internal/infrastructure/ai"
	"assistec_os/internal/infrastructure/database"
	"assistec_os/internal/usecase"
	"assistec_os/internal/usecase/interfaces"

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
	ddb := database.ConnectDynamoDB()

	orderRepo := repository2.NewServiceOrderDynamoRepository(ddb)
	notificationRepo := repository2.NewNotificationDynamoRepository(ddb)
	clientRepo := repository2.NewClientDynamoRepository(ddb)
	stockRepo := repository2.NewStockDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)

	var gateway interfaces.IDiagnosisGateway
	mistral, err := ai.NewMistralGateway(ai.NewConfigFromEnv())
	if err != nil {
		log.Printf("Diagnosis gateway not configured, orders will be created without enrichment: %v", err)
		gateway = ai.NoopGateway{}
	} else {
		gateway = mistral
	}

	orderUseCase := usecase.NewServiceOrderUseCase(orderRepo, clientRepo, userRepo, notificationRepo, gateway)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo)
	sweepUseCase := usecase.NewNotificationSweepUseCase(orderRepo, clientRepo, stockRepo, userRepo, notificationRepo)

	orderHandler := handlers.NewServiceOrderHandler(orderUseCase)
	notificationHandler := handlers.NewNotificationHandler(notificationUseCase, sweepUseCase)

	// Rotas publicas
	public := router.Group("/")
	addPingRoutes(public)

	// Toda a superfície exige a identidade do usuário da sessão.
	api := router.Group("/api", RequireUsuario())
	addServiceOrderRoutes(api, orderHandler)
	addNotificationRoutes(api, notificationHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
