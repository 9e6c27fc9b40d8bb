package routes

import (
	"context"
	"log"
	"strconv"

	_ "payonom_bridge/docs" // This will be auto-generated
	"payonom_bridge/internal/adapter/http/handlers"
	repository2 "payonom_bridge/internal/adapter/persistence/repository"
	"payonom_bridge/internal/infrastructure/database"
	"payonom_bridge/internal/infrastructure/payments"
	"payonom_bridge/internal/infrastructure/session"
	"payonom_bridge/internal/infrastructure/settings"
	"payonom_bridge/internal/usecase"
	"payonom_bridge/internal/usecase/interfaces"

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
	rdb := database.ConnectRedis()

	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	eventRepo := repository2.NewPaymentEventDynamoRepository(ddb)
	sessionStore := session.NewRedisSessionStore(rdb)
	gatewaySettings := settings.NewEnvGatewaySettings()

	cfg, err := gatewaySettings.Get(context.Background())
	if err != nil {
		log.Fatalf("Failed to load gateway settings: %v", err)
	}
	var processor interfaces.IProcessorClient
	payonomClient, err := payments.NewPayonomClient(cfg)
	if err != nil {
		// Checkout still serves a clean GATEWAY_NOT_CONFIGURED error;
		// callbacks reject until credentials are set.
		log.Printf("Payonom client not configured: %v", err)
	} else {
		processor = payonomClient
	}

	checkoutUseCase := usecase.NewCheckoutUseCase(orderRepo, sessionStore, sessionStore, gatewaySettings)
	callbackUseCase := usecase.NewCallbackUseCase(orderRepo, eventRepo, sessionStore, processor, gatewaySettings)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, eventRepo)

	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)
	callbackHandler := handlers.NewCallbackHandler(callbackUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	gatewayHandler := handlers.NewGatewayHandler(gatewaySettings)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, checkoutHandler, callbackHandler, orderHandler, gatewayHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
