package routes

import (
	"os"
	"strconv"

	_ "faturas/docs" // generated by swag
	"faturas/internal/adapter/http/handlers"
	repository2 "faturas/internal/adapter/persistence/repository"
	"faturas/internal/infrastructure/database"
	"faturas/internal/infrastructure/extraction"
	"faturas/internal/infrastructure/payments"
	"faturas/internal/logger"
	"faturas/internal/usecase"
	"faturas/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

const PORT = 8080

// Run will start the server
func Run() {
	if err := logger.Setup(); err != nil {
		panic(err)
	}
	log := logger.WithComponent("http")

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	log.Info().Int("port", PORT).Msg("starting server")
	if err := router.Run(":" + strconv.Itoa(PORT)); err != nil {
		log.Fatal().Err(err).Msg("failed to startup the application")
	}
}

func getRoutes() {
	log := logger.WithComponent("routes")

	ddb := database.ConnectDynamoDB()

	serviceRepo := repository2.NewServiceDynamoRepository(ddb)
	invoiceRepo := repository2.NewInvoiceDynamoRepository(ddb)
	intentRepo := repository2.NewPaymentIntentDynamoRepository(ddb)

	extractionGateway, err := extraction.NewGatewayFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("extraction backend not configured")
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Warn().Err(err).Msg("mercado pago gateway not configured")
	} else {
		paymentGateway = mpGateway
	}

	parseUseCase := usecase.NewParseInvoiceUseCase(extractionGateway, serviceRepo, invoiceRepo)
	serviceUseCase := usecase.NewServiceUseCase(serviceRepo)
	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo, serviceRepo)
	intentUseCase := usecase.NewPaymentIntentUseCase(intentRepo, invoiceUseCase, paymentGateway)

	invoiceHandler := handlers.NewInvoiceHandler(parseUseCase, invoiceUseCase)
	serviceHandler := handlers.NewServiceHandler(serviceUseCase)
	intentHandler := handlers.NewPaymentIntentHandler(intentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBillRoutes(v1, invoiceHandler, serviceHandler, intentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log := logger.WithComponent("http")
		log.Error().Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatus(500)
	}))
}
