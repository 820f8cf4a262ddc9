package routes

import (
	"log"
	"os"
	"strconv"

	_ "heavyhaul_shop/docs" // This will be auto-generated
	"heavyhaul_shop/internal/adapter/http/handlers"
	"heavyhaul_shop/internal/adapter/http/middleware"
	repository2 "heavyhaul_shop/internal/adapter/persistence/repository"
	"heavyhaul_shop/internal/infrastructure/database"
	"heavyhaul_shop/internal/infrastructure/payments"
	"heavyhaul_shop/internal/usecase"
	"heavyhaul_shop/internal/usecase/interfaces"

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

	inspectionRepo := repository2.NewInspectionDynamoRepository(ddb)
	jobRepo := repository2.NewJobDynamoRepository(ddb)
	vehicleRepo := repository2.NewVehicleDynamoRepository(ddb)
	customerRepo := repository2.NewCustomerDynamoRepository(ddb)
	paymentRepo := repository2.NewInvoicePaymentDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	inspectionUseCase := usecase.NewInspectionUseCase(inspectionRepo, jobRepo, vehicleRepo, customerRepo)
	serviceJobUseCase := usecase.NewServiceJobUseCase(inspectionRepo, jobRepo)
	jobUseCase := usecase.NewJobUseCase(jobRepo, vehicleRepo, customerRepo)
	invoiceUseCase := usecase.NewInvoiceUseCase(inspectionRepo, jobRepo, vehicleRepo, paymentRepo, paymentGateway, taxRateFromEnv())

	inspectionHandler := handlers.NewInspectionHandler(inspectionUseCase)
	serviceJobHandler := handlers.NewServiceJobHandler(serviceJobUseCase)
	jobHandler := handlers.NewJobHandler(jobUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addShopRoutes(v1, jobHandler, inspectionHandler, serviceJobHandler, invoiceHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(middleware.Auth())
}

// taxRateFromEnv reads the parts tax override; unset or invalid falls back to
// the shop default downstream.
func taxRateFromEnv() float64 {
	v := os.Getenv("SHOP_TAX_RATE")
	if v == "" {
		return 0
	}
	rate, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("[routes] invalid SHOP_TAX_RATE=%q, using default", v)
		return 0
	}
	return rate
}
