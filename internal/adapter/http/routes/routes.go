package routes

import (
	"log"
	"strconv"
	"time"

	_ "petslove_booking/docs" // This will be auto-generated
	"petslove_booking/internal/adapter/http/handlers"
	repository2 "petslove_booking/internal/adapter/persistence/repository"
	"petslove_booking/internal/infrastructure/database"
	"petslove_booking/internal/usecase"

	"github.com/gin-contrib/cors"
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

	appointmentRepo := repository2.NewAppointmentDynamoRepository(ddb)
	usageRepo := repository2.NewPackageUsageDynamoRepository(ddb)
	auditRepo := repository2.NewAuditLogDynamoRepository(ddb)
	petRepo := repository2.NewPetDynamoRepository(ddb)
	catalogRepo := repository2.NewCatalogDynamoRepository(ddb)

	bookingUseCase := usecase.NewBookingUseCase(appointmentRepo, petRepo, catalogRepo, usageRepo, auditRepo)
	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo, petRepo, usageRepo, auditRepo)

	appointmentHandler := handlers.NewAppointmentHandler(bookingUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBookingRoutes(v1, appointmentHandler, catalogHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Actor-ID"},
		MaxAge:           12 * time.Hour,
		AllowCredentials: false,
	}))
}
