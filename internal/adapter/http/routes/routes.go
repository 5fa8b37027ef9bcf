package routes

import (
	"log"
	"strconv"

	_ "sejong_admin/docs" // This will be auto-generated
	"sejong_admin/internal/adapter/http/handlers"
	repository2 "sejong_admin/internal/adapter/persistence/repository"
	"sejong_admin/internal/infrastructure/database"
	"sejong_admin/internal/usecase"

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

	planRepo := repository2.NewLessonPlanDynamoRepository(ddb)
	settingsRepo := repository2.NewFieldSettingsDynamoRepository(ddb)
	ledgerRepo := repository2.NewLedgerDynamoRepository(ddb)
	studentRepo := repository2.NewStudentDynamoRepository(ddb)

	planUseCase := usecase.NewLessonPlanUseCase(planRepo, settingsRepo, ledgerRepo, studentRepo)
	budgetUseCase := usecase.NewBudgetUseCase(settingsRepo, ledgerRepo, planRepo, studentRepo)

	planHandler := handlers.NewLessonPlanHandler(planUseCase)
	budgetHandler := handlers.NewBudgetHandler(budgetUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addProgramRoutes(v1, planHandler, budgetHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
