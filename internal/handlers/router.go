package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/mica-edu/assessment-backend/internal/repositories"
	"github.com/mica-edu/assessment-backend/internal/services"
	"github.com/mica-edu/assessment-backend/internal/utils"
)

type HandlerManager struct {
	healthHandler   *HealthHandler
	categoryHandler *CategoryHandler
	questionHandler *QuestionHandler
	testHandler     *TestHandler
	resultHandler   *ResultHandler
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	repo repositories.Repository,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		healthHandler:   NewHealthHandler(repo, logger),
		categoryHandler: NewCategoryHandler(serviceManager.Category(), logger),
		questionHandler: NewQuestionHandler(serviceManager.Question(), logger),
		testHandler:     NewTestHandler(serviceManager.TestAssembly(), logger),
		resultHandler:   NewResultHandler(serviceManager.Result(), serviceManager.Export(), logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/", hm.healthHandler.Liveness)

	api := router.Group("/api")
	{
		api.GET("/health", hm.healthHandler.Health)

		categories := api.Group("/test-categories")
		{
			categories.POST("", hm.categoryHandler.CreateCategory)
			categories.GET("", hm.categoryHandler.ListCategories)
			categories.GET("/:slug", hm.categoryHandler.GetCategory)
		}

		questions := api.Group("/questions")
		{
			questions.POST("", hm.questionHandler.CreateQuestion)
			questions.GET("", hm.questionHandler.ListQuestions)
			questions.GET("/count", hm.questionHandler.CountQuestions)
			questions.GET("/:id", hm.questionHandler.GetQuestion)
			questions.PUT("/:id", hm.questionHandler.UpdateQuestion)
			questions.DELETE("/:id", hm.questionHandler.DeleteQuestion)
		}

		api.GET("/sample-test/:grade", hm.testHandler.SampleTest)
		api.GET("/live-test/:grade", hm.testHandler.LiveTest)

		results := api.Group("/results")
		{
			results.POST("", hm.resultHandler.SubmitResult)
			results.GET("", hm.resultHandler.ListResults)
			results.GET("/export", hm.resultHandler.ExportResults)
			results.GET("/:rollNo", hm.resultHandler.CheckResult)
		}
	}
}
