package routes

import (
	"sejong_admin/internal/adapter/http/handlers"
	"sejong_admin/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathPlans  = "/plans"
	PathFields = "/fields"
	PathBudget = "/budget"
)

func addProgramRoutes(rg *gin.RouterGroup, planHandler *handlers.LessonPlanHandler, budgetHandler *handlers.BudgetHandler) {
	plans := rg.Group(PathPlans)
	{
		// Student-facing plan lifecycle.
		plans.POST("/draft", planHandler.SaveDraft)
		plans.POST("", planHandler.SubmitPlan)
		plans.PATCH("/resubmit", planHandler.ResubmitPlan)
		plans.GET("/:student_id", planHandler.GetPlan)

		// Review actions require the admin identity from the JWT.
		review := plans.Group("", middleware.AdminAuth())
		review.PATCH("/approve", planHandler.ApprovePlan)
		review.PATCH("/reject", planHandler.RejectPlan)
	}

	admin := rg.Group("", middleware.AdminAuth())
	{
		fields := admin.Group(PathFields)
		fields.PUT("/:field/settings", budgetHandler.UpdateFieldSettings)
		fields.GET("/:field/budget", budgetHandler.GetFieldBudgetStatus)

		budget := admin.Group(PathBudget)
		budget.GET("/overview", budgetHandler.GetBudgetOverview)
	}
}
