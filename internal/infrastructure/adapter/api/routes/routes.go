package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/moneymates/budget-ledger/internal/domain/port/core"
	"github.com/moneymates/budget-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/moneymates/budget-ledger/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API. Signup and login are
// open; every other route requires a bearer token whose subject matches the
// userId path segment where one is present.
func SetupRoutes(
	router *gin.Engine,
	userHandler *handler.UserHandler,
	budgetHandler *handler.BudgetHandler,
	categoryHandler *handler.CategoryHandler,
	expenseHandler *handler.ExpenseHandler,
	incomeHandler *handler.IncomeHandler,
	dashboardHandler *handler.DashboardHandler,
	tokenSecret []byte,
	logger coreport.Logger,
) {
	requireAuth := middleware.RequireAuth(tokenSecret, logger)

	// User routes
	userRoutes := router.Group("/users")
	{
		userRoutes.POST("/signup", userHandler.Signup)
		userRoutes.POST("/login", userHandler.Login)
		userRoutes.POST("/first-login-done/:userId", requireAuth, userHandler.CompleteFirstLogin)
	}

	// Budget routes (raw rows)
	budgetRoutes := router.Group("/budgets", requireAuth)
	{
		budgetRoutes.POST("", budgetHandler.AddBudget)
		budgetRoutes.GET("/:userId", budgetHandler.ListBudgets)
		budgetRoutes.DELETE("/:budgetId", budgetHandler.DeleteBudget)
	}

	// Category routes (limit vs. spend)
	categoryRoutes := router.Group("/categories", requireAuth)
	{
		categoryRoutes.GET("/:userId", categoryHandler.ListCategorySummaries)
		categoryRoutes.PUT("/:userId/:category", categoryHandler.SetCategoryLimit)
		categoryRoutes.DELETE("/:userId/:category", categoryHandler.DeleteCategory)
		categoryRoutes.GET("/:userId/:category/expenses", expenseHandler.CategoryExpenses)
	}

	// Expense routes
	expenseRoutes := router.Group("/expenses", requireAuth)
	{
		expenseRoutes.POST("", expenseHandler.RecordExpense)
		expenseRoutes.GET("/:userId", expenseHandler.ListExpenses)
		expenseRoutes.GET("/recent/:userId", expenseHandler.RecentExpenses)
		expenseRoutes.DELETE("/:expenseId", expenseHandler.DeleteExpense)
	}

	// Income routes
	incomeRoutes := router.Group("/income", requireAuth)
	{
		incomeRoutes.POST("", incomeHandler.AddIncome)
		incomeRoutes.GET("/:userId", incomeHandler.ListIncome)
		incomeRoutes.GET("/total/:userId", incomeHandler.TotalIncome)
		incomeRoutes.DELETE("/:incomeId", incomeHandler.DeleteIncome)
	}

	// Dashboard routes
	dashboardRoutes := router.Group("/dashboard", requireAuth)
	{
		dashboardRoutes.GET("/totals/:userId", dashboardHandler.Totals)
		dashboardRoutes.GET("/spending/:userId", dashboardHandler.MonthlySeries)
		dashboardRoutes.GET("/categories/:userId", dashboardHandler.CategoryBreakdown)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
