package router

import (
	"github.com/NathanaelMutua/expense-tracker-api/internal/config"
	"github.com/NathanaelMutua/expense-tracker-api/internal/handler"
	"github.com/NathanaelMutua/expense-tracker-api/internal/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine and binds all routes.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	expenseStore := store.NewExpenseStore(db)

	expenseHandler := handler.NewExpenseHandler(expenseStore)
	r.POST("/expenses", expenseHandler.CreateExpense)
	r.GET("/expenses", expenseHandler.ListExpenses)
	r.GET("/expenses/:id", expenseHandler.GetExpense)
	r.PATCH("/expenses/:id", expenseHandler.UpdateExpense)
	r.DELETE("/expenses/:id", expenseHandler.DeleteExpense)

	statsHandler := handler.NewStatsHandler(expenseStore)
	r.GET("/stats/summary", statsHandler.GetSummary)

	exportHandler := handler.NewExportHandler(expenseStore)
	r.GET("/export/csv", exportHandler.ExportCSV)
	r.GET("/export/xlsx", exportHandler.ExportXLSX)

	return r
}
