package handler

import (
	"log"
	"net/http"

	"github.com/NathanaelMutua/expense-tracker-api/internal/store"
	"github.com/NathanaelMutua/expense-tracker-api/internal/util"

	"github.com/gin-gonic/gin"
)

// StatsHandler serves aggregate views over the expense table.
type StatsHandler struct {
	Store *store.ExpenseStore
}

func NewStatsHandler(s *store.ExpenseStore) *StatsHandler {
	return &StatsHandler{Store: s}
}

// GetSummary returns the sum and count of all non-deleted expense amounts.
func (h *StatsHandler) GetSummary(c *gin.Context) {
	total, count, err := h.Store.SumActive()
	if err != nil {
		log.Printf("sum expenses: %v", err)
		util.Error(c, http.StatusInternalServerError, util.KindInternal, "something went wrong")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Sum of All Expenses Extracted",
		"total":   total,
		"count":   count,
	})
}
