package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/NathanaelMutua/expense-tracker-api/internal/store"
	"github.com/NathanaelMutua/expense-tracker-api/internal/util"

	"github.com/gin-gonic/gin"
)

// ExpenseHandler serves the expense CRUD routes.
type ExpenseHandler struct {
	Store *store.ExpenseStore
}

func NewExpenseHandler(s *store.ExpenseStore) *ExpenseHandler {
	return &ExpenseHandler{Store: s}
}

// ---------- request structures ----------

type createExpenseReq struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
}

// updateExpenseReq uses pointers so that absent fields can be told apart
// from zero values; only supplied fields are forwarded to the store.
type updateExpenseReq struct {
	Amount      *float64 `json:"amount"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
}

// ---------- POST /expenses ----------

func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req createExpenseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.KindValidation, "invalid request body")
		return
	}

	if err := util.ValidateAmount(req.Amount); err != nil {
		util.Error(c, http.StatusBadRequest, util.KindValidation, "amount is a negative value")
		return
	}

	expense, err := h.Store.Create(req.Amount, req.Description, req.Category)
	if err != nil {
		log.Printf("create expense: %v", err)
		util.Error(c, http.StatusInternalServerError, util.KindInternal, "something went wrong")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "New Expense added successfully",
		"newExpense": expense,
	})
}

// ---------- GET /expenses ----------

func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	expenses, err := h.Store.ListActive()
	if err != nil {
		log.Printf("list expenses: %v", err)
		util.Error(c, http.StatusInternalServerError, util.KindInternal, "something went wrong")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Retrieved All The Expense Records",
		"expenseData": expenses,
	})
}

// ---------- GET /expenses/:id ----------

// GetExpense looks up a single record by id. Soft-deleted records are
// still visible here; only listings filter them out.
func (h *ExpenseHandler) GetExpense(c *gin.Context) {
	id := c.Param("id")

	expense, err := h.Store.FindByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			util.Error(c, http.StatusNotFound, util.KindNotFound, "expense not found")
			return
		}
		log.Printf("get expense %s: %v", id, err)
		util.Error(c, http.StatusInternalServerError, util.KindInternal, "something went wrong")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Specific Expense Has Been Retrieved",
		"specificExpense": expense,
	})
}

// ---------- PATCH /expenses/:id ----------

func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	id := c.Param("id")

	var req updateExpenseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.KindValidation, "invalid request body")
		return
	}

	if req.Amount != nil {
		if err := util.ValidateAmount(*req.Amount); err != nil {
			util.Error(c, http.StatusBadRequest, util.KindValidation, "amount is a negative value")
			return
		}
	}

	expense, err := h.Store.Update(id, store.UpdateFields{
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			util.Error(c, http.StatusNotFound, util.KindNotFound, "expense not found")
			return
		}
		log.Printf("update expense %s: %v", id, err)
		util.Error(c, http.StatusInternalServerError, util.KindInternal, "something went wrong")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Expense Updated Successfully",
		"updatedExpense": expense,
	})
}

// ---------- DELETE /expenses/:id ----------

// DeleteExpense performs a soft delete: the row stays, IsDeleted flips to
// true and listings stop returning it. Deleting twice is a no-op.
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	id := c.Param("id")

	deleted := true
	expense, err := h.Store.Update(id, store.UpdateFields{IsDeleted: &deleted})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			util.Error(c, http.StatusNotFound, util.KindNotFound, "expense not found")
			return
		}
		log.Printf("delete expense %s: %v", id, err)
		util.Error(c, http.StatusInternalServerError, util.KindInternal, "something went wrong")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Expense Record Deleted Successfully",
		"deletedExpense": expense,
	})
}
