package store

import (
	"errors"
	"fmt"

	"github.com/NathanaelMutua/expense-tracker-api/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNotFound is returned when no expense row matches the given id.
var ErrNotFound = errors.New("expense not found")

// ExpenseStore mediates all reads and writes of the expenses table.
// Handlers never touch *gorm.DB directly; they get a store at startup.
type ExpenseStore struct {
	db *gorm.DB
}

func NewExpenseStore(db *gorm.DB) *ExpenseStore {
	return &ExpenseStore{db: db}
}

// UpdateFields carries a partial update. Nil fields are left unchanged.
type UpdateFields struct {
	Amount      *float64
	Description *string
	Category    *string
	IsDeleted   *bool
}

// Create inserts a new expense with a freshly assigned id and IsDeleted=false.
func (s *ExpenseStore) Create(amount float64, description, category string) (*models.Expense, error) {
	expense := models.Expense{
		ID:          uuid.NewString(),
		Amount:      amount,
		Description: description,
		Category:    category,
	}
	if err := s.db.Create(&expense).Error; err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}
	return &expense, nil
}

// ListActive returns all expenses that have not been soft-deleted.
func (s *ExpenseStore) ListActive() ([]models.Expense, error) {
	var expenses []models.Expense
	if err := s.db.Where("is_deleted = ?", false).Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return expenses, nil
}

// FindByID returns the expense with the given id, soft-deleted or not.
func (s *ExpenseStore) FindByID(id string) (*models.Expense, error) {
	var expense models.Expense
	if err := s.db.Where("id = ?", id).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find expense: %w", err)
	}
	return &expense, nil
}

// Update applies the non-nil fields to the expense with the given id and
// returns the updated row. Returns ErrNotFound if no row matches.
func (s *ExpenseStore) Update(id string, fields UpdateFields) (*models.Expense, error) {
	expense, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}

	values := map[string]interface{}{}
	if fields.Amount != nil {
		values["amount"] = *fields.Amount
	}
	if fields.Description != nil {
		values["description"] = *fields.Description
	}
	if fields.Category != nil {
		values["category"] = *fields.Category
	}
	if fields.IsDeleted != nil {
		values["is_deleted"] = *fields.IsDeleted
	}
	if len(values) == 0 {
		return expense, nil
	}

	if err := s.db.Model(expense).Updates(values).Error; err != nil {
		return nil, fmt.Errorf("update expense: %w", err)
	}
	return expense, nil
}

// SumActive returns the total amount and row count over non-deleted expenses.
func (s *ExpenseStore) SumActive() (float64, int64, error) {
	var result struct {
		Total float64
		Count int64
	}
	err := s.db.Model(&models.Expense{}).
		Select("COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Where("is_deleted = ?", false).
		Scan(&result).Error
	if err != nil {
		return 0, 0, fmt.Errorf("sum expenses: %w", err)
	}
	return result.Total, result.Count, nil
}
