package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/NathanaelMutua/expense-tracker-api/internal/config"
	"github.com/NathanaelMutua/expense-tracker-api/internal/database"
)

func newTestStore(t *testing.T) *ExpenseStore {
	t.Helper()

	db, err := database.Init(config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	if err != nil {
		t.Fatalf("init database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewExpenseStore(db)
}

func TestCreate(t *testing.T) {
	s := newTestStore(t)

	expense, err := s.Create(50, "lunch", "food")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if expense.ID == "" {
		t.Error("Create() returned empty id")
	}
	if expense.Amount != 50 || expense.Description != "lunch" || expense.Category != "food" {
		t.Errorf("Create() stored %+v, want input fields back", expense)
	}
	if expense.IsDeleted {
		t.Error("Create() IsDeleted = true, want false")
	}
}

func TestListActive_ExcludesDeleted(t *testing.T) {
	s := newTestStore(t)

	a, err := s.Create(10, "coffee", "food")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	b, err := s.Create(20, "bus", "transport")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	deleted := true
	if _, err := s.Update(a.ID, UpdateFields{IsDeleted: &deleted}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	expenses, err := s.ListActive()
	if err != nil {
		t.Fatalf("ListActive() error = %v", err)
	}
	if len(expenses) != 1 {
		t.Fatalf("ListActive() returned %d rows, want 1", len(expenses))
	}
	if expenses[0].ID != b.ID {
		t.Errorf("ListActive() returned id %s, want %s", expenses[0].ID, b.ID)
	}
}

func TestFindByID_IncludesDeleted(t *testing.T) {
	s := newTestStore(t)

	a, err := s.Create(10, "coffee", "food")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	deleted := true
	if _, err := s.Update(a.ID, UpdateFields{IsDeleted: &deleted}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	// direct lookup does not filter on the soft-delete flag
	found, err := s.FindByID(a.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if !found.IsDeleted {
		t.Error("FindByID() IsDeleted = false, want true")
	}
}

func TestFindByID_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.FindByID("no-such-id")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByID() error = %v, want ErrNotFound", err)
	}
}

func TestUpdate_PartialLeavesOtherFields(t *testing.T) {
	s := newTestStore(t)

	a, err := s.Create(10, "coffee", "food")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	amount := 25.0
	updated, err := s.Update(a.ID, UpdateFields{Amount: &amount})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Amount != 25 {
		t.Errorf("Update() Amount = %f, want 25", updated.Amount)
	}
	if updated.Description != "coffee" || updated.Category != "food" {
		t.Errorf("Update() overwrote unset fields: %+v", updated)
	}
}

func TestUpdate_NoFieldsIsNoop(t *testing.T) {
	s := newTestStore(t)

	a, err := s.Create(10, "coffee", "food")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	updated, err := s.Update(a.ID, UpdateFields{})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Amount != 10 || updated.Description != "coffee" || updated.Category != "food" {
		t.Errorf("Update() with no fields changed the row: %+v", updated)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	s := newTestStore(t)

	amount := 1.0
	_, err := s.Update("no-such-id", UpdateFields{Amount: &amount})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
}

func TestUpdate_DeleteTwiceIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	a, err := s.Create(10, "coffee", "food")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	deleted := true
	if _, err := s.Update(a.ID, UpdateFields{IsDeleted: &deleted}); err != nil {
		t.Fatalf("first delete error = %v", err)
	}
	second, err := s.Update(a.ID, UpdateFields{IsDeleted: &deleted})
	if err != nil {
		t.Fatalf("second delete error = %v", err)
	}
	if !second.IsDeleted {
		t.Error("second delete IsDeleted = false, want true")
	}
}

func TestSumActive(t *testing.T) {
	s := newTestStore(t)

	a, err := s.Create(10, "coffee", "food")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := s.Create(20, "bus", "transport"); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := s.Create(5, "snack", "food"); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	deleted := true
	if _, err := s.Update(a.ID, UpdateFields{IsDeleted: &deleted}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	total, count, err := s.SumActive()
	if err != nil {
		t.Fatalf("SumActive() error = %v", err)
	}
	if total != 25 {
		t.Errorf("SumActive() total = %f, want 25", total)
	}
	if count != 2 {
		t.Errorf("SumActive() count = %d, want 2", count)
	}
}

func TestSumActive_Empty(t *testing.T) {
	s := newTestStore(t)

	total, count, err := s.SumActive()
	if err != nil {
		t.Fatalf("SumActive() error = %v", err)
	}
	if total != 0 || count != 0 {
		t.Errorf("SumActive() = (%f, %d), want (0, 0)", total, count)
	}
}
