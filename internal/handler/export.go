package handler

import (
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/NathanaelMutua/expense-tracker-api/internal/store"
	"github.com/NathanaelMutua/expense-tracker-api/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler exports the active expense records as CSV or XLSX.
type ExportHandler struct {
	Store *store.ExpenseStore
}

func NewExportHandler(s *store.ExpenseStore) *ExportHandler {
	return &ExportHandler{Store: s}
}

var exportHeaders = []string{"id", "amount", "description", "category", "created_at"}

// ExportCSV writes all non-deleted expenses as a CSV attachment.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	expenses, err := h.Store.ListActive()
	if err != nil {
		log.Printf("export csv: %v", err)
		util.Error(c, http.StatusInternalServerError, util.KindInternal, "something went wrong")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"expenses_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(exportHeaders)
	for _, e := range expenses {
		writer.Write([]string{
			e.ID,
			strconv.FormatFloat(e.Amount, 'f', 2, 64),
			e.Description,
			e.Category,
			e.CreatedAt.Format("2006-01-02"),
		})
	}
}

// ExportXLSX writes all non-deleted expenses as a spreadsheet attachment.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	expenses, err := h.Store.ListActive()
	if err != nil {
		log.Printf("export xlsx: %v", err)
		util.Error(c, http.StatusInternalServerError, util.KindInternal, "something went wrong")
		return
	}

	f := excelize.NewFile()
	sheetName := "Expenses"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.KindInternal, "something went wrong")
		return
	}
	f.SetActiveSheet(index)

	for i, header := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for idx, e := range expenses {
		row := idx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), e.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), e.Amount)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), e.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), e.Category)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), e.CreatedAt.Format("2006-01-02"))
	}

	f.SetColWidth(sheetName, "A", "A", 38)
	f.SetColWidth(sheetName, "B", "B", 12)
	f.SetColWidth(sheetName, "C", "C", 30)
	f.SetColWidth(sheetName, "D", "D", 15)
	f.SetColWidth(sheetName, "E", "E", 12)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"expenses_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.KindInternal, "something went wrong")
	}
}
