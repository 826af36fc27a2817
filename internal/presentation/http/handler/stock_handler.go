package handler

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nivaranatech/opsdesk-api/internal/application/service"
	"github.com/nivaranatech/opsdesk-api/internal/domain/enum"
	"github.com/nivaranatech/opsdesk-api/internal/presentation/http/dto/request"
	"github.com/nivaranatech/opsdesk-api/internal/presentation/http/dto/response"
	"github.com/nivaranatech/opsdesk-api/internal/store"
	"github.com/nivaranatech/opsdesk-api/pkg/apperror"
	"github.com/nivaranatech/opsdesk-api/pkg/export"
	"github.com/nivaranatech/opsdesk-api/pkg/pagination"
)

// StockHandler handles stock movement and reporting endpoints
type StockHandler struct {
	stockService  *service.StockService
	exportService *service.ExportService
}

// NewStockHandler creates a new stock handler
func NewStockHandler(stockService *service.StockService, exportService *service.ExportService) *StockHandler {
	return &StockHandler{stockService: stockService, exportService: exportService}
}

// IssueStock issues units of an item to a user
func (h *StockHandler) IssueStock(c *gin.Context) {
	var req request.IssueStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	txn, err := h.stockService.IssueStock(store.IssueStockInput{
		ItemID:        req.ItemID,
		UserID:        req.UserID,
		Quantity:      req.Quantity,
		SerialNumbers: req.SerialNumbers,
		BatchNumber:   req.BatchNumber,
		JobID:         req.JobID,
		Notes:         req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Stock issued", txn)
}

// ReturnStock returns previously issued units from a user
func (h *StockHandler) ReturnStock(c *gin.Context) {
	var req request.ReturnStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	txn, err := h.stockService.ReturnStock(store.ReturnStockInput{
		ItemID:        req.ItemID,
		UserID:        req.UserID,
		Quantity:      req.Quantity,
		SerialNumbers: req.SerialNumbers,
		Condition:     req.Condition,
		Notes:         req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Stock returned", txn)
}

// AvailableStock reports how many units of an item are on the shelf
func (h *StockHandler) AvailableStock(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Available stock retrieved", gin.H{
		"item_id":   id,
		"available": h.stockService.AvailableStock(id),
	})
}

// UserStock lists what a user currently holds, per item with serials
func (h *StockHandler) UserStock(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		response.Error(c, apperror.NewBadRequestError("Invalid user id"))
		return
	}

	response.OK(c, "User stock retrieved", h.stockService.UserStock(userID))
}

// MyStock lists the caller's own holdings
func (h *StockHandler) MyStock(c *gin.Context) {
	response.OK(c, "User stock retrieved", h.stockService.UserStock(GetUserID(c)))
}

// LowStockItems lists active items at or below their reorder level
func (h *StockHandler) LowStockItems(c *gin.Context) {
	response.OK(c, "Low stock items retrieved", h.stockService.LowStockItems())
}

// Valuation reports stock value at purchase price
func (h *StockHandler) Valuation(c *gin.Context) {
	method := enum.ValuationMethod(c.DefaultQuery("method", string(enum.ValuationFIFO)))
	report, err := h.stockService.Valuation(method)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Valuation retrieved", report)
}

// SummaryByCategory aggregates stock counts and value per category
func (h *StockHandler) SummaryByCategory(c *gin.Context) {
	response.OK(c, "Category summary retrieved", h.stockService.SummaryByCategory())
}

// ListTransactions lists the stock ledger newest first, paginated
func (h *StockHandler) ListTransactions(c *gin.Context) {
	txns := h.stockService.ListTransactions()
	result := pagination.Slice(txns, pageParams(c))
	response.SuccessWithPagination(c, 200, "Transactions retrieved", result)
}

// ExportTransactions streams the ledger as csv, json or xlsx
func (h *StockHandler) ExportTransactions(c *gin.Context) {
	format := export.Format(c.DefaultQuery("format", "csv"))
	if !format.Valid() {
		response.Error(c, apperror.NewBadRequestError("Format must be csv, json or xlsx"))
		return
	}

	filename := fmt.Sprintf("stock-ledger-%s.%s", time.Now().Format("2006-01-02"), format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", format.ContentType())

	if err := h.exportService.ExportTransactions(c.Writer, format); err != nil {
		response.Error(c, err)
	}
}
