package handler

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nivaranatech/opsdesk-api/internal/application/service"
	"github.com/nivaranatech/opsdesk-api/internal/presentation/http/dto/request"
	"github.com/nivaranatech/opsdesk-api/internal/presentation/http/dto/response"
	"github.com/nivaranatech/opsdesk-api/internal/store"
	"github.com/nivaranatech/opsdesk-api/pkg/apperror"
	"github.com/nivaranatech/opsdesk-api/pkg/export"
	"github.com/nivaranatech/opsdesk-api/pkg/pagination"
)

// InventoryHandler handles item, addon and combination endpoints
type InventoryHandler struct {
	inventoryService *service.InventoryService
	exportService    *service.ExportService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService *service.InventoryService, exportService *service.ExportService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService, exportService: exportService}
}

// CreateItem creates an inventory item
func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var req request.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	item, err := h.inventoryService.CreateItem(&service.CreateItemInput{
		PartID:        req.PartID,
		SKU:           req.SKU,
		Name:          req.Name,
		Category:      req.Category,
		Brand:         req.Brand,
		Unit:          req.Unit,
		PurchasePrice: req.PurchasePrice,
		SellingPrice:  req.SellingPrice,
		StockQty:      req.StockQty,
		ReorderLevel:  req.ReorderLevel,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Item created", item)
}

// ListItems lists inventory items with pagination
func (h *InventoryHandler) ListItems(c *gin.Context) {
	items := h.inventoryService.ListItems(includeInactive(c))
	result := pagination.Slice(items, pageParams(c))
	response.SuccessWithPagination(c, 200, "Items retrieved", result)
}

// GetItem returns one item by id
func (h *InventoryHandler) GetItem(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	item, err := h.inventoryService.GetItem(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item retrieved", item)
}

// UpdateItem applies a partial update, recording an audit entry per
// changed field with the caller as actor
func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	item, err := h.inventoryService.UpdateItem(id, store.ItemPatch{
		PartID:        req.PartID,
		SKU:           req.SKU,
		Name:          req.Name,
		Category:      req.Category,
		Brand:         req.Brand,
		Unit:          req.Unit,
		PurchasePrice: req.PurchasePrice,
		SellingPrice:  req.SellingPrice,
		StockQty:      req.StockQty,
		ReorderLevel:  req.ReorderLevel,
	}, GetUserEmail(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item updated", item)
}

// DeleteItem deactivates an item; its ledger history survives
func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.inventoryService.DeleteItem(id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item deleted", nil)
}

// ExportItems streams the item catalogue as csv, json or xlsx
func (h *InventoryHandler) ExportItems(c *gin.Context) {
	format := export.Format(c.DefaultQuery("format", "csv"))
	if !format.Valid() {
		response.Error(c, apperror.NewBadRequestError("Format must be csv, json or xlsx"))
		return
	}

	filename := fmt.Sprintf("items-%s.%s", time.Now().Format("2006-01-02"), format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", format.ContentType())

	if err := h.exportService.ExportItems(c.Writer, format, includeInactive(c)); err != nil {
		response.Error(c, err)
	}
}

// ExportCollection streams any named collection as a download
func (h *InventoryHandler) ExportCollection(c *gin.Context) {
	format := export.Format(c.DefaultQuery("format", "json"))
	if !format.Valid() {
		response.Error(c, apperror.NewBadRequestError("Format must be csv, json or xlsx"))
		return
	}

	collection := c.Param("collection")
	filename := fmt.Sprintf("%s-%s.%s", collection, time.Now().Format("2006-01-02"), format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", format.ContentType())

	if err := h.exportService.ExportCollection(c.Writer, collection, format); err != nil {
		response.Error(c, err)
	}
}

// ImportItems ingests an uploaded csv or xlsx catalogue, reporting
// per-row failures
func (h *InventoryHandler) ImportItems(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		response.Error(c, apperror.NewBadRequestError("A file upload is required"))
		return
	}
	defer file.Close()

	format := export.FormatCSV
	if len(header.Filename) > 5 && header.Filename[len(header.Filename)-5:] == ".xlsx" {
		format = export.FormatXLSX
	}

	result, err := h.exportService.ImportItems(file, format)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Import finished", result)
}

// CreateAddon creates a service addon
func (h *InventoryHandler) CreateAddon(c *gin.Context) {
	var req request.AddonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	addon, err := h.inventoryService.CreateAddon(req.Name, req.Unit, req.Price, req.GST)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Addon created", addon)
}

// UpdateAddon updates a service addon
func (h *InventoryHandler) UpdateAddon(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.AddonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	addon, err := h.inventoryService.UpdateAddon(id, req.Name, req.Unit, req.Price, req.GST)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Addon updated", addon)
}

// DeleteAddon deactivates a service addon
func (h *InventoryHandler) DeleteAddon(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.inventoryService.DeleteAddon(id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Addon deleted", nil)
}

// ListAddons lists service addons
func (h *InventoryHandler) ListAddons(c *gin.Context) {
	response.OK(c, "Addons retrieved", h.inventoryService.ListAddons(includeInactive(c)))
}

// CreateCombination bundles existing items into a named combination
func (h *InventoryHandler) CreateCombination(c *gin.Context) {
	var req request.CreateCombinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	combo, err := h.inventoryService.CreateCombination(req.Name, req.Parts)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Combination created", combo)
}

// DeleteCombination deactivates a combination
func (h *InventoryHandler) DeleteCombination(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.inventoryService.DeleteCombination(id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Combination deleted", nil)
}

// ListCombinations lists item combinations
func (h *InventoryHandler) ListCombinations(c *gin.Context) {
	response.OK(c, "Combinations retrieved", h.inventoryService.ListCombinations(includeInactive(c)))
}
