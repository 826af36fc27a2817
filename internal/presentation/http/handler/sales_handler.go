package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/nivaranatech/opsdesk-api/internal/application/service"
	"github.com/nivaranatech/opsdesk-api/internal/domain/entity"
	"github.com/nivaranatech/opsdesk-api/internal/domain/enum"
	"github.com/nivaranatech/opsdesk-api/internal/presentation/http/dto/request"
	"github.com/nivaranatech/opsdesk-api/internal/presentation/http/dto/response"
	"github.com/nivaranatech/opsdesk-api/internal/store"
	"github.com/nivaranatech/opsdesk-api/pkg/pagination"
)

// SalesHandler handles estimate and order endpoints
type SalesHandler struct {
	salesService *service.SalesService
}

// NewSalesHandler creates a new sales handler
func NewSalesHandler(salesService *service.SalesService) *SalesHandler {
	return &SalesHandler{salesService: salesService}
}

func customerFromRequest(req request.CustomerInfoRequest) entity.CustomerInfo {
	return entity.CustomerInfo{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	}
}

func lineItemsFromRequest(reqs []request.LineItemRequest) []entity.LineItem {
	items := make([]entity.LineItem, len(reqs))
	for i, r := range reqs {
		items[i] = entity.LineItem{
			ItemID:      r.ItemID,
			AddonID:     r.AddonID,
			Description: r.Description,
			Quantity:    r.Quantity,
			UnitPrice:   r.UnitPrice,
			GST:         r.GST,
		}
	}
	return items
}

// CreateEstimate creates a draft estimate with computed totals
func (h *SalesHandler) CreateEstimate(c *gin.Context) {
	var req request.CreateEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	estimate, err := h.salesService.CreateEstimate(&service.CreateEstimateInput{
		Customer: customerFromRequest(req.Customer),
		Items:    lineItemsFromRequest(req.Items),
		Notes:    req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Estimate created", estimate)
}

// ListEstimates lists estimates with pagination
func (h *SalesHandler) ListEstimates(c *gin.Context) {
	estimates := h.salesService.ListEstimates(includeInactive(c))
	result := pagination.Slice(estimates, pageParams(c))
	response.SuccessWithPagination(c, 200, "Estimates retrieved", result)
}

// GetEstimate returns one estimate by display id
func (h *SalesHandler) GetEstimate(c *gin.Context) {
	estimate, err := h.salesService.GetEstimate(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Estimate retrieved", estimate)
}

// UpdateEstimate applies a partial update, bumping the version
func (h *SalesHandler) UpdateEstimate(c *gin.Context) {
	var req request.UpdateEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	patch := store.EstimatePatch{
		Subtotal:  req.Subtotal,
		TaxAmount: req.TaxAmount,
		Total:     req.Total,
		Notes:     req.Notes,
	}
	if req.Customer != nil {
		customer := customerFromRequest(*req.Customer)
		patch.Customer = &customer
	}
	if req.Items != nil {
		items := lineItemsFromRequest(*req.Items)
		patch.Items = &items
	}
	if req.Status != nil {
		status := enum.EstimateStatus(*req.Status)
		patch.Status = &status
	}

	estimate, err := h.salesService.UpdateEstimate(c.Param("id"), patch)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Estimate updated", estimate)
}

// DeleteEstimate deactivates an estimate
func (h *SalesHandler) DeleteEstimate(c *gin.Context) {
	if err := h.salesService.DeleteEstimate(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Estimate deleted", nil)
}

// ConvertEstimate converts an approved-for-sale estimate into an order
func (h *SalesHandler) ConvertEstimate(c *gin.Context) {
	order, err := h.salesService.ConvertEstimateToOrder(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Estimate converted to order", order)
}

// CreateOrder creates an order directly, bypassing the estimate stage
func (h *SalesHandler) CreateOrder(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	order, err := h.salesService.CreateOrder(
		customerFromRequest(req.Customer),
		lineItemsFromRequest(req.Items),
		req.Total,
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created", order)
}

// ListOrders lists orders with pagination
func (h *SalesHandler) ListOrders(c *gin.Context) {
	orders := h.salesService.ListOrders(includeInactive(c))
	result := pagination.Slice(orders, pageParams(c))
	response.SuccessWithPagination(c, 200, "Orders retrieved", result)
}

// GetOrder returns one order by display id
func (h *SalesHandler) GetOrder(c *gin.Context) {
	order, err := h.salesService.GetOrder(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order retrieved", order)
}

// UpdateOrderStatus moves an order's status and optionally its payment
// status
func (h *SalesHandler) UpdateOrderStatus(c *gin.Context) {
	var req request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	var paymentStatus *enum.PaymentStatus
	if req.PaymentStatus != nil {
		ps := enum.PaymentStatus(*req.PaymentStatus)
		paymentStatus = &ps
	}

	order, err := h.salesService.UpdateOrderStatus(c.Param("id"), enum.OrderStatus(req.Status), paymentStatus)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order updated", order)
}

// DeleteOrder deactivates an order
func (h *SalesHandler) DeleteOrder(c *gin.Context) {
	if err := h.salesService.DeleteOrder(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order deleted", nil)
}
