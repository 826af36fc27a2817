package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nivaranatech/opsdesk-api/internal/application/service"
	"github.com/nivaranatech/opsdesk-api/internal/domain/entity"
	"github.com/nivaranatech/opsdesk-api/internal/presentation/http/dto/request"
	"github.com/nivaranatech/opsdesk-api/internal/presentation/http/dto/response"
	"github.com/nivaranatech/opsdesk-api/pkg/apperror"
	"github.com/nivaranatech/opsdesk-api/pkg/pagination"
)

// AMCHandler handles maintenance contract endpoints
type AMCHandler struct {
	amcService *service.AMCService
}

// NewAMCHandler creates a new AMC handler
func NewAMCHandler(amcService *service.AMCService) *AMCHandler {
	return &AMCHandler{amcService: amcService}
}

func amcInputFromRequest(req *request.CreateAMCRequest) (*service.CreateAMCInput, error) {
	start, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return nil, err
	}
	return &service.CreateAMCInput{
		Customer:     customerFromRequest(req.Customer),
		DeviceSerial: req.DeviceSerial,
		DeviceModel:  req.DeviceModel,
		StartDate:    start,
		EndDate:      end,
		Amount:       req.Amount,
	}, nil
}

// CreateAMC creates a maintenance contract
func (h *AMCHandler) CreateAMC(c *gin.Context) {
	var req request.CreateAMCRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	input, err := amcInputFromRequest(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	contract, err := h.amcService.CreateAMC(input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Contract created", contract)
}

// ConvertOrder creates a contract from a completed order, carrying the
// customer over
func (h *AMCHandler) ConvertOrder(c *gin.Context) {
	var req request.CreateAMCRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	input, err := amcInputFromRequest(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	contract, err := h.amcService.ConvertOrderToAMC(c.Param("id"), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order converted to contract", contract)
}

// ListAMCs lists contracts with pagination
func (h *AMCHandler) ListAMCs(c *gin.Context) {
	contracts := h.amcService.ListAMCs()
	result := pagination.Slice(contracts, pageParams(c))
	response.SuccessWithPagination(c, 200, "Contracts retrieved", result)
}

// GetAMC returns one contract by display id
func (h *AMCHandler) GetAMC(c *gin.Context) {
	contract, err := h.amcService.GetAMC(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Contract retrieved", contract)
}

// LookupByQRCode resolves a device QR code to its contract
func (h *AMCHandler) LookupByQRCode(c *gin.Context) {
	contract, err := h.amcService.LookupByQRCode(c.Param("code"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Contract retrieved", contract)
}

// RenewAMC extends a contract; the old end date becomes the new start
func (h *AMCHandler) RenewAMC(c *gin.Context) {
	var req request.RenewAMCRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	endDate, err := parseDate(req.NewEndDate)
	if err != nil {
		response.Error(c, err)
		return
	}

	contract, err := h.amcService.RenewAMC(c.Param("id"), endDate, req.NewAmount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Contract renewed", contract)
}

// UpcomingRenewals lists active contracts expiring within the window
func (h *AMCHandler) UpcomingRenewals(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil || days < 0 {
		response.Error(c, apperror.NewBadRequestError("days must be a non-negative number"))
		return
	}

	response.OK(c, "Upcoming renewals retrieved", h.amcService.UpcomingRenewals(days))
}

// AddServiceRecord logs a service visit against a contract
func (h *AMCHandler) AddServiceRecord(c *gin.Context) {
	var req request.ServiceRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	record := entity.ServiceRecord{
		Description: req.Description,
		Technician:  req.Technician,
	}
	if req.Date != "" {
		date, err := parseDate(req.Date)
		if err != nil {
			response.Error(c, err)
			return
		}
		record.Date = date
	}

	contract, err := h.amcService.AddServiceRecord(c.Param("id"), record)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Service record added", contract)
}

// MarkReminderSent flags one renewal reminder as dispatched
func (h *AMCHandler) MarkReminderSent(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.Error(c, apperror.NewBadRequestError("Invalid reminder index"))
		return
	}

	contract, err := h.amcService.MarkReminderSent(c.Param("id"), index)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Reminder marked sent", contract)
}
