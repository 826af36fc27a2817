package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/nivaranatech/opsdesk-api/internal/application/service"
	"github.com/nivaranatech/opsdesk-api/internal/domain/enum"
	"github.com/nivaranatech/opsdesk-api/internal/presentation/http/dto/request"
	"github.com/nivaranatech/opsdesk-api/internal/presentation/http/dto/response"
	"github.com/nivaranatech/opsdesk-api/pkg/pagination"
)

// WorkshopHandler handles service job and RMA endpoints
type WorkshopHandler struct {
	workshopService *service.WorkshopService
}

// NewWorkshopHandler creates a new workshop handler
func NewWorkshopHandler(workshopService *service.WorkshopService) *WorkshopHandler {
	return &WorkshopHandler{workshopService: workshopService}
}

// CreateJob opens a service job
func (h *WorkshopHandler) CreateJob(c *gin.Context) {
	var req request.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	job, err := h.workshopService.CreateJob(&service.CreateJobInput{
		Customer:     customerFromRequest(req.Customer),
		Device:       req.Device,
		SerialNumber: req.SerialNumber,
		Issue:        req.Issue,
		AssignedTo:   req.AssignedTo,
		Notes:        req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Job created", job)
}

// ListJobs lists service jobs with pagination
func (h *WorkshopHandler) ListJobs(c *gin.Context) {
	jobs := h.workshopService.ListJobs(includeInactive(c))
	result := pagination.Slice(jobs, pageParams(c))
	response.SuccessWithPagination(c, 200, "Jobs retrieved", result)
}

// GetJob returns one job by display id
func (h *WorkshopHandler) GetJob(c *gin.Context) {
	job, err := h.workshopService.GetJob(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Job retrieved", job)
}

// UpdateJobStatus moves a job's status, stamping completion and
// delivery dates the first time each is reached
func (h *WorkshopHandler) UpdateJobStatus(c *gin.Context) {
	var req request.UpdateJobStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	job, err := h.workshopService.UpdateJobStatus(c.Param("id"), enum.JobStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Job updated", job)
}

// DeleteJob deactivates a job
func (h *WorkshopHandler) DeleteJob(c *gin.Context) {
	if err := h.workshopService.DeleteJob(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Job deleted", nil)
}

// CreateRMA opens an RMA case in Inbox
func (h *WorkshopHandler) CreateRMA(c *gin.Context) {
	var req request.CreateRMARequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	rma, err := h.workshopService.CreateRMA(&service.CreateRMAInput{
		Customer:     customerFromRequest(req.Customer),
		Product:      req.Product,
		SerialNumber: req.SerialNumber,
		Reason:       req.Reason,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "RMA created", rma)
}

// ListRMAs lists RMA cases with pagination
func (h *WorkshopHandler) ListRMAs(c *gin.Context) {
	rmas := h.workshopService.ListRMAs()
	result := pagination.Slice(rmas, pageParams(c))
	response.SuccessWithPagination(c, 200, "RMAs retrieved", result)
}

// GetRMA returns one RMA case by display id
func (h *WorkshopHandler) GetRMA(c *gin.Context) {
	rma, err := h.workshopService.GetRMA(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "RMA retrieved", rma)
}

// AdvanceRMA moves an RMA one step along its lifecycle
func (h *WorkshopHandler) AdvanceRMA(c *gin.Context) {
	rma, err := h.workshopService.AdvanceRMA(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "RMA advanced", rma)
}

// UpdateRMAStatus moves an RMA to an explicit status; backwards moves
// are rejected
func (h *WorkshopHandler) UpdateRMAStatus(c *gin.Context) {
	var req request.UpdateRMAStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	rma, err := h.workshopService.UpdateRMAStatus(c.Param("id"), enum.RMAStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "RMA updated", rma)
}

// GenerateOTP issues a fresh delivery OTP for an RMA in Outbox
func (h *WorkshopHandler) GenerateOTP(c *gin.Context) {
	otp, err := h.workshopService.GenerateDeliveryOTP(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "OTP generated", gin.H{"otp": otp})
}

// VerifyOTP checks an entered OTP without moving the RMA
func (h *WorkshopHandler) VerifyOTP(c *gin.Context) {
	var req request.RMAOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	if err := h.workshopService.VerifyDeliveryOTP(c.Param("id"), req.OTP); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "OTP verified", nil)
}

// DeliverRMA verifies the OTP and marks the RMA delivered in one step
func (h *WorkshopHandler) DeliverRMA(c *gin.Context) {
	var req request.RMAOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	rma, err := h.workshopService.DeliverRMA(c.Param("id"), req.OTP)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "RMA delivered", rma)
}
