package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nivaranatech/opsdesk-api/internal/application/service"
	"github.com/nivaranatech/opsdesk-api/internal/presentation/http/dto/request"
	"github.com/nivaranatech/opsdesk-api/internal/presentation/http/dto/response"
	"github.com/nivaranatech/opsdesk-api/pkg/apperror"
)

// HRHandler handles leave and holiday endpoints
type HRHandler struct {
	hrService *service.HRService
}

// NewHRHandler creates a new HR handler
func NewHRHandler(hrService *service.HRService) *HRHandler {
	return &HRHandler{hrService: hrService}
}

// ApplyLeave files a leave request for the caller, or for the named
// user when user_id is set
func (h *HRHandler) ApplyLeave(c *gin.Context) {
	var req request.ApplyLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		response.Error(c, err)
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		response.Error(c, err)
		return
	}

	userID := req.UserID
	if userID == 0 {
		userID = GetUserID(c)
	}

	leave, err := h.hrService.ApplyLeave(&service.ApplyLeaveInput{
		UserID:    userID,
		LeaveType: req.LeaveType,
		StartDate: start,
		EndDate:   end,
		HalfDay:   req.HalfDay,
		Reason:    req.Reason,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Leave request filed", leave)
}

// PreviewLeaveDays computes the working-day count for a range without
// filing anything
func (h *HRHandler) PreviewLeaveDays(c *gin.Context) {
	start, err := parseDate(c.Query("start_date"))
	if err != nil {
		response.Error(c, err)
		return
	}
	end, err := parseDate(c.Query("end_date"))
	if err != nil {
		response.Error(c, err)
		return
	}

	days, err := h.hrService.CalculateLeaveDays(start, end, true, c.Query("half_day") == "true")
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Leave days calculated", gin.H{"days": days})
}

// ListLeaves lists leave requests, filtered to one user when user_id is
// given
func (h *HRHandler) ListLeaves(c *gin.Context) {
	userID := 0
	if raw := c.Query("user_id"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, apperror.NewBadRequestError("Invalid user id"))
			return
		}
		userID = parsed
	}

	response.OK(c, "Leave requests retrieved", h.hrService.ListLeaves(userID))
}

// GetLeave returns one leave request
func (h *HRHandler) GetLeave(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	leave, err := h.hrService.GetLeave(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Leave request retrieved", leave)
}

// ApproveLeave records the caller's approval; an admin approval or a
// second approval finalizes the request and deducts the balance
func (h *HRHandler) ApproveLeave(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.LeaveDecisionRequest
	_ = c.ShouldBindJSON(&req)

	leave, err := h.hrService.ApproveLeave(id, GetUserEmail(c), GetUserRole(c), req.Comments)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Leave approval recorded", leave)
}

// RejectLeave rejects a pending leave request
func (h *HRHandler) RejectLeave(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.LeaveDecisionRequest
	_ = c.ShouldBindJSON(&req)

	leave, err := h.hrService.RejectLeave(id, GetUserEmail(c), GetUserRole(c), req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Leave request rejected", leave)
}

// SetLeaveBalance sets a user's allowance for one leave type
func (h *HRHandler) SetLeaveBalance(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		response.Error(c, apperror.NewBadRequestError("Invalid user id"))
		return
	}

	var req request.SetLeaveBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	user, err := h.hrService.SetLeaveBalance(userID, req.LeaveType, req.Days)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Leave balance updated", user)
}

// AddHoliday registers a company holiday
func (h *HRHandler) AddHoliday(c *gin.Context) {
	var req request.HolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	holiday, err := h.hrService.AddHoliday(req.Date, req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Holiday added", holiday)
}

// RemoveHoliday removes a company holiday
func (h *HRHandler) RemoveHoliday(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.hrService.RemoveHoliday(id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Holiday removed", nil)
}

// ListHolidays lists company holidays, sorted by date
func (h *HRHandler) ListHolidays(c *gin.Context) {
	response.OK(c, "Holidays retrieved", h.hrService.ListHolidays())
}
