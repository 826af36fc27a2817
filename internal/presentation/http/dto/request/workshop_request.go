package request

// CreateJobRequest represents a service job creation request
type CreateJobRequest struct {
	Customer     CustomerInfoRequest `json:"customer" binding:"required"`
	Device       string              `json:"device"`
	SerialNumber string              `json:"serial_number"`
	Issue        string              `json:"issue" binding:"required"`
	AssignedTo   int                 `json:"assigned_to"`
	Notes        string              `json:"notes"`
}

// UpdateJobStatusRequest represents a job status update
type UpdateJobStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateRMARequest represents an RMA case creation request
type CreateRMARequest struct {
	Customer     CustomerInfoRequest `json:"customer" binding:"required"`
	Product      string              `json:"product" binding:"required"`
	SerialNumber string              `json:"serial_number"`
	Reason       string              `json:"reason"`
}

// UpdateRMAStatusRequest represents an explicit RMA status move
type UpdateRMAStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// RMAOTPRequest carries an entered delivery OTP
type RMAOTPRequest struct {
	OTP string `json:"otp" binding:"required,len=4"`
}

// ApplyLeaveRequest represents a leave application
type ApplyLeaveRequest struct {
	UserID    int    `json:"user_id"`
	LeaveType string `json:"leave_type" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	HalfDay   bool   `json:"half_day"`
	Reason    string `json:"reason"`
}

// LeaveDecisionRequest carries an approval or rejection comment
type LeaveDecisionRequest struct {
	Comments string `json:"comments"`
	Reason   string `json:"reason"`
}

// SetLeaveBalanceRequest sets a user's allowance for a leave type
type SetLeaveBalanceRequest struct {
	LeaveType string  `json:"leave_type" binding:"required"`
	Days      float64 `json:"days" binding:"min=0"`
}

// HolidayRequest represents a holiday creation request
type HolidayRequest struct {
	Date string `json:"date" binding:"required"`
	Name string `json:"name"`
}

// CreateUserRequest represents a staff pre-creation request
type CreateUserRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=255"`
	Email      string `json:"email" binding:"required,email"`
	Role       string `json:"role" binding:"required"`
	Department string `json:"department"`
	Phone      string `json:"phone"`
}

// UpdateUserRequest represents a user update request
type UpdateUserRequest struct {
	Name        *string   `json:"name" binding:"omitempty,min=2,max=255"`
	Role        *string   `json:"role"`
	Department  *string   `json:"department"`
	Phone       *string   `json:"phone"`
	Permissions *[]string `json:"permissions"`
}

// RoleRequest represents a role creation request
type RoleRequest struct {
	Name        string   `json:"name" binding:"required"`
	Permissions []string `json:"permissions"`
}

// RolePermissionsRequest replaces a role's permission set
type RolePermissionsRequest struct {
	Permissions []string `json:"permissions" binding:"required"`
}

// DepartmentRequest represents a department creation request
type DepartmentRequest struct {
	Name string `json:"name" binding:"required"`
}

// SettingRequest stores a value under a settings key
type SettingRequest struct {
	Value interface{} `json:"value" binding:"required"`
}
