package request

// CustomerInfoRequest carries customer contact fields on create requests
type CustomerInfoRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email" binding:"omitempty,email"`
	Address string `json:"address"`
}

// LineItemRequest represents one line of an estimate or order
type LineItemRequest struct {
	ItemID      int     `json:"item_id"`
	AddonID     int     `json:"addon_id"`
	Description string  `json:"description" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required,min=1"`
	UnitPrice   float64 `json:"unit_price" binding:"min=0"`
	GST         float64 `json:"gst" binding:"min=0,max=100"`
}

// CreateEstimateRequest represents an estimate creation request
type CreateEstimateRequest struct {
	Customer CustomerInfoRequest `json:"customer" binding:"required"`
	Items    []LineItemRequest   `json:"items" binding:"required,min=1,dive"`
	Notes    string              `json:"notes"`
}

// UpdateEstimateRequest represents an estimate update request
type UpdateEstimateRequest struct {
	Customer  *CustomerInfoRequest `json:"customer"`
	Items     *[]LineItemRequest   `json:"items" binding:"omitempty,min=1,dive"`
	Subtotal  *float64             `json:"subtotal" binding:"omitempty,min=0"`
	TaxAmount *float64             `json:"tax_amount" binding:"omitempty,min=0"`
	Total     *float64             `json:"total" binding:"omitempty,min=0"`
	Status    *string              `json:"status"`
	Notes     *string              `json:"notes"`
}

// CreateOrderRequest represents a direct order creation request
type CreateOrderRequest struct {
	Customer CustomerInfoRequest `json:"customer" binding:"required"`
	Items    []LineItemRequest   `json:"items" binding:"required,min=1,dive"`
	Total    float64             `json:"total" binding:"min=0"`
}

// UpdateOrderStatusRequest represents an order status update
type UpdateOrderStatusRequest struct {
	Status        string  `json:"status" binding:"required"`
	PaymentStatus *string `json:"payment_status"`
}

// CreateAMCRequest represents a contract creation request
type CreateAMCRequest struct {
	Customer     CustomerInfoRequest `json:"customer"`
	DeviceSerial string              `json:"device_serial" binding:"required"`
	DeviceModel  string              `json:"device_model"`
	StartDate    string              `json:"start_date" binding:"required"`
	EndDate      string              `json:"end_date" binding:"required"`
	Amount       float64             `json:"amount" binding:"min=0"`
}

// RenewAMCRequest represents a contract renewal request
type RenewAMCRequest struct {
	NewEndDate string   `json:"new_end_date" binding:"required"`
	NewAmount  *float64 `json:"new_amount" binding:"omitempty,min=0"`
}

// ServiceRecordRequest represents a service visit log request
type ServiceRecordRequest struct {
	Date        string `json:"date"`
	Description string `json:"description" binding:"required"`
	Technician  string `json:"technician"`
}
