package request

// CreateItemRequest represents an item creation request
type CreateItemRequest struct {
	PartID        string  `json:"part_id"`
	SKU           string  `json:"sku"`
	Name          string  `json:"name" binding:"required,min=2,max=255"`
	Category      string  `json:"category" binding:"required"`
	Brand         string  `json:"brand"`
	Unit          string  `json:"unit"`
	PurchasePrice float64 `json:"purchase_price" binding:"min=0"`
	SellingPrice  float64 `json:"selling_price" binding:"min=0"`
	StockQty      int     `json:"stock_qty" binding:"min=0"`
	ReorderLevel  int     `json:"reorder_level" binding:"min=0"`
}

// UpdateItemRequest represents an item update request
type UpdateItemRequest struct {
	PartID        *string  `json:"part_id"`
	SKU           *string  `json:"sku"`
	Name          *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Category      *string  `json:"category"`
	Brand         *string  `json:"brand"`
	Unit          *string  `json:"unit"`
	PurchasePrice *float64 `json:"purchase_price" binding:"omitempty,min=0"`
	SellingPrice  *float64 `json:"selling_price" binding:"omitempty,min=0"`
	StockQty      *int     `json:"stock_qty" binding:"omitempty,min=0"`
	ReorderLevel  *int     `json:"reorder_level" binding:"omitempty,min=0"`
}

// AddonRequest represents an addon create/update request
type AddonRequest struct {
	Name  string  `json:"name" binding:"required"`
	Unit  string  `json:"unit"`
	Price float64 `json:"price" binding:"min=0"`
	GST   float64 `json:"gst" binding:"min=0,max=100"`
}

// CreateCombinationRequest represents a combination creation request
type CreateCombinationRequest struct {
	Name  string `json:"name" binding:"required"`
	Parts []int  `json:"parts" binding:"required"`
}

// IssueStockRequest represents a stock issue request
type IssueStockRequest struct {
	ItemID        int      `json:"item_id" binding:"required"`
	UserID        int      `json:"user_id" binding:"required"`
	Quantity      int      `json:"quantity" binding:"required,min=1"`
	SerialNumbers []string `json:"serial_numbers"`
	BatchNumber   string   `json:"batch_number"`
	JobID         string   `json:"job_id"`
	Notes         string   `json:"notes"`
}

// ReturnStockRequest represents a stock return request
type ReturnStockRequest struct {
	ItemID        int      `json:"item_id" binding:"required"`
	UserID        int      `json:"user_id" binding:"required"`
	Quantity      int      `json:"quantity" binding:"required,min=1"`
	SerialNumbers []string `json:"serial_numbers"`
	Condition     string   `json:"condition"`
	Notes         string   `json:"notes"`
}
