package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/nivaranatech/opsdesk-api/internal/application/service"
	"github.com/nivaranatech/opsdesk-api/internal/presentation/http/dto/response"
)

// DashboardHandler serves the aggregate dashboard endpoint
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Summary returns counts and totals across all collections
func (h *DashboardHandler) Summary(c *gin.Context) {
	response.OK(c, "Dashboard retrieved", h.dashboardService.Summary())
}
