package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/elmcrest/compass-service/internal/services"
	"github.com/elmcrest/compass-service/internal/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type DashboardHandler struct {
	BaseHandler
	dashboardService services.DashboardService
}

func NewDashboardHandler(
	dashboardService services.DashboardService,
	logger utils.Logger,
) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler:      NewBaseHandler(logger),
		dashboardService: dashboardService,
	}
}

// GetOverview returns aggregate stats plus the most recent submissions
// @Summary Dashboard overview
// @Description Returns submission counters, trait distributions and recent rows
// @Tags dashboard
// @Produce json
// @Param role query string false "Filter to a single role"
// @Success 200 {object} services.DashboardResponse
// @Failure 502 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /dashboard [get]
func (h *DashboardHandler) GetOverview(c *gin.Context) {
	overview, err := h.dashboardService.Overview(c.Request.Context(), c.Query("role"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}

// ListSubmissions returns the full parsed submission log
// @Summary List submissions
// @Description Returns every submission row, most recent first
// @Tags dashboard
// @Produce json
// @Param role query string false "Filter to a single role"
// @Success 200 {object} SuccessResponse{data=[]models.SubmissionRow}
// @Failure 502 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /dashboard/submissions [get]
func (h *DashboardHandler) ListSubmissions(c *gin.Context) {
	rows, err := h.dashboardService.Submissions(c.Request.Context(), c.Query("role"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "Submissions retrieved successfully",
		Data:    rows,
	})
}

// ExportSubmissions streams the submission log as a spreadsheet
// @Summary Export submissions
// @Description Renders the filtered submission log as an xlsx download
// @Tags dashboard
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param role query string false "Filter to a single role"
// @Success 200 {file} binary
// @Failure 502 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /dashboard/export [get]
func (h *DashboardHandler) ExportSubmissions(c *gin.Context) {
	h.LogRequest(c, "Exporting submissions", "role", c.Query("role"))

	data, err := h.dashboardService.ExportXLSX(c.Request.Context(), c.Query("role"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("compass-submissions-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}

func (h *DashboardHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case services.IsListingRejected(err):
		c.JSON(http.StatusBadGateway, ErrorResponse{
			Message: "Response storage rejected the request",
			Details: err.Error(),
		})
	case services.IsStorageUnavailable(err):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Message: "Response storage is unavailable",
			Details: err.Error(),
		})
	default:
		h.LogError(c, err, "Unhandled service error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Internal server error",
		})
	}
}
