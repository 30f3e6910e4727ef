package handler

import (
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jengwei/trip-report/internal/models"
	"github.com/jengwei/trip-report/internal/service"
	"github.com/jengwei/trip-report/pkg/response"
)

// DatasetHandler handles HTTP requests for datasets and their reports
type DatasetHandler struct {
	datasets *service.DatasetService
	reports  *service.ReportService
}

// NewDatasetHandler creates a new dataset handler
func NewDatasetHandler(datasets *service.DatasetService, reports *service.ReportService) *DatasetHandler {
	return &DatasetHandler{datasets: datasets, reports: reports}
}

// Upload handles POST /api/v1/datasets. Accepts a multipart "file" part or
// a raw delimited body; the first row is treated as the header either way.
func (h *DatasetHandler) Upload(c *gin.Context) {
	name := c.DefaultQuery("name", "dataset")

	body, closer, err := uploadBody(c)
	if err != nil {
		response.BadRequest(c, "Missing upload body", err)
		return
	}
	if closer != nil {
		defer closer.Close()
	}

	ds, err := h.datasets.CreateFromReader(name, body)
	if err != nil {
		response.InternalError(c, "Failed to store dataset", err)
		return
	}

	response.Success(c, ds)
}

func uploadBody(c *gin.Context) (io.Reader, multipart.File, error) {
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		fh, err := c.FormFile("file")
		if err != nil {
			return nil, nil, err
		}
		f, err := fh.Open()
		if err != nil {
			return nil, nil, err
		}
		return f, f, nil
	}
	return c.Request.Body, nil, nil
}

// List handles GET /api/v1/datasets
func (h *DatasetHandler) List(c *gin.Context) {
	var filter models.DatasetFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	datasets, total, err := h.datasets.List(filter)
	if err != nil {
		response.InternalError(c, "Failed to list datasets", err)
		return
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 100
	}
	totalPages := int(total) / filter.PageSize
	if int(total)%filter.PageSize > 0 {
		totalPages++
	}

	response.Success(c, models.DatasetsResponse{
		Data:       datasets,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	})
}

// Report handles GET /api/v1/datasets/:id/report
func (h *DatasetHandler) Report(c *gin.Context) {
	report, err := h.reports.Generate(c.Param("id"))
	if err != nil {
		response.InternalError(c, "Failed to generate report", err)
		return
	}
	if report == nil {
		response.NotFound(c, "Dataset not found")
		return
	}

	response.Success(c, report)
}

// Delete handles DELETE /api/v1/datasets/:id
func (h *DatasetHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	ds, err := h.datasets.GetByID(id)
	if err != nil {
		response.InternalError(c, "Failed to get dataset", err)
		return
	}
	if ds == nil {
		response.NotFound(c, "Dataset not found")
		return
	}

	if err := h.datasets.Delete(id); err != nil {
		response.InternalError(c, "Failed to delete dataset", err)
		return
	}

	c.Status(http.StatusNoContent)
}
