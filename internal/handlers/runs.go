package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/kubev2v/forkpool/api/v1"
	"github.com/kubev2v/forkpool/internal/models"
	"github.com/kubev2v/forkpool/internal/services"
	"github.com/kubev2v/forkpool/internal/util"
	srvErrors "github.com/kubev2v/forkpool/pkg/errors"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// GetPool returns the scheduler snapshot and the bench service status
// (GET /pool)
func (h *Handler) GetPool(c *gin.Context) {
	c.JSON(http.StatusOK, v1.NewPoolStatus(h.pool.Stats(), h.benchSrv.Status()))
}

// ListRuns returns recorded runs, newest first, with pagination
// (GET /runs)
func (h *Handler) ListRuns(c *gin.Context, params v1.ListRunsParams) {
	// Parse pagination
	page := 1
	if params.Page != nil && *params.Page > 0 {
		page = *params.Page
	}
	pageSize := defaultPageSize
	if params.PageSize != nil && *params.PageSize > 0 {
		pageSize = *params.PageSize
		if pageSize > maxPageSize {
			pageSize = maxPageSize
		}
	}

	svcParams := services.RunListParams{
		Limit:  uint64(pageSize),
		Offset: uint64((page - 1) * pageSize),
	}
	for _, w := range params.Workload {
		workload, err := models.ParseWorkload(w)
		if err != nil {
			c.JSON(http.StatusBadRequest, v1.Error{Error: err.Error()})
			return
		}
		svcParams.Workloads = append(svcParams.Workloads, workload)
	}

	result, err := h.benchSrv.List(c.Request.Context(), svcParams)
	if err != nil {
		zap.S().Named("run_handler").Errorw("failed to list runs", "error", err)
		c.JSON(http.StatusInternalServerError, v1.Error{Error: "failed to list runs"})
		return
	}

	runs := make([]v1.Run, 0, len(result.Runs))
	for _, r := range result.Runs {
		runs = append(runs, v1.NewRunFromModel(r))
	}

	c.JSON(http.StatusOK, v1.RunListResponse{
		Page:      page,
		PageCount: util.PageCount(result.Total, pageSize),
		Total:     result.Total,
		Runs:      runs,
	})
}

// GetRun returns a single recorded run
// (GET /runs/{id})
func (h *Handler) GetRun(c *gin.Context, id string) {
	run, err := h.benchSrv.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, v1.NewRunFromModel(*run))
}

// StartRun executes a workload. With ?async=true it returns 202 and the
// bench status right away; otherwise it answers with the finished run.
// (POST /runs)
func (h *Handler) StartRun(c *gin.Context) {
	var req v1.StartRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, v1.Error{Error: "invalid request body: " + err.Error()})
		return
	}

	params, err := req.ToRunParams(h.defaultTimeout)
	if err != nil {
		h.writeError(c, err)
		return
	}

	if c.Query("async") == "true" {
		if _, err := h.benchSrv.Start(c.Request.Context(), params); err != nil {
			h.writeError(c, err)
			return
		}
		c.JSON(http.StatusAccepted, v1.NewBenchStatus(h.benchSrv.Status()))
		return
	}

	run, err := h.benchSrv.Run(c.Request.Context(), params)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, v1.NewRunFromModel(*run))
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case srvErrors.IsInvalidArgumentError(err):
		c.JSON(http.StatusBadRequest, v1.Error{Error: err.Error()})
	case srvErrors.IsResourceNotFoundError(err):
		c.JSON(http.StatusNotFound, v1.Error{Error: err.Error()})
	case srvErrors.IsRunInProgressError(err):
		c.JSON(http.StatusConflict, v1.Error{Error: err.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusGatewayTimeout, v1.Error{Error: err.Error()})
	default:
		zap.S().Named("run_handler").Errorw("request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, v1.Error{Error: "internal error"})
	}
}
