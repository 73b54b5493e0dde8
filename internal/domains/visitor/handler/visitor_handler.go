package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"parking-backend/internal/domains/visitor/model"
	"parking-backend/internal/domains/visitor/service"
	"parking-backend/internal/shared/response"
)

type VisitorHandler struct {
	service service.ServiceInterface
}

func NewVisitorHandler(svc service.ServiceInterface) *VisitorHandler {
	return &VisitorHandler{
		service: svc,
	}
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /v1/visitors
// ════════════════════════════════════════════════════════════════

func (h *VisitorHandler) Register(c *gin.Context) {
	var req model.RegisterVisitorRequest

	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request", err)
		return
	}

	visitor, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, model.RegisterVisitorResponse{
		VisitorID: visitor.ID,
		Detail:    "Visitor created successfully",
	})
}

// ════════════════════════════════════════════════════════════════
// READ: GetAll - GET /v1/visitors?search=&status=&unit=&limit=&offset=
// ════════════════════════════════════════════════════════════════

func (h *VisitorHandler) GetAll(c *gin.Context) {
	filter := model.VisitorFilter{
		Search: c.Query("search"),
		Status: c.Query("status"),
		Unit:   c.Query("unit"),
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil {
			filter.Limit = l
		}
	}
	if offsetStr := c.Query("offset"); offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil {
			filter.Offset = o
		}
	}

	visitors, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, model.ToResponseList(visitors), &response.Meta{
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}

// ════════════════════════════════════════════════════════════════
// READ: GetByID - GET /v1/visitors/:id
// ════════════════════════════════════════════════════════════════

func (h *VisitorHandler) GetByID(c *gin.Context) {
	visitor, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, visitor.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /v1/visitors/:id - full-detail edit
// ════════════════════════════════════════════════════════════════

func (h *VisitorHandler) Update(c *gin.Context) {
	var req model.UpdateVisitorRequest

	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request", err)
		return
	}

	visitor, err := h.service.Edit(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, visitor.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PATCH /v1/visitors/:id/status
// ════════════════════════════════════════════════════════════════

func (h *VisitorHandler) UpdateStatus(c *gin.Context) {
	var req model.UpdateStatusRequest

	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request", err)
		return
	}

	changed, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	status, _ := model.ParseStatus(req.Status)
	response.Success(c, http.StatusOK, model.UpdateStatusResponse{
		Changed: changed,
		Status:  status,
	})
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /v1/visitors/:id
// ════════════════════════════════════════════════════════════════

func (h *VisitorHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, model.ErrVisitorNotFound) {
			response.NotFound(c, err.Error())
		} else {
			response.InternalServerError(c, err.Error())
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// ════════════════════════════════════════════════════════════════
// READ: Stats - GET /v1/visitors/stats
// ════════════════════════════════════════════════════════════════

func (h *VisitorHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, stats)
}

// ════════════════════════════════════════════════════════════════
// READ: Export - GET /v1/visitors/export (xlsx download)
// ════════════════════════════════════════════════════════════════

func (h *VisitorHandler) Export(c *gin.Context) {
	data, err := h.service.ExportXLSX(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	filename := fmt.Sprintf("visitors_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
