package server

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	operationdomain "github.com/warebilllabs/warebill/internal/operation/domain"
	"github.com/warebilllabs/warebill/pkg/db/pagination"
)

// @Summary      Record Operation
// @Description  Record one inbound or outbound warehouse event
// @Tags         operations
// @Accept       json
// @Produce      json
// @Param        request body operationdomain.CreateRequest true "Record Operation Request"
// @Success      200  {object}  DataResponse
// @Router       /operations [post]
func (s *Server) CreateOperation(c *gin.Context) {
	var req operationdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.operationSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, resp)
}

// @Summary      List Operations
// @Tags         operations
// @Produce      json
// @Param        customer_id  query  string  false  "Customer ID"
// @Param        type         query  string  false  "INBOUND or OUTBOUND"
// @Param        from         query  string  false  "Operated from (RFC3339, inclusive)"
// @Param        to           query  string  false  "Operated to (RFC3339, exclusive)"
// @Param        page_token   query  string  false  "Page Token"
// @Param        page_size    query  int     false  "Page Size"
// @Success      200  {object}  ListResponse
// @Router       /operations [get]
func (s *Server) ListOperations(c *gin.Context) {
	var query struct {
		pagination.Pagination
		CustomerID string `form:"customer_id"`
		Type       string `form:"type"`
		From       string `form:"from"`
		To         string `form:"to"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	req := operationdomain.ListRequest{
		CustomerID: strings.TrimSpace(query.CustomerID),
		Type:       strings.TrimSpace(query.Type),
		PageToken:  query.PageToken,
		PageSize:   query.PageSize,
	}
	if raw := strings.TrimSpace(query.From); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			AbortWithError(c, newValidationError("from", "invalid_time", "from must be RFC3339"))
			return
		}
		req.From = &parsed
	}
	if raw := strings.TrimSpace(query.To); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			AbortWithError(c, newValidationError("to", "invalid_time", "to must be RFC3339"))
			return
		}
		req.To = &parsed
	}

	logs, pageInfo, err := s.operationSvc.List(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondList(c, logs, pageInfo)
}

// @Summary      Get Operation
// @Tags         operations
// @Produce      json
// @Param        id   path      string  true  "Operation ID"
// @Success      200  {object}  DataResponse
// @Router       /operations/{id} [get]
func (s *Server) GetOperationByID(c *gin.Context) {
	resp, err := s.operationSvc.Get(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, resp)
}

// @Summary      Delete Operation
// @Description  Remove a mistakenly recorded event; future previews drop its entries
// @Tags         operations
// @Produce      json
// @Param        id   path      string  true  "Operation ID"
// @Success      200  {object}  DataResponse
// @Router       /operations/{id} [delete]
func (s *Server) DeleteOperation(c *gin.Context) {
	if err := s.operationSvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, gin.H{"deleted": true})
}
