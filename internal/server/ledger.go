package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	billingdomain "github.com/warebilllabs/warebill/internal/billing/domain"
)

func (s *Server) bindPreviewRequest(c *gin.Context) (billingdomain.PreviewRequest, bool) {
	customerID := strings.TrimSpace(c.Query("customer_id"))
	if customerID == "" {
		AbortWithError(c, newValidationError("customer_id", "required", "customer_id is required"))
		return billingdomain.PreviewRequest{}, false
	}

	from, err := time.Parse(time.RFC3339, strings.TrimSpace(c.Query("from")))
	if err != nil {
		AbortWithError(c, newValidationError("from", "invalid_time", "from must be RFC3339"))
		return billingdomain.PreviewRequest{}, false
	}
	to, err := time.Parse(time.RFC3339, strings.TrimSpace(c.Query("to")))
	if err != nil {
		AbortWithError(c, newValidationError("to", "invalid_time", "to must be RFC3339"))
		return billingdomain.PreviewRequest{}, false
	}

	return billingdomain.PreviewRequest{CustomerID: customerID, From: from, To: to}, true
}

// @Summary      Preview Ledger
// @Description  Recompute the customer's billing ledger for [from, to) from current state
// @Tags         ledger
// @Produce      json
// @Param        customer_id  query  string  true  "Customer ID"
// @Param        from         query  string  true  "Period start (RFC3339, inclusive)"
// @Param        to           query  string  true  "Period end (RFC3339, exclusive)"
// @Success      200  {object}  DataResponse
// @Router       /ledger/preview [get]
func (s *Server) PreviewLedger(c *gin.Context) {
	req, ok := s.bindPreviewRequest(c)
	if !ok {
		return
	}

	statement, err := s.billingSvc.Preview(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, statement)
}

// @Summary      Export Ledger PDF
// @Description  Render the ledger preview as a PDF statement
// @Tags         ledger
// @Produce      application/pdf
// @Param        customer_id  query  string  true  "Customer ID"
// @Param        from         query  string  true  "Period start (RFC3339, inclusive)"
// @Param        to           query  string  true  "Period end (RFC3339, exclusive)"
// @Success      200  {file}  binary
// @Router       /ledger/export.pdf [get]
func (s *Server) ExportLedgerPDF(c *gin.Context) {
	req, ok := s.bindPreviewRequest(c)
	if !ok {
		return
	}

	pdf, err := s.billingSvc.ExportPDF(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="statement.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
