package server

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	templatedomain "github.com/warebilllabs/warebill/internal/template/domain"
)

// @Summary      Create Template
// @Description  Create a scoped billing template with its rules
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header  string  false  "Idempotency Key"
// @Param        request body templatedomain.CreateRequest true "Create Template Request"
// @Success      200  {object}  DataResponse
// @Router       /templates [post]
func (s *Server) CreateTemplate(c *gin.Context) {
	var req templatedomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.IdempotencyKey = idempotencyKeyFromHeader(c)

	resp, err := s.templateSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, resp)
}

// @Summary      List Templates
// @Tags         templates
// @Produce      json
// @Param        scope        query  string  false  "Scope (GLOBAL, GROUP or CUSTOMER)"
// @Param        customer_id  query  string  false  "Customer ID"
// @Param        group_id     query  string  false  "Group ID"
// @Success      200  {object}  ListResponse
// @Router       /templates [get]
func (s *Server) ListTemplates(c *gin.Context) {
	var query struct {
		Scope      string `form:"scope"`
		CustomerID string `form:"customer_id"`
		GroupID    string `form:"group_id"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	filter := templatedomain.ListFilter{Scope: templatedomain.Scope(strings.TrimSpace(query.Scope))}
	if v := strings.TrimSpace(query.CustomerID); v != "" {
		id, err := parseSnowflakeID(v)
		if err != nil {
			AbortWithError(c, newValidationError("customer_id", "invalid_id", "invalid customer id"))
			return
		}
		filter.CustomerID = &id
	}
	if v := strings.TrimSpace(query.GroupID); v != "" {
		id, err := parseSnowflakeID(v)
		if err != nil {
			AbortWithError(c, newValidationError("group_id", "invalid_id", "invalid group id"))
			return
		}
		filter.GroupID = &id
	}

	templates, err := s.templateSvc.List(c.Request.Context(), filter)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondList(c, templates, nil)
}

// @Summary      Get Template
// @Tags         templates
// @Produce      json
// @Param        id   path      string  true  "Template ID"
// @Success      200  {object}  DataResponse
// @Router       /templates/{id} [get]
func (s *Server) GetTemplateByID(c *gin.Context) {
	resp, err := s.templateSvc.Get(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, resp)
}

// @Summary      Update Template
// @Description  Update mutable fields or replace the rule set; bumps the version
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        id       path  string                        true  "Template ID"
// @Param        request  body  templatedomain.UpdateRequest  true  "Update Template Request"
// @Success      200  {object}  DataResponse
// @Router       /templates/{id} [patch]
func (s *Server) UpdateTemplate(c *gin.Context) {
	var req templatedomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.templateSvc.Update(c.Request.Context(), strings.TrimSpace(c.Param("id")), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, resp)
}

// @Summary      Resolve Template
// @Description  Pick the template applicable to a customer at an instant
// @Tags         templates
// @Produce      json
// @Param        customer_id  query  string  true   "Customer ID"
// @Param        at           query  string  false  "Instant (RFC3339, defaults to now)"
// @Success      200  {object}  DataResponse
// @Router       /templates/resolve [get]
func (s *Server) ResolveTemplate(c *gin.Context) {
	customerID := strings.TrimSpace(c.Query("customer_id"))
	if customerID == "" {
		AbortWithError(c, newValidationError("customer_id", "required", "customer_id is required"))
		return
	}

	at := time.Now().UTC()
	if raw := strings.TrimSpace(c.Query("at")); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			AbortWithError(c, newValidationError("at", "invalid_time", "at must be RFC3339"))
			return
		}
		at = parsed
	}

	resp, err := s.templateSvc.Resolve(c.Request.Context(), customerID, at)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, resp)
}
