package server

import (
	"strings"

	"github.com/gin-gonic/gin"
	customerdomain "github.com/warebilllabs/warebill/internal/customer/domain"
	"github.com/warebilllabs/warebill/pkg/db/pagination"
)

// @Summary      Create Customer
// @Description  Register a billable warehouse customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header  string  false  "Idempotency Key"
// @Param        request body customerdomain.CreateRequest true "Create Customer Request"
// @Success      200  {object}  DataResponse
// @Router       /customers [post]
func (s *Server) CreateCustomer(c *gin.Context) {
	var req customerdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.IdempotencyKey = idempotencyKeyFromHeader(c)

	resp, err := s.customerSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, resp)
}

// @Summary      List Customers
// @Tags         customers
// @Produce      json
// @Param        group_id    query  string  false  "Group ID"
// @Param        page_token  query  string  false  "Page Token"
// @Param        page_size   query  int     false  "Page Size"
// @Success      200  {object}  ListResponse
// @Router       /customers [get]
func (s *Server) ListCustomers(c *gin.Context) {
	var query struct {
		pagination.Pagination
		GroupID string `form:"group_id"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	customers, pageInfo, err := s.customerSvc.List(c.Request.Context(), customerdomain.ListRequest{
		GroupID:   strings.TrimSpace(query.GroupID),
		PageToken: query.PageToken,
		PageSize:  query.PageSize,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondList(c, customers, pageInfo)
}

// @Summary      Get Customer
// @Tags         customers
// @Produce      json
// @Param        id   path      string  true  "Customer ID"
// @Success      200  {object}  DataResponse
// @Router       /customers/{id} [get]
func (s *Server) GetCustomerByID(c *gin.Context) {
	resp, err := s.customerSvc.Get(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, resp)
}

// @Summary      Update Customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id       path  string                       true  "Customer ID"
// @Param        request  body  customerdomain.UpdateRequest true  "Update Customer Request"
// @Success      200  {object}  DataResponse
// @Router       /customers/{id} [patch]
func (s *Server) UpdateCustomer(c *gin.Context) {
	var req customerdomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.customerSvc.Update(c.Request.Context(), strings.TrimSpace(c.Param("id")), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, resp)
}

// @Summary      Create Customer Group
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        request body customerdomain.CreateGroupRequest true "Create Group Request"
// @Success      200  {object}  DataResponse
// @Router       /customer-groups [post]
func (s *Server) CreateCustomerGroup(c *gin.Context) {
	var req customerdomain.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.customerSvc.CreateGroup(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, resp)
}

// @Summary      List Customer Groups
// @Tags         customers
// @Produce      json
// @Success      200  {object}  ListResponse
// @Router       /customer-groups [get]
func (s *Server) ListCustomerGroups(c *gin.Context) {
	groups, err := s.customerSvc.ListGroups(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondList(c, groups, nil)
}
