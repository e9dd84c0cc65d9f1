package server

import (
	"strings"

	"github.com/gin-gonic/gin"
	carrierdomain "github.com/warebilllabs/warebill/internal/carrier/domain"
)

// @Summary      Create Carrier
// @Tags         carriers
// @Accept       json
// @Produce      json
// @Param        request body carrierdomain.CreateRequest true "Create Carrier Request"
// @Success      200  {object}  DataResponse
// @Router       /carriers [post]
func (s *Server) CreateCarrier(c *gin.Context) {
	var req carrierdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.carrierSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, resp)
}

// @Summary      List Carriers
// @Tags         carriers
// @Produce      json
// @Success      200  {object}  ListResponse
// @Router       /carriers [get]
func (s *Server) ListCarriers(c *gin.Context) {
	carriers, err := s.carrierSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondList(c, carriers, nil)
}

// @Summary      Get Carrier
// @Tags         carriers
// @Produce      json
// @Param        id   path      string  true  "Carrier ID"
// @Success      200  {object}  DataResponse
// @Router       /carriers/{id} [get]
func (s *Server) GetCarrierByID(c *gin.Context) {
	resp, err := s.carrierSvc.Get(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, resp)
}

type createCarrierServiceRequest struct {
	Code    string `json:"code" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Channel string `json:"channel" binding:"required"`
}

// @Summary      Create Carrier Service
// @Description  Add a shipping channel under a carrier
// @Tags         carriers
// @Accept       json
// @Produce      json
// @Param        id       path  string                       true  "Carrier ID"
// @Param        request  body  createCarrierServiceRequest  true  "Create Service Request"
// @Success      200  {object}  DataResponse
// @Router       /carriers/{id}/services [post]
func (s *Server) CreateCarrierService(c *gin.Context) {
	var req createCarrierServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.carrierSvc.CreateService(c.Request.Context(), carrierdomain.CreateServiceRequest{
		CarrierID: strings.TrimSpace(c.Param("id")),
		Code:      strings.TrimSpace(req.Code),
		Name:      strings.TrimSpace(req.Name),
		Channel:   strings.TrimSpace(req.Channel),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, resp)
}

// @Summary      List Carrier Services
// @Tags         carriers
// @Produce      json
// @Param        id   path      string  true  "Carrier ID"
// @Success      200  {object}  ListResponse
// @Router       /carriers/{id}/services [get]
func (s *Server) ListCarrierServices(c *gin.Context) {
	services, err := s.carrierSvc.ListServices(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondList(c, services, nil)
}
