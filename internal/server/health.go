package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      Liveness
// @Tags         health
// @Produce      json
// @Success      200  {object}  DataResponse
// @Router       /healthz [get]
func (s *Server) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary      Readiness
// @Description  Verifies the database connection is usable
// @Tags         health
// @Produce      json
// @Success      200  {object}  DataResponse
// @Router       /readyz [get]
func (s *Server) Readyz(c *gin.Context) {
	sqlDB, err := s.db.DB()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "error": "database handle unavailable"})
		return
	}
	if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "error": "database unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
