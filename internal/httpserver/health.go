package httpserver

import (
	"github.com/gin-gonic/gin"

	"focusflow/pkg/response"
)

const (
	AppName       = "Focus Flow"
	HealthMessage = "Focus Flow API is running"
)

// welcome handles the root route
// @Summary Welcome
// @Description Root welcome with a pointer to the API docs
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Welcome"
// @Router / [get]
func (srv HTTPServer) welcome(c *gin.Context) {
	response.OK(c, gin.H{
		"app":  AppName,
		"docs": "/swagger/index.html",
	})
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "ok",
		"message": HealthMessage,
	})
}
