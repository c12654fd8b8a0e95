package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Публичные маршруты потока подачи отчета
	api.GET("/vehicles/:qr_token", h.getVehicle)

	reports := api.Group("/reports")
	{
		reports.POST("", h.submitReport)
		reports.POST("/:id/verify", h.verifyReport)
		reports.POST("/:id/resend", h.resendCode)
	}

	// Админские маршруты за API-ключом
	admin := api.Group("/reports", APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		admin.GET("", h.listReports)
		admin.GET("/stats", h.getStats)
		admin.GET("/:id", h.getReport)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
