package routes

import (
	"servihub-backend/handlers/reports"

	"github.com/gin-gonic/gin"
)

func ReportsRoutes(r *gin.Engine) {
	r.GET("/api/reports", reports.GetAllReports)
	r.POST("/api/reports", reports.CreateReport)
	r.GET("/api/reports/:id", reports.GetReportByID)
	r.PATCH("/api/reports/:id", reports.ResolveReport)
	r.DELETE("/api/reports/:id", reports.DeleteReport)
}
