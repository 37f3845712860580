package routes

import (
	"assistec_os/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOS = "/os"
)

func addServiceOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.ServiceOrderHandler) {
	os := rg.Group(PathOS)
	{
		os.GET("", orderHandler.ListOS)
		os.POST("", orderHandler.CreateOS)
		// Static route; takes precedence over the :os_id captures below.
		os.POST("/gerar-diagnostico-parametros", orderHandler.PreviewDiagnosis)
		os.GET("/:os_id", orderHandler.GetOS)
		os.PUT("/:os_id", orderHandler.UpdateOS)
		os.DELETE("/:os_id", orderHandler.DeleteOS)
		os.POST("/:os_id/gerar-diagnostico", orderHandler.GenerateDiagnosis)
	}
}
