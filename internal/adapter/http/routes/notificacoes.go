package routes

import (
	"assistec_os/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathNotificacoes = "/notificacoes"
)

func addNotificationRoutes(rg *gin.RouterGroup, notificationHandler *handlers.NotificationHandler) {
	notificacoes := rg.Group(PathNotificacoes)
	{
		notificacoes.GET("", notificationHandler.ListNotifications)
		notificacoes.GET("/contador", notificationHandler.UnreadCount)
		notificacoes.PUT("/marcar-todas-lidas", notificationHandler.MarkAllRead)
		notificacoes.PUT("/:notificacao_id/lida", notificationHandler.MarkRead)
		notificacoes.DELETE("/:notificacao_id", notificationHandler.DeleteNotification)
		// Invoked by an external timer; the sweep itself is synchronous.
		notificacoes.POST("/verificar", notificationHandler.RunSweep)
	}
}
