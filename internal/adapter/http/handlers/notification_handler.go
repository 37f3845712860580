package handlers

import (
	"errors"
	"net/http"

	response "assistec_os/internal/adapter/http/dto/response"
	"assistec_os/internal/usecase"
	"assistec_os/pkg"

	"github.com/gin-gonic/gin"
)

// ContextUserKey holds the authenticated user's id on the gin context. The
// identity middleware fills it before any notification handler runs.
const ContextUserKey = "usuario_id"

// NotificationHandler handles the per-user notification surface plus the
// policy sweep trigger.

type NotificationHandler struct {
	usecase usecase.INotificationUseCase
	sweep   usecase.INotificationSweepUseCase
}

func NewNotificationHandler(uc usecase.INotificationUseCase, sweep usecase.INotificationSweepUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc, sweep: sweep}
}

func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	ns, err := h.usecase.List(c.Request.Context(), c.GetString(ContextUserKey))
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromNotificationList(ns))
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	err := h.usecase.MarkRead(c.Request.Context(), c.GetString(ContextUserKey), c.Param("notificacao_id"))
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Sucesso: true})
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := h.usecase.MarkAllRead(c.Request.Context(), c.GetString(ContextUserKey)); err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Sucesso: true})
}

func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	err := h.usecase.Delete(c.Request.Context(), c.GetString(ContextUserKey), c.Param("notificacao_id"))
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Sucesso: true})
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	count, err := h.usecase.UnreadCount(c.Request.Context(), c.GetString(ContextUserKey))
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.UnreadCountResponse{NaoLidas: count})
}

// RunSweep triggers the policy sweep on demand; the scheduler that calls it
// periodically lives outside this service.
func (h *NotificationHandler) RunSweep(c *gin.Context) {
	created, err := h.sweep.Sweep(c.Request.Context())
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.SweepResponse{Criadas: created})
}

func mapNotificationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNotificationNotFound):
		return pkg.NewDomainErrorSimple("NOTIFICACAO_NAO_ENCONTRADA", "Notificação não encontrada", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("NAO_AUTENTICADO", "Não autenticado", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro interno do servidor", err, http.StatusInternalServerError)
	}
}
