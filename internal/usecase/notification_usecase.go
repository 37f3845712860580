package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"assistec_os/internal/domain/entities"
	"assistec_os/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrInvalidUserID        = errors.New("invalid user id")
)

const notificationListLimit = 50

// INotificationUseCase exposes the per-user notification surface. Every
// operation is scoped to the calling user: a notification owned by someone
// else behaves as absent.

type INotificationUseCase interface {
	List(ctx context.Context, userID string) ([]entities.Notification, error)
	MarkRead(ctx context.Context, userID, id string) error
	MarkAllRead(ctx context.Context, userID string) error
	Delete(ctx context.Context, userID, id string) error
	UnreadCount(ctx context.Context, userID string) (int, error)
}

type NotificationUseCase struct {
	notifications interfaces.INotificationRepository
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(notifications interfaces.INotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{notifications: notifications}
}

func (u *NotificationUseCase) List(ctx context.Context, userID string) ([]entities.Notification, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return u.notifications.ListByUser(ctx, userID, notificationListLimit)
}

func (u *NotificationUseCase) MarkRead(ctx context.Context, userID, id string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ErrInvalidUserID
	}
	// Idempotent: marking an already-read notification succeeds again.
	marked, err := u.notifications.MarkRead(ctx, userID, id)
	if err != nil {
		return err
	}
	if !marked {
		return ErrNotificationNotFound
	}
	return nil
}

func (u *NotificationUseCase) MarkAllRead(ctx context.Context, userID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ErrInvalidUserID
	}
	return u.notifications.MarkAllRead(ctx, userID)
}

func (u *NotificationUseCase) Delete(ctx context.Context, userID, id string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ErrInvalidUserID
	}
	deleted, err := u.notifications.DeleteForUser(ctx, userID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotificationNotFound
	}
	return nil
}

func (u *NotificationUseCase) UnreadCount(ctx context.Context, userID string) (int, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return 0, ErrInvalidUserID
	}
	return u.notifications.CountUnread(ctx, userID)
}

// Notification builders. Titles and messages are the user-facing Portuguese
// texts shown in the web shell's notification tray.

func NewOSAtrasadaNotification(o entities.ServiceOrder, clientName, userID string) entities.Notification {
	return entities.Notification{
		ID:      uuid.NewString(),
		UserID:  userID,
		Type:    entities.NotificationOSAtrasada,
		Title:   fmt.Sprintf("OS %s - Prazo Vencido", o.Number),
		Message: fmt.Sprintf("Cliente %s aguardando retorno. Prazo estimado excedido.", clientName),
		Reference: entities.NotificationRef{
			OSID:     o.ID,
			ClientID: o.ClientID,
		},
		Priority:  entities.PriorityAlta,
		CreatedAt: time.Now().UTC(),
	}
}

func NewEstoqueCriticoNotification(item entities.StockItem, userID string) entities.Notification {
	return entities.Notification{
		ID:      uuid.NewString(),
		UserID:  userID,
		Type:    entities.NotificationEstoqueCritico,
		Title:   fmt.Sprintf("%s - Estoque Crítico", item.Name),
		Message: fmt.Sprintf("Apenas %d unidades disponíveis (mínimo: %d).", item.Quantity, item.MinQuantity),
		Reference: entities.NotificationRef{
			ProductID: item.ID,
		},
		Priority:  entities.PriorityAlta,
		CreatedAt: time.Now().UTC(),
	}
}

func NewOSProntaNotification(o entities.ServiceOrder, clientName, userID string) entities.Notification {
	return entities.Notification{
		ID:      uuid.NewString(),
		UserID:  userID,
		Type:    entities.NotificationOSPronta,
		Title:   fmt.Sprintf("OS %s - Pronta para Retirada", o.Number),
		Message: fmt.Sprintf("Aparelho de %s está pronto. Cliente deve ser contactado.", clientName),
		Reference: entities.NotificationRef{
			OSID:     o.ID,
			ClientID: o.ClientID,
		},
		Priority:  entities.PriorityNormal,
		CreatedAt: time.Now().UTC(),
	}
}

func NewClienteNovoNotification(c entities.Client, userID string) entities.Notification {
	return entities.Notification{
		ID:      uuid.NewString(),
		UserID:  userID,
		Type:    entities.NotificationClienteNovo,
		Title:   "Novo Cliente Cadastrado",
		Message: fmt.Sprintf("%s foi adicionado à base de dados.", c.Name),
		Reference: entities.NotificationRef{
			ClientID: c.ID,
		},
		Priority:  entities.PriorityBaixa,
		CreatedAt: time.Now().UTC(),
	}
}
