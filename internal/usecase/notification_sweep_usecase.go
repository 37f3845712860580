package usecase

import (
	"context"
	"log"
	"time"

	"assistec_os/internal/domain/entities"
	"assistec_os/internal/usecase/interfaces"
)

// INotificationSweepUseCase is the policy engine: a periodic/on-demand scan
// of active users against order and inventory state that creates
// deduplicated notifications for overdue orders, critical stock and ready
// orders.

type INotificationSweepUseCase interface {
	// Sweep evaluates all rules and commits the resulting notifications
	// together. It returns the number of notifications created; on error
	// nothing from the failing batch persists.
	Sweep(ctx context.Context) (int, error)
}

type NotificationSweepUseCase struct {
	orders        interfaces.IServiceOrderRepository
	clients       interfaces.IClientRepository
	stock         interfaces.IStockRepository
	users         interfaces.IUserRepository
	notifications interfaces.INotificationRepository

	// now is swapped in tests to pin the overdue boundary.
	now func() time.Time
}

var _ INotificationSweepUseCase = (*NotificationSweepUseCase)(nil)

func NewNotificationSweepUseCase(
	orders interfaces.IServiceOrderRepository,
	clients interfaces.IClientRepository,
	stock interfaces.IStockRepository,
	users interfaces.IUserRepository,
	notifications interfaces.INotificationRepository,
) *NotificationSweepUseCase {
	return &NotificationSweepUseCase{
		orders:        orders,
		clients:       clients,
		stock:         stock,
		users:         users,
		notifications: notifications,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (u *NotificationSweepUseCase) Sweep(ctx context.Context) (int, error) {
	users, err := u.users.ListActive(ctx)
	if err != nil {
		return 0, err
	}
	if len(users) == 0 {
		return 0, nil
	}

	now := u.now()

	open, err := u.orders.ListByStatus(ctx, entities.OSStatusAguardando, entities.OSStatusEmReparo)
	if err != nil {
		return 0, err
	}
	overdue := make([]entities.ServiceOrder, 0, len(open))
	for _, o := range open {
		// The overdue rule is computed here, not in a store expression:
		// deadline (creation + estimated days) already past.
		if o.Overdue(now) {
			overdue = append(overdue, o)
		}
	}

	critical, err := u.stock.ListCritical(ctx)
	if err != nil {
		return 0, err
	}

	ready, err := u.orders.ListByStatus(ctx, entities.OSStatusPronto)
	if err != nil {
		return 0, err
	}

	names, err := u.clientNames(ctx, overdue, ready)
	if err != nil {
		return 0, err
	}

	// Candidates are dedup-checked against the store and against the pending
	// batch, so a sweep over unchanged data creates nothing.
	var pending []entities.Notification
	inBatch := make(map[string]bool)

	add := func(n entities.Notification) error {
		key := n.DedupKey()
		if inBatch[key] {
			return nil
		}
		exists, err := u.notifications.ExistsByDedupKey(ctx, key)
		if err != nil {
			return err
		}
		if exists {
			return nil
		}
		inBatch[key] = true
		pending = append(pending, n)
		return nil
	}

	for _, usr := range users {
		for _, o := range overdue {
			if err := add(NewOSAtrasadaNotification(o, names[o.ClientID], usr.ID)); err != nil {
				return 0, err
			}
		}
		for _, item := range critical {
			if err := add(NewEstoqueCriticoNotification(item, usr.ID)); err != nil {
				return 0, err
			}
		}
		for _, o := range ready {
			if err := add(NewOSProntaNotification(o, names[o.ClientID], usr.ID)); err != nil {
				return 0, err
			}
		}
	}

	if len(pending) == 0 {
		return 0, nil
	}
	if err := u.notifications.CreateBatch(ctx, pending); err != nil {
		log.Printf("[notificacoes][sweep] batch commit failed pending=%d err=%v", len(pending), err)
		return 0, err
	}

	log.Printf("[notificacoes][sweep] created=%d users=%d overdue=%d critical=%d ready=%d",
		len(pending), len(users), len(overdue), len(critical), len(ready))
	return len(pending), nil
}

func (u *NotificationSweepUseCase) clientNames(ctx context.Context, groups ...[]entities.ServiceOrder) (map[string]string, error) {
	var ids []string
	seen := make(map[string]bool)
	for _, orders := range groups {
		for _, o := range orders {
			if !seen[o.ClientID] {
				seen[o.ClientID] = true
				ids = append(ids, o.ClientID)
			}
		}
	}
	if len(ids) == 0 {
		return map[string]string{}, nil
	}
	return u.clients.GetNamesByIDs(ctx, ids)
}
