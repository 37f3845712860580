package interfaces

import (
	"context"

	"assistec_os/internal/domain/entities"
)

// Read-only repositories for entities owned elsewhere in the suite. The
// service-order core only resolves clients on intake and feeds the policy
// sweep from stock and user state.

type IClientRepository interface {
	GetByID(ctx context.Context, id string) (entities.Client, error)
	GetNamesByIDs(ctx context.Context, ids []string) (map[string]string, error)
}

type IStockRepository interface {
	ListCritical(ctx context.Context) ([]entities.StockItem, error)
}

type IUserRepository interface {
	ListActive(ctx context.Context) ([]entities.User, error)
}
