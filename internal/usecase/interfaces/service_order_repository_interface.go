package interfaces

import (
	"context"

	"assistec_os/internal/domain/entities"
)

// IServiceOrderRepository abstracts DynamoDB persistence for ServiceOrder.
//
// Conventions (shared by all repositories here):
//   - "not found" is reported as a zero-value entity with empty ID and a nil
//     error; callers translate that into their own sentinel.
//   - NextOrderNumber must be serialized by the store: two concurrent calls
//     never return the same number.

type IServiceOrderRepository interface {
	Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	Update(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	UpdateDiagnosis(ctx context.Context, id, diagnosis, notes string) (entities.ServiceOrder, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]entities.ServiceOrder, error)
	ListByStatus(ctx context.Context, statuses ...entities.OSStatus) ([]entities.ServiceOrder, error)
	NextOrderNumber(ctx context.Context) (string, error)
}
