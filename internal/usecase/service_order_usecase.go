package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"assistec_os/internal/domain/entities"
	"assistec_os/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOSNotFound           = errors.New("service order not found")
	ErrClientNotFound       = errors.New("client not found")
	ErrMissingFields        = errors.New("missing required fields")
	ErrInvalidOSID          = errors.New("invalid service order id")
	ErrDiagnosisUnavailable = errors.New("diagnosis generation unavailable")
)

// CreateOSInput is the intake command for a new service order. ClientID,
// DeviceType, BrandModel and ReportedIssue are required.
type CreateOSInput struct {
	ClientID      string
	DeviceType    string
	BrandModel    string
	SerialIMEI    string
	DeviceColor   string
	ReportedIssue string
	Diagnosis     string
	EstimatedDays int
	BudgetValue   float64
	Status        entities.OSStatus
	Priority      entities.Priority
	Notes         string
}

// UpdateOSInput carries a partial update: nil fields are left untouched.
type UpdateOSInput struct {
	ClientID      *string
	DeviceType    *string
	BrandModel    *string
	SerialIMEI    *string
	DeviceColor   *string
	ReportedIssue *string
	Diagnosis     *string
	EstimatedDays *int
	BudgetValue   *float64
	Status        *entities.OSStatus
	Priority      *entities.Priority
	Notes         *string
}

// Enrichment is the outcome of the best-effort AI pass over a new order:
// either both texts were produced, or the call degraded and Err carries the
// reason. Callers decide per site whether degradation is acceptable.
type Enrichment struct {
	Diagnosis string
	Summary   string
	Err       error
}

func (e Enrichment) Degraded() bool { return e.Err != nil }

// IServiceOrderUseCase exposes the service-order lifecycle:
//   - intake with sequential numbering and AI enrichment
//   - partial updates with the "pronto" notification fan-out
//   - explicit diagnosis (re)generation, stateful and stateless
//   - listing joined with client display names

type IServiceOrderUseCase interface {
	Create(ctx context.Context, in CreateOSInput) (entities.OSWithClient, error)
	Update(ctx context.Context, id string, in UpdateOSInput) (entities.OSWithClient, error)
	RegenerateDiagnosis(ctx context.Context, id string) (string, error)
	PreviewDiagnosis(ctx context.Context, deviceType, brandModel, reportedIssue string) (string, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (entities.OSWithClient, error)
	List(ctx context.Context) ([]entities.OSWithClient, error)
}

type ServiceOrderUseCase struct {
	orders        interfaces.IServiceOrderRepository
	clients       interfaces.IClientRepository
	users         interfaces.IUserRepository
	notifications interfaces.INotificationRepository
	gateway       interfaces.IDiagnosisGateway
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

func NewServiceOrderUseCase(
	orders interfaces.IServiceOrderRepository,
	clients interfaces.IClientRepository,
	users interfaces.IUserRepository,
	notifications interfaces.INotificationRepository,
	gateway interfaces.IDiagnosisGateway,
) *ServiceOrderUseCase {
	return &ServiceOrderUseCase{
		orders:        orders,
		clients:       clients,
		users:         users,
		notifications: notifications,
		gateway:       gateway,
	}
}

func (u *ServiceOrderUseCase) Create(ctx context.Context, in CreateOSInput) (entities.OSWithClient, error) {
	in.ClientID = strings.TrimSpace(in.ClientID)
	in.DeviceType = strings.TrimSpace(in.DeviceType)
	in.BrandModel = strings.TrimSpace(in.BrandModel)
	in.ReportedIssue = strings.TrimSpace(in.ReportedIssue)
	if in.ClientID == "" || in.DeviceType == "" || in.BrandModel == "" || in.ReportedIssue == "" {
		return entities.OSWithClient{}, ErrMissingFields
	}

	client, err := u.clients.GetByID(ctx, in.ClientID)
	if err != nil {
		return entities.OSWithClient{}, err
	}
	if client.ID == "" {
		return entities.OSWithClient{}, ErrClientNotFound
	}

	number, err := u.orders.NextOrderNumber(ctx)
	if err != nil {
		return entities.OSWithClient{}, err
	}

	now := time.Now().UTC()
	o := entities.ServiceOrder{
		ID:            uuid.NewString(),
		Number:        number,
		ClientID:      client.ID,
		DeviceType:    in.DeviceType,
		BrandModel:    in.BrandModel,
		SerialIMEI:    in.SerialIMEI,
		DeviceColor:   in.DeviceColor,
		ReportedIssue: in.ReportedIssue,
		Diagnosis:     in.Diagnosis,
		EstimatedDays: in.EstimatedDays,
		BudgetValue:   in.BudgetValue,
		Status:        in.Status,
		Priority:      in.Priority,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if o.EstimatedDays <= 0 {
		o.EstimatedDays = entities.DefaultEstimatedDays
	}
	if o.Status == "" {
		o.Status = entities.OSStatusAguardando
	}
	if o.Priority == "" {
		o.Priority = entities.PriorityNormal
	}

	created, err := u.orders.Create(ctx, o)
	if err != nil {
		return entities.OSWithClient{}, err
	}

	// Enrichment runs after the create write so no store resource is held
	// during the provider call. A degraded result leaves the order as
	// submitted.
	if enr := u.enrich(ctx, created.DeviceType, created.BrandModel, created.ReportedIssue); enr.Degraded() {
		log.Printf("[os][create] enrichment degraded os=%s err=%v", created.Number, enr.Err)
	} else {
		notes := strings.TrimRight(created.Notes, "\n") + "\n\nResumo: " + enr.Summary
		updated, err := u.orders.UpdateDiagnosis(ctx, created.ID, enr.Diagnosis, notes)
		if err != nil {
			log.Printf("[os][create] persisting enrichment failed os=%s err=%v", created.Number, err)
		} else if updated.ID != "" {
			created = updated
		}
	}

	return entities.OSWithClient{ServiceOrder: created, ClientName: client.Name}, nil
}

func (u *ServiceOrderUseCase) enrich(ctx context.Context, deviceType, brandModel, reportedIssue string) Enrichment {
	summary, err := u.gateway.Summarize(ctx, reportedIssue)
	if err != nil {
		return Enrichment{Err: err}
	}
	diagnosis, err := u.gateway.PreDiagnose(ctx, deviceType, brandModel, reportedIssue)
	if err != nil {
		return Enrichment{Err: err}
	}
	return Enrichment{Diagnosis: diagnosis, Summary: summary}
}

func (u *ServiceOrderUseCase) Update(ctx context.Context, id string, in UpdateOSInput) (entities.OSWithClient, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.OSWithClient{}, ErrInvalidOSID
	}

	o, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.OSWithClient{}, err
	}
	if o.ID == "" {
		return entities.OSWithClient{}, ErrOSNotFound
	}
	previousStatus := o.Status

	if in.ClientID != nil {
		client, err := u.clients.GetByID(ctx, strings.TrimSpace(*in.ClientID))
		if err != nil {
			return entities.OSWithClient{}, err
		}
		if client.ID == "" {
			return entities.OSWithClient{}, ErrClientNotFound
		}
		o.ClientID = client.ID
	}
	applyIfSet(&o.DeviceType, in.DeviceType)
	applyIfSet(&o.BrandModel, in.BrandModel)
	applyIfSet(&o.SerialIMEI, in.SerialIMEI)
	applyIfSet(&o.DeviceColor, in.DeviceColor)
	applyIfSet(&o.ReportedIssue, in.ReportedIssue)
	applyIfSet(&o.Diagnosis, in.Diagnosis)
	applyIfSet(&o.Notes, in.Notes)
	if in.Status != nil {
		o.Status = *in.Status
	}
	if in.Priority != nil {
		o.Priority = *in.Priority
	}
	if in.EstimatedDays != nil {
		o.EstimatedDays = *in.EstimatedDays
	}
	if in.BudgetValue != nil {
		o.BudgetValue = *in.BudgetValue
	}
	o.UpdatedAt = time.Now().UTC()

	updated, err := u.orders.Update(ctx, o)
	if err != nil {
		return entities.OSWithClient{}, err
	}
	if updated.ID == "" {
		return entities.OSWithClient{}, ErrOSNotFound
	}

	clientName := u.clientName(ctx, updated.ClientID)

	// The ready fan-out never rolls back the order update: failures are
	// logged and swallowed.
	if previousStatus != entities.OSStatusPronto && updated.Status == entities.OSStatusPronto {
		if err := u.notifyOSPronta(ctx, updated, clientName); err != nil {
			log.Printf("[os][update] ready notification fan-out failed os=%s err=%v", updated.Number, err)
		}
	}

	return entities.OSWithClient{ServiceOrder: updated, ClientName: clientName}, nil
}

func applyIfSet(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func (u *ServiceOrderUseCase) clientName(ctx context.Context, clientID string) string {
	client, err := u.clients.GetByID(ctx, clientID)
	if err != nil {
		log.Printf("[os] client lookup failed cliente=%s err=%v", clientID, err)
		return ""
	}
	return client.Name
}

func (u *ServiceOrderUseCase) notifyOSPronta(ctx context.Context, o entities.ServiceOrder, clientName string) error {
	users, err := u.users.ListActive(ctx)
	if err != nil {
		return err
	}
	batch := make([]entities.Notification, 0, len(users))
	for _, usr := range users {
		batch = append(batch, NewOSProntaNotification(o, clientName, usr.ID))
	}
	return u.notifications.CreateBatch(ctx, batch)
}

func (u *ServiceOrderUseCase) RegenerateDiagnosis(ctx context.Context, id string) (string, error) {
	o, err := u.orders.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return "", err
	}
	if o.ID == "" {
		return "", ErrOSNotFound
	}

	diagnosis, err := u.gateway.PreDiagnose(ctx, o.DeviceType, o.BrandModel, o.ReportedIssue)
	if err != nil {
		log.Printf("[os][diagnosis] generation failed os=%s err=%v", o.Number, err)
		return "", ErrDiagnosisUnavailable
	}

	updated, err := u.orders.UpdateDiagnosis(ctx, o.ID, diagnosis, o.Notes)
	if err != nil {
		return "", err
	}
	if updated.ID == "" {
		// Order deleted between the read and the write.
		return "", ErrOSNotFound
	}
	return diagnosis, nil
}

func (u *ServiceOrderUseCase) PreviewDiagnosis(ctx context.Context, deviceType, brandModel, reportedIssue string) (string, error) {
	deviceType = strings.TrimSpace(deviceType)
	brandModel = strings.TrimSpace(brandModel)
	reportedIssue = strings.TrimSpace(reportedIssue)
	if deviceType == "" || brandModel == "" || reportedIssue == "" {
		return "", ErrMissingFields
	}

	diagnosis, err := u.gateway.PreDiagnose(ctx, deviceType, brandModel, reportedIssue)
	if err != nil {
		log.Printf("[os][diagnosis] preview failed err=%v", err)
		return "", ErrDiagnosisUnavailable
	}
	return diagnosis, nil
}

func (u *ServiceOrderUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidOSID
	}
	deleted, err := u.orders.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrOSNotFound
	}
	return nil
}

func (u *ServiceOrderUseCase) Get(ctx context.Context, id string) (entities.OSWithClient, error) {
	o, err := u.orders.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.OSWithClient{}, err
	}
	if o.ID == "" {
		return entities.OSWithClient{}, ErrOSNotFound
	}
	return entities.OSWithClient{ServiceOrder: o, ClientName: u.clientName(ctx, o.ClientID)}, nil
}

func (u *ServiceOrderUseCase) List(ctx context.Context) ([]entities.OSWithClient, error) {
	orders, err := u.orders.List(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(orders))
	seen := make(map[string]bool, len(orders))
	for _, o := range orders {
		if !seen[o.ClientID] {
			seen[o.ClientID] = true
			ids = append(ids, o.ClientID)
		}
	}
	names, err := u.clients.GetNamesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]entities.OSWithClient, 0, len(orders))
	for _, o := range orders {
		out = append(out, entities.OSWithClient{ServiceOrder: o, ClientName: names[o.ClientID]})
	}
	return out, nil
}
