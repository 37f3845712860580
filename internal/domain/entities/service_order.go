package entities

import "time"

// OSStatus represents the lifecycle of a service order (ordem de serviço).
//
// Domain notes:
//   - Orders enter as "aguardando" and move through the bench workflow.
//   - The "pronto" transition triggers the ready-for-pickup notification
//     fan-out handled by the usecase layer, never by the policy sweep alone.

type OSStatus string

const (
	OSStatusAguardando OSStatus = "aguardando"
	OSStatusEmReparo   OSStatus = "em_reparo"
	OSStatusPronto     OSStatus = "pronto"
	OSStatusEntregue   OSStatus = "entregue"
	OSStatusCancelado  OSStatus = "cancelado"
)

// Priority is shared between service orders and notifications.

type Priority string

const (
	PriorityBaixa  Priority = "baixa"
	PriorityNormal Priority = "normal"
	PriorityAlta   Priority = "alta"
)

const DefaultEstimatedDays = 3

// ServiceOrder is the repair order persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (list-index): entity (constant) / created_at, for newest-first listing
//
// Number is the human-facing sequential identifier ("#OS0001"). It is
// allocated by the repository under serialized access; two concurrent
// creations never share a number.
type ServiceOrder struct {
	ID            string    `json:"id"`
	Number        string    `json:"numero_os"`
	ClientID      string    `json:"cliente_id"`
	DeviceType    string    `json:"tipo_aparelho"`
	BrandModel    string    `json:"marca_modelo"`
	SerialIMEI    string    `json:"imei_serial"`
	DeviceColor   string    `json:"cor_aparelho"`
	ReportedIssue string    `json:"problema_relatado"`
	Diagnosis     string    `json:"diagnostico_tecnico"`
	EstimatedDays int       `json:"prazo_estimado"`
	BudgetValue   float64   `json:"valor_orcamento"`
	Status        OSStatus  `json:"status"`
	Priority      Priority  `json:"prioridade"`
	Notes         string    `json:"observacoes"`
	CreatedAt     time.Time `json:"criado_em"`
	UpdatedAt     time.Time `json:"atualizado_em"`
}

// Deadline is the estimated completion date: creation time plus the
// estimated turnaround in days.
func (o ServiceOrder) Deadline() time.Time {
	days := o.EstimatedDays
	if days <= 0 {
		days = DefaultEstimatedDays
	}
	return o.CreatedAt.Add(time.Duration(days) * 24 * time.Hour)
}

// Overdue reports whether the order passed its deadline while still open
// on the bench (aguardando or em_reparo).
func (o ServiceOrder) Overdue(now time.Time) bool {
	if o.Status != OSStatusAguardando && o.Status != OSStatusEmReparo {
		return false
	}
	return o.Deadline().Before(now)
}

// OSWithClient joins an order with its client's display name for listings.
type OSWithClient struct {
	ServiceOrder
	ClientName string `json:"cliente_nome"`
}
