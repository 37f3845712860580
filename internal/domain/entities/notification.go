package entities

import (
	"fmt"
	"time"
)

// NotificationType tags the logical event a notification reports.

type NotificationType string

const (
	NotificationOSAtrasada     NotificationType = "os_atrasada"
	NotificationEstoqueCritico NotificationType = "estoque_critico"
	NotificationOSPronta       NotificationType = "os_pronta"
	NotificationClienteNovo    NotificationType = "cliente_novo"
)

// NotificationRef identifies the entity a notification refers to. At most
// the fields relevant to the type are set ({os_id, cliente_id} for order
// events, {produto_id} for stock events, {cliente_id} for client events).
type NotificationRef struct {
	OSID      string `json:"os_id,omitempty"`
	ClientID  string `json:"cliente_id,omitempty"`
	ProductID string `json:"produto_id,omitempty"`
}

// Key renders the reference as a stable string usable inside a dedup key.
func (r NotificationRef) Key() string {
	return fmt.Sprintf("os=%s;cliente=%s;produto=%s", r.OSID, r.ClientID, r.ProductID)
}

// Notification is a per-user notification persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (usuario_id-index): usuario_id / created_at, for per-user listing
//   - GSI2 (dedup_key-index): dedup_key, for at-most-one-outstanding checks
//
// The dedup key is the explicit composite (type, user, reference) required
// to guarantee a single outstanding notification per logical event.
type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"usuario_id"`
	Type      NotificationType `json:"tipo"`
	Title     string           `json:"titulo"`
	Message   string           `json:"mensagem"`
	Reference NotificationRef  `json:"dados_referencia"`
	Read      bool             `json:"lida"`
	Priority  Priority         `json:"prioridade"`
	CreatedAt time.Time        `json:"criado_em"`
}

// DedupKey is the composite (type, user, reference) identity of the logical
// event this notification reports.
func (n Notification) DedupKey() string {
	return DedupKey(n.Type, n.UserID, n.Reference)
}

func DedupKey(t NotificationType, userID string, ref NotificationRef) string {
	return fmt.Sprintf("%s#%s#%s", t, userID, ref.Key())
}
