package response

import (
	"time"

	"assistec_os/internal/domain/entities"
)

type NotificationRefResponse struct {
	OSID      string `json:"os_id,omitempty"`
	ClienteID string `json:"cliente_id,omitempty"`
	ProdutoID string `json:"produto_id,omitempty"`
}

type NotificationResponse struct {
	ID              string                  `json:"id"`
	Tipo            string                  `json:"tipo"`
	Titulo          string                  `json:"titulo"`
	Mensagem        string                  `json:"mensagem"`
	DadosReferencia NotificationRefResponse `json:"dados_referencia"`
	Lida            bool                    `json:"lida"`
	Prioridade      string                  `json:"prioridade"`
	CriadoEm        time.Time               `json:"criado_em"`
}

func FromNotification(n entities.Notification) NotificationResponse {
	return NotificationResponse{
		ID:       n.ID,
		Tipo:     string(n.Type),
		Titulo:   n.Title,
		Mensagem: n.Message,
		DadosReferencia: NotificationRefResponse{
			OSID:      n.Reference.OSID,
			ClienteID: n.Reference.ClientID,
			ProdutoID: n.Reference.ProductID,
		},
		Lida:       n.Read,
		Prioridade: string(n.Priority),
		CriadoEm:   n.CreatedAt,
	}
}

func FromNotificationList(ns []entities.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(ns))
	for _, n := range ns {
		out = append(out, FromNotification(n))
	}
	return out
}

// Small ack bodies used by the notification surface.

type SuccessResponse struct {
	Sucesso bool `json:"sucesso"`
}

type UnreadCountResponse struct {
	NaoLidas int `json:"nao_lidas"`
}

type SweepResponse struct {
	Criadas int `json:"criadas"`
}
