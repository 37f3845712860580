package response

import (
	"time"

	"assistec_os/internal/domain/entities"
)

// OSResponse mirrors the JSON contract the web shell consumes, including the
// derived prazoLimite (creation time plus estimated days).
type OSResponse struct {
	ID                 string    `json:"id"`
	NumeroOS           string    `json:"numeroOS"`
	ClienteID          string    `json:"clienteId"`
	ClienteNome        string    `json:"clienteNome,omitempty"`
	TipoAparelho       string    `json:"tipoAparelho"`
	MarcaModelo        string    `json:"marcaModelo"`
	ImeiSerial         string    `json:"imeiSerial"`
	CorAparelho        string    `json:"corAparelho"`
	ProblemaRelatado   string    `json:"problemaRelatado"`
	DiagnosticoTecnico string    `json:"diagnosticoTecnico"`
	PrazoEstimado      int       `json:"prazoEstimado"`
	ValorOrcamento     float64   `json:"valorOrcamento"`
	Status             string    `json:"status"`
	Prioridade         string    `json:"prioridade"`
	Observacoes        string    `json:"observacoes"`
	DataCriacao        time.Time `json:"dataCriacao"`
	DataAtualizacao    time.Time `json:"dataAtualizacao"`
	PrazoLimite        time.Time `json:"prazoLimite"`
}

func FromOS(o entities.OSWithClient) OSResponse {
	return OSResponse{
		ID:                 o.ID,
		NumeroOS:           o.Number,
		ClienteID:          o.ClientID,
		ClienteNome:        o.ClientName,
		TipoAparelho:       o.DeviceType,
		MarcaModelo:        o.BrandModel,
		ImeiSerial:         o.SerialIMEI,
		CorAparelho:        o.DeviceColor,
		ProblemaRelatado:   o.ReportedIssue,
		DiagnosticoTecnico: o.Diagnosis,
		PrazoEstimado:      o.EstimatedDays,
		ValorOrcamento:     o.BudgetValue,
		Status:             string(o.Status),
		Prioridade:         string(o.Priority),
		Observacoes:        o.Notes,
		DataCriacao:        o.CreatedAt,
		DataAtualizacao:    o.UpdatedAt,
		PrazoLimite:        o.Deadline(),
	}
}

func FromOSList(orders []entities.OSWithClient) []OSResponse {
	out := make([]OSResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOS(o))
	}
	return out
}

// DiagnosisResponse wraps a generated diagnosis text.
type DiagnosisResponse struct {
	Diagnostico string `json:"diagnostico"`
}
