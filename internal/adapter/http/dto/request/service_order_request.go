package request

import (
	"assistec_os/internal/domain/entities"
	"assistec_os/internal/usecase"
)

// CreateOSRequest is the intake payload. Field presence is validated by the
// usecase (clienteId, tipoAparelho, marcaModelo and problemaRelatado are
// required); everything else is optional with lifecycle defaults.
type CreateOSRequest struct {
	ClienteID          string  `json:"clienteId"`
	TipoAparelho       string  `json:"tipoAparelho"`
	MarcaModelo        string  `json:"marcaModelo"`
	ImeiSerial         string  `json:"imeiSerial"`
	CorAparelho        string  `json:"corAparelho"`
	ProblemaRelatado   string  `json:"problemaRelatado"`
	DiagnosticoTecnico string  `json:"diagnosticoTecnico"`
	PrazoEstimado      int     `json:"prazoEstimado"`
	ValorOrcamento     float64 `json:"valorOrcamento"`
	Status             string  `json:"status"`
	Prioridade         string  `json:"prioridade"`
	Observacoes        string  `json:"observacoes"`
}

func (r CreateOSRequest) ToInput() usecase.CreateOSInput {
	return usecase.CreateOSInput{
		ClientID:      r.ClienteID,
		DeviceType:    r.TipoAparelho,
		BrandModel:    r.MarcaModelo,
		SerialIMEI:    r.ImeiSerial,
		DeviceColor:   r.CorAparelho,
		ReportedIssue: r.ProblemaRelatado,
		Diagnosis:     r.DiagnosticoTecnico,
		EstimatedDays: r.PrazoEstimado,
		BudgetValue:   r.ValorOrcamento,
		Status:        entities.OSStatus(r.Status),
		Priority:      entities.Priority(r.Prioridade),
		Notes:         r.Observacoes,
	}
}

// UpdateOSRequest carries a partial update; only keys present in the JSON
// body are applied, so every field is a pointer.
type UpdateOSRequest struct {
	ClienteID          *string  `json:"clienteId"`
	TipoAparelho       *string  `json:"tipoAparelho"`
	MarcaModelo        *string  `json:"marcaModelo"`
	ImeiSerial         *string  `json:"imeiSerial"`
	CorAparelho        *string  `json:"corAparelho"`
	ProblemaRelatado   *string  `json:"problemaRelatado"`
	DiagnosticoTecnico *string  `json:"diagnosticoTecnico"`
	PrazoEstimado      *int     `json:"prazoEstimado"`
	ValorOrcamento     *float64 `json:"valorOrcamento"`
	Status             *string  `json:"status"`
	Prioridade         *string  `json:"prioridade"`
	Observacoes        *string  `json:"observacoes"`
}

func (r UpdateOSRequest) ToInput() usecase.UpdateOSInput {
	in := usecase.UpdateOSInput{
		ClientID:      r.ClienteID,
		DeviceType:    r.TipoAparelho,
		BrandModel:    r.MarcaModelo,
		SerialIMEI:    r.ImeiSerial,
		DeviceColor:   r.CorAparelho,
		ReportedIssue: r.ProblemaRelatado,
		Diagnosis:     r.DiagnosticoTecnico,
		EstimatedDays: r.PrazoEstimado,
		BudgetValue:   r.ValorOrcamento,
		Notes:         r.Observacoes,
	}
	if r.Status != nil {
		status := entities.OSStatus(*r.Status)
		in.Status = &status
	}
	if r.Prioridade != nil {
		priority := entities.Priority(*r.Prioridade)
		in.Priority = &priority
	}
	return in
}

// DiagnosisParamsRequest feeds the stateless diagnosis preview; all three
// parameters are required.
type DiagnosisParamsRequest struct {
	TipoAparelho     string `json:"tipoAparelho"`
	MarcaModelo      string `json:"marcaModelo"`
	ProblemaRelatado string `json:"problemaRelatado"`
}
