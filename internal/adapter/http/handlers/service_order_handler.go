package handlers

import (
	"errors"
	"net/http"

	request "assistec_os/internal/adapter/http/dto/request"
	response "assistec_os/internal/adapter/http/dto/response"
	"assistec_os/internal/usecase"
	"assistec_os/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOSPayload = pkg.NewDomainErrorSimple("INVALID_OS_INPUT", "Payload inválido", http.StatusBadRequest)
)

// ServiceOrderHandler handles HTTP requests for the service-order lifecycle.

type ServiceOrderHandler struct {
	usecase usecase.IServiceOrderUseCase
}

func NewServiceOrderHandler(uc usecase.IServiceOrderUseCase) *ServiceOrderHandler {
	return &ServiceOrderHandler{usecase: uc}
}

func (h *ServiceOrderHandler) ListOS(c *gin.Context) {
	orders, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapOSError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOSList(orders))
}

func (h *ServiceOrderHandler) CreateOS(c *gin.Context) {
	var payload request.CreateOSRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOSPayload.HTTPStatus, errInvalidOSPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapOSError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromOS(created))
}

func (h *ServiceOrderHandler) GetOS(c *gin.Context) {
	o, err := h.usecase.Get(c.Request.Context(), c.Param("os_id"))
	if err != nil {
		appErr := mapOSError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOS(o))
}

func (h *ServiceOrderHandler) UpdateOS(c *gin.Context) {
	var payload request.UpdateOSRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOSPayload.HTTPStatus, errInvalidOSPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("os_id"), payload.ToInput())
	if err != nil {
		appErr := mapOSError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOS(updated))
}

func (h *ServiceOrderHandler) DeleteOS(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("os_id")); err != nil {
		appErr := mapOSError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// GenerateDiagnosis regenerates the AI diagnosis for an existing order. A
// provider failure here is surfaced to the caller, unlike the silent
// degradation during intake.
func (h *ServiceOrderHandler) GenerateDiagnosis(c *gin.Context) {
	diagnosis, err := h.usecase.RegenerateDiagnosis(c.Request.Context(), c.Param("os_id"))
	if err != nil {
		appErr := mapOSError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.DiagnosisResponse{Diagnostico: diagnosis})
}

// PreviewDiagnosis generates a diagnosis from raw parameters without
// touching any order.
func (h *ServiceOrderHandler) PreviewDiagnosis(c *gin.Context) {
	var payload request.DiagnosisParamsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOSPayload.HTTPStatus, errInvalidOSPayload.ToHTTPError())
		return
	}

	diagnosis, err := h.usecase.PreviewDiagnosis(
		c.Request.Context(),
		payload.TipoAparelho,
		payload.MarcaModelo,
		payload.ProblemaRelatado,
	)
	if err != nil {
		if errors.Is(err, usecase.ErrMissingFields) {
			appErr := pkg.NewDomainErrorSimple(
				"PARAMETROS_OBRIGATORIOS",
				"Parâmetros obrigatórios: tipoAparelho, marcaModelo, problemaRelatado",
				http.StatusBadRequest,
			)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		appErr := mapOSError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.DiagnosisResponse{Diagnostico: diagnosis})
}

func mapOSError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingFields):
		return pkg.NewDomainErrorSimple(
			"CAMPOS_OBRIGATORIOS",
			"Campos obrigatórios: clienteId, tipoAparelho, marcaModelo, problemaRelatado",
			http.StatusBadRequest,
		)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENTE_NAO_ENCONTRADO", "Cliente não encontrado", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOSNotFound), errors.Is(err, usecase.ErrInvalidOSID):
		return pkg.NewDomainErrorSimple("OS_NAO_ENCONTRADA", "OS não encontrada", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDiagnosisUnavailable):
		return pkg.NewDomainError("FALHA_DIAGNOSTICO", "Falha ao gerar diagnóstico", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro interno do servidor", err, http.StatusInternalServerError)
	}
}
