package reporting

import (
	"errors"
	"fmt"

	"github.com/vfg2006/apotek-report-api/pkg/apiErrors"
)

var (
	// Erros de busca na API do Apotek
	ErrFetchFailed = errors.New("falha ao buscar dados da API do Apotek")

	// Erros de validação
	ErrInvalidMode  = errors.New("modo de relatório inválido")
	ErrInvalidMonth = errors.New("mês inválido")

	// Erros do histórico persistido
	ErrHistoryUnavailable = errors.New("histórico de vendas desabilitado")
	ErrHistoryStorage     = errors.New("erro ao consultar o histórico de vendas")

	// Erros de exportação
	ErrExportFailed = errors.New("erro ao gerar o arquivo do relatório")
)

// ReportError é um erro do relatório com o código da API
type ReportError struct {
	Err     error
	Code    string
	Details string
}

func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func NewReportError(baseErr error, code string, details string) *ReportError {
	return &ReportError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// ErrorCode retorna o código da API para um erro do relatório
func ErrorCode(err error) string {
	var reportErr *ReportError
	if errors.As(err, &reportErr) && reportErr.Code != "" {
		return reportErr.Code
	}

	switch {
	case errors.Is(err, ErrFetchFailed):
		return apiErrors.ErrExternalService
	case errors.Is(err, ErrInvalidMode):
		return apiErrors.ErrInvalidRequest
	case errors.Is(err, ErrInvalidMonth):
		return apiErrors.ErrInvalidFormat
	case errors.Is(err, ErrHistoryUnavailable):
		return apiErrors.ErrUnavailable
	case errors.Is(err, ErrHistoryStorage):
		return apiErrors.ErrDatabaseOperation
	default:
		return apiErrors.ErrInternalServer
	}
}

func fetchError(stage string, err error) *ReportError {
	return NewReportError(ErrFetchFailed, apiErrors.ErrExternalService, fmt.Sprintf("%s: %v", stage, err))
}
