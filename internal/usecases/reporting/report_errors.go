package reporting

import (
	"fmt"

	"github.com/pkg/errors"
)

// Erros do contexto de relatórios
var (
	// Erros de validação
	ErrInvalidPeriod    = errors.New("invalid period")
	ErrInvalidDateRange = errors.New("invalid custom date range")
	ErrInvalidTarget    = errors.New("target CPL must not be negative")

	// Erros da fonte de dias
	ErrSourceUnavailable = errors.New("day source unavailable")
	ErrSourceMalformed   = errors.New("day source is malformed")

	ErrGenerateID = errors.New("error generating report ID")
)

// ReportError é um erro com contexto adicional para relatórios
type ReportError struct {
	Err     error  // Erro base
	Code    string // Código de erro da aplicação
	Source  string // Fonte de dias envolvida
	Details string // Detalhes adicionais
}

func (e *ReportError) Error() string {
	msg := e.Err.Error()
	if e.Source != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Source)
	}
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	return msg
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

// ErrorCode permite que appErrors.CodeOf encontre o código na cadeia
func (e *ReportError) ErrorCode() string {
	return e.Code
}

func NewReportError(err error, code, source, details string) *ReportError {
	return &ReportError{
		Err:     err,
		Code:    code,
		Source:  source,
		Details: details,
	}
}
