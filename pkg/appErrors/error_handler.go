package appErrors

import (
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da aplicação
const (
	// Erros de validação
	ErrInvalidRequest = "VAL_001" // Parâmetros inválidos
	ErrInvalidFormat  = "VAL_003" // Formato de dados inválido

	// Erros da fonte de dias
	ErrSourceNotFound = "SRC_001" // Arquivo de dias não encontrado

	// Erros internos
	ErrInternal = "SRV_001" // Erro interno
)

// Mapeamento de códigos de erro para o código de saída do processo
var exitCodeMap = map[string]int{
	ErrInvalidRequest: 2,
	ErrInvalidFormat:  3,
	ErrSourceNotFound: 4,
	ErrInternal:       1,
}

// AppError é o documento de erro escrito pela CLI
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// Coder é implementado por erros que carregam um código da aplicação
type Coder interface {
	ErrorCode() string
}

// ExitCode retorna o código de saída do processo para o código de erro
func ExitCode(code string) int {
	if exit, ok := exitCodeMap[code]; ok {
		return exit
	}
	return 1
}

// CodeOf procura um código na cadeia de erros. Sem código retorna ErrInternal.
func CodeOf(err error) string {
	var coder Coder
	if errors.As(err, &coder) {
		return coder.ErrorCode()
	}
	return ErrInternal
}

// WriteError escreve o erro padronizado em JSON
func WriteError(w io.Writer, code string, message string, details any) error {
	appErr := AppError{
		Code:    code,
		Message: message,
		Details: details,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(appErr)
}

// FromError cria um AppError a partir de um erro Go, usando o código da cadeia
func FromError(err error) AppError {
	if err == nil {
		return AppError{
			Code:    ErrInternal,
			Message: "unknown error",
		}
	}

	return AppError{
		Code:    CodeOf(err),
		Message: err.Error(),
	}
}
