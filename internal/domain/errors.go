package domain

import (
	"errors"
	"fmt"
)

// ValidationError indica entrada malformada ou fora da janela combinada.
// É sempre um bug do chamador: não deve ser repetida nem silenciada.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// IsValidationError informa se o erro (ou sua cadeia) é um erro de validação
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
