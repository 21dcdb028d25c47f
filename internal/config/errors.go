package config

import (
	"fmt"
)

// ConfigError indica configuração inválida detectada na carga.
// É fatal: o processo não deve subir com pesos inconsistentes.
type ConfigError struct {
	Option string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuração inválida (%s): %s", e.Option, e.Reason)
}
