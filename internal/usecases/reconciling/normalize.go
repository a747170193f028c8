package reconciling

import "strings"

// revenueKeyPrefix é o prefixo do key-value de campanha emitido pelo ad server
const revenueKeyPrefix = "UTM_CAMPAIGN="

// Normalize gera a chave de junção de um nome de campanha: remove espaços nas
// bordas, o prefixo utm_campaign= (em qualquer caixa) e converte para maiúsculas.
// Nome vazio continua vazio.
func Normalize(name string) string {
	key := strings.ToUpper(strings.TrimSpace(name))

	for strings.HasPrefix(key, revenueKeyPrefix) {
		key = strings.TrimSpace(strings.TrimPrefix(key, revenueKeyPrefix))
	}

	return key
}

// StripRevenuePrefix remove o prefixo utm_campaign= preservando a caixa original
func StripRevenuePrefix(name string) string {
	display := strings.TrimSpace(name)

	for len(display) >= len(revenueKeyPrefix) && strings.EqualFold(display[:len(revenueKeyPrefix)], revenueKeyPrefix) {
		display = strings.TrimSpace(display[len(revenueKeyPrefix):])
	}

	return display
}
