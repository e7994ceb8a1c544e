package utils

import "os"

// GetEnv lê uma variável de ambiente com valor padrão.
func GetEnv(chave, padrao string) string {
	if v := os.Getenv(chave); v != "" {
		return v
	}
	return padrao
}
