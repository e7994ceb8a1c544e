package notificacao

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"os"
)

// EnviarAlertaAtraso avisa um webhook externo (WEBHOOK_URL) que a varredura
// marcou pagamentos como atrasados. Sem URL configurada, não faz nada.
func EnviarAlertaAtraso(quantidade int) {
	url := os.Getenv("WEBHOOK_URL")
	if url == "" {
		return
	}

	payload := map[string]interface{}{
		"mensagem":   "Alerta: pagamentos marcados como atrasados",
		"quantidade": quantidade,
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Printf("Erro ao enviar webhook: %v", err)
		return
	}
	defer resp.Body.Close()
}
