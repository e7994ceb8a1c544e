package contrato

import (
	"encoding/json"
	"net/http"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// POST /contratos/gerar
// Recebe os dados de cliente, veículo e aluguel e responde com o PDF do
// contrato pronto para download.
func (h *Handler) Gerar(w http.ResponseWriter, r *http.Request) {
	var dados DadosContrato
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if dados.Cliente.Nome == "" || dados.Veiculo.Placa == "" {
		http.Error(w, "Dados do cliente e do veículo são obrigatórios", http.StatusBadRequest)
		return
	}

	pdf, err := GerarContrato(dados)
	if err != nil {
		http.Error(w, "Erro ao gerar contrato", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=contrato.pdf")
	_, _ = w.Write(pdf)
}
