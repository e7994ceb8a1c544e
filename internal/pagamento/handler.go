package pagamento

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	Repo    *Repository
	Service *Service

	// Notificar, quando configurado, é chamado após a varredura de atraso
	// com a quantidade de pagamentos recém-marcados.
	Notificar func(quantidade int)
}

func NewHandler(db *gorm.DB) *Handler {
	repo := NewRepository(db)
	return &Handler{Repo: repo, Service: NewService(repo)}
}

// DTO usado no POST /pagamentos.
type PagamentoCreateDTO struct {
	AluguelID      uint      `json:"aluguelId"`
	Valor          float64   `json:"valor"`
	DataVencimento time.Time `json:"dataVencimento"`
}

// DTO usado no PUT /pagamentos/{id}.
type PagamentoUpdateDTO struct {
	Valor          *float64   `json:"valor"`
	DataVencimento *time.Time `json:"dataVencimento"`
	Status         string     `json:"status"`
}

// DTO usado no POST /pagamentos/{id}/processar.
type ProcessarDTO struct {
	ValorPago     float64    `json:"valorPago"`
	DataPagamento *time.Time `json:"dataPagamento"`
}

// POST /pagamentos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var in PagamentoCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if in.AluguelID == 0 {
		http.Error(w, "Aluguel é obrigatório", http.StatusBadRequest)
		return
	}
	if in.Valor <= 0 {
		http.Error(w, "Valor deve ser positivo", http.StatusBadRequest)
		return
	}
	if in.DataVencimento.IsZero() {
		http.Error(w, "Data de vencimento é obrigatória", http.StatusBadRequest)
		return
	}

	p := Pagamento{
		AluguelID:      in.AluguelID,
		Valor:          in.Valor,
		DataVencimento: in.DataVencimento,
		Status:         StatusPendente,
	}
	if err := h.Repo.Criar(&p); err != nil {
		http.Error(w, "Erro ao criar pagamento", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(p)
}

// GET /pagamentos
func (h *Handler) ListarTodos(w http.ResponseWriter, r *http.Request) {
	pagamentos, err := h.Repo.ListarTodos()
	if err != nil {
		http.Error(w, "Erro ao listar pagamentos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(ProjetarLista(pagamentos, time.Now()))
}

// GET /pagamentos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	p, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Pagamento não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(Projetar(*p, time.Now()))
}

// GET /alugueis/{id}/pagamentos
func (h *Handler) ListarPorAluguel(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do aluguel inválido", http.StatusBadRequest)
		return
	}
	pagamentos, err := h.Repo.ListarPorAluguel(uint(id))
	if err != nil {
		http.Error(w, "Erro ao listar pagamentos do aluguel", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(ProjetarLista(pagamentos, time.Now()))
}

// GET /pagamentos/proximos-vencimento?dias=7
func (h *Handler) ListarProximosVencimento(w http.ResponseWriter, r *http.Request) {
	dias := 7
	if v := r.URL.Query().Get("dias"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			dias = n
		}
	}

	limite := time.Now().AddDate(0, 0, dias)
	pagamentos, err := h.Repo.ListarProximosVencimento(limite)
	if err != nil {
		http.Error(w, "Erro ao buscar pagamentos próximos do vencimento", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(ProjetarLista(pagamentos, time.Now()))
}

// POST /pagamentos/{id}/processar
func (h *Handler) Processar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var in ProcessarDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	var dataPagamento time.Time
	if in.DataPagamento != nil {
		dataPagamento = *in.DataPagamento
	}

	p, err := h.Service.ProcessarPagamento(uint(id), in.ValorPago, dataPagamento)
	if err != nil {
		switch {
		case errors.Is(err, ErrPagamentoNaoEncontrado):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, ErrValorInvalido), errors.Is(err, ErrPagamentoJaQuitado):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "Erro ao processar pagamento", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

// POST /pagamentos/atualizar-atrasados?dataReferencia=2026-01-31
func (h *Handler) AtualizarAtrasados(w http.ResponseWriter, r *http.Request) {
	var dataReferencia time.Time
	if v := r.URL.Query().Get("dataReferencia"); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			http.Error(w, "Data de referência inválida, use AAAA-MM-DD", http.StatusBadRequest)
			return
		}
		dataReferencia = d
	}

	atualizados, err := h.Service.AtualizarAtrasados(dataReferencia)
	if err != nil {
		http.Error(w, "Erro ao atualizar pagamentos atrasados", http.StatusInternalServerError)
		return
	}

	if atualizados > 0 && h.Notificar != nil {
		h.Notificar(atualizados)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"message":     "Pagamentos atualizados com sucesso",
		"atualizados": atualizados,
	})
}

var (
	errValorNaoPositivo = errors.New("valor deve ser positivo")
	errStatusInvalido   = errors.New("status inválido, use 'pendente', 'parcial', 'pago' ou 'atrasado'")
)

// aplicarAtualizacao valida e aplica o DTO de atualização sobre o
// pagamento. Pagamento quitado é um registro congelado: nenhum campo pode
// ser alterado depois da quitação.
func aplicarAtualizacao(p *Pagamento, in PagamentoUpdateDTO) error {
	if p.Status == StatusPago {
		return ErrPagamentoJaQuitado
	}

	if in.Valor != nil {
		if *in.Valor <= 0 {
			return errValorNaoPositivo
		}
		p.Valor = *in.Valor
	}
	if in.DataVencimento != nil {
		p.DataVencimento = *in.DataVencimento
	}
	if in.Status != "" {
		if in.Status != StatusPendente && in.Status != StatusParcial &&
			in.Status != StatusPago && in.Status != StatusAtrasado {
			return errStatusInvalido
		}
		p.Status = in.Status
	}
	return nil
}

// PUT /pagamentos/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	p, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Pagamento não encontrado", http.StatusNotFound)
		return
	}

	var in PagamentoUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	if err := aplicarAtualizacao(p, in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Repo.Atualizar(p); err != nil {
		http.Error(w, "Erro ao atualizar pagamento", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

// DELETE /pagamentos/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.DeletarPorID(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Pagamento não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao excluir pagamento", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
