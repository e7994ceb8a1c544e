package aluguel

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/gestaolocadora/api-locadora/internal/calculos"
	"github.com/gestaolocadora/api-locadora/internal/veiculo"
)

type Handler struct {
	Repo        *Repository
	VeiculoRepo *veiculo.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		Repo:        NewRepository(db),
		VeiculoRepo: veiculo.NewRepository(db),
	}
}

// DTO usado no POST /alugueis.
type AluguelCreateDTO struct {
	VeiculoID   uint      `json:"veiculoId"`
	ClienteID   uint      `json:"clienteId"`
	DataInicio  time.Time `json:"dataInicio"`
	DataFim     time.Time `json:"dataFim"`
	ValorDiaria float64   `json:"valorDiaria"`
}

// DTO usado no PUT /alugueis/{id}. Datas e diária só recalculam o total
// quando informadas em conjunto.
type AluguelUpdateDTO struct {
	DataInicio  *time.Time `json:"dataInicio"`
	DataFim     *time.Time `json:"dataFim"`
	ValorDiaria *float64   `json:"valorDiaria"`
	Status      string     `json:"status"`
}

// POST /alugueis
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var in AluguelCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if in.VeiculoID == 0 || in.ClienteID == 0 {
		http.Error(w, "Veículo e cliente são obrigatórios", http.StatusBadRequest)
		return
	}
	if in.ValorDiaria <= 0 {
		http.Error(w, "Valor da diária deve ser positivo", http.StatusBadRequest)
		return
	}

	total := calculos.CalcularValorTotalAluguel(
		decimal.NewFromFloat(in.ValorDiaria), in.DataInicio, in.DataFim)

	a := Aluguel{
		VeiculoID:   in.VeiculoID,
		ClienteID:   in.ClienteID,
		DataInicio:  in.DataInicio,
		DataFim:     in.DataFim,
		ValorDiaria: in.ValorDiaria,
		ValorTotal:  calculos.EmReais(total),
		Status:      StatusAtivo,
	}
	if err := h.Repo.Criar(&a); err != nil {
		http.Error(w, "Erro ao criar aluguel", http.StatusBadRequest)
		return
	}

	// Marca o veículo como alugado.
	if err := h.VeiculoRepo.AtualizarStatus(in.VeiculoID, veiculo.StatusAlugado); err != nil {
		http.Error(w, "Erro ao atualizar status do veículo", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(a)
}

// GET /alugueis
func (h *Handler) ListarTodos(w http.ResponseWriter, r *http.Request) {
	alugueis, err := h.Repo.ListarTodos()
	if err != nil {
		http.Error(w, "Erro ao listar aluguéis", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(alugueis)
}

// GET /alugueis/ativos
func (h *Handler) ListarAtivos(w http.ResponseWriter, r *http.Request) {
	alugueis, err := h.Repo.ListarAtivos()
	if err != nil {
		http.Error(w, "Erro ao listar aluguéis ativos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(alugueis)
}

// GET /alugueis/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	a, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Aluguel não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(a)
}

// PUT /alugueis/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	a, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Aluguel não encontrado", http.StatusNotFound)
		return
	}

	var in AluguelUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	// O total só é refeito quando período e diária chegam juntos; nunca é
	// recalculado implicitamente.
	if in.DataInicio != nil && in.DataFim != nil && in.ValorDiaria != nil {
		if *in.ValorDiaria <= 0 {
			http.Error(w, "Valor da diária deve ser positivo", http.StatusBadRequest)
			return
		}
		total := calculos.CalcularValorTotalAluguel(
			decimal.NewFromFloat(*in.ValorDiaria), *in.DataInicio, *in.DataFim)
		a.DataInicio = *in.DataInicio
		a.DataFim = *in.DataFim
		a.ValorDiaria = *in.ValorDiaria
		a.ValorTotal = calculos.EmReais(total)
	}

	if in.Status != "" {
		if in.Status != StatusAtivo && in.Status != StatusFinalizado && in.Status != StatusCancelado {
			http.Error(w, "Status inválido. Use 'ativo', 'finalizado' ou 'cancelado'.", http.StatusBadRequest)
			return
		}
		a.Status = in.Status
	}

	if err := h.Repo.Atualizar(a); err != nil {
		http.Error(w, "Erro ao atualizar aluguel", http.StatusInternalServerError)
		return
	}

	// Aluguel encerrado libera o veículo.
	if a.Status == StatusFinalizado || a.Status == StatusCancelado {
		if err := h.VeiculoRepo.AtualizarStatus(a.VeiculoID, veiculo.StatusDisponivel); err != nil {
			http.Error(w, "Erro ao liberar veículo", http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(a)
}

// DELETE /alugueis/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	a, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Aluguel não encontrado", http.StatusNotFound)
		return
	}

	if err := h.VeiculoRepo.AtualizarStatus(a.VeiculoID, veiculo.StatusDisponivel); err != nil {
		http.Error(w, "Erro ao liberar veículo", http.StatusInternalServerError)
		return
	}

	if err := h.Repo.DeletarPorID(uint(id)); err != nil {
		http.Error(w, "Erro ao excluir aluguel", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
