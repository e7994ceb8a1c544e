package manutencao

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
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// DTO usado no POST/PUT de manutenções.
type ManutencaoDTO struct {
	VeiculoID uint       `json:"veiculoId"`
	Tipo      string     `json:"tipo"`
	Categoria string     `json:"categoria"`
	Custo     *float64   `json:"custo"`
	Data      *time.Time `json:"data"`
	Descricao string     `json:"descricao"`
	Km        *int       `json:"km"`
}

// ResumoGastosDTO é a resposta de GET /manutencoes/veiculo/{id}/resumo.
type ResumoGastosDTO struct {
	TotalGasto   float64            `json:"totalGasto"`
	PorCategoria map[string]float64 `json:"porCategoria"`
	Quantidade   int                `json:"quantidade"`
}

// POST /manutencoes
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var in ManutencaoDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if in.VeiculoID == 0 {
		http.Error(w, "Veículo é obrigatório", http.StatusBadRequest)
		return
	}
	if in.Tipo != TipoPreventiva && in.Tipo != TipoCorretiva {
		http.Error(w, "Tipo inválido. Use 'preventiva' ou 'corretiva'.", http.StatusBadRequest)
		return
	}
	if in.Custo == nil || *in.Custo <= 0 {
		http.Error(w, "Custo deve ser positivo", http.StatusBadRequest)
		return
	}
	if in.Data == nil {
		http.Error(w, "Data é obrigatória", http.StatusBadRequest)
		return
	}

	m := Manutencao{
		VeiculoID: in.VeiculoID,
		Tipo:      in.Tipo,
		Categoria: in.Categoria,
		Custo:     *in.Custo,
		Data:      *in.Data,
		Descricao: in.Descricao,
		Km:        in.Km,
	}
	if err := h.Repo.Criar(&m); err != nil {
		http.Error(w, "Erro ao criar manutenção", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(m)
}

// GET /manutencoes
func (h *Handler) ListarTodas(w http.ResponseWriter, r *http.Request) {
	manutencoes, err := h.Repo.ListarTodas()
	if err != nil {
		http.Error(w, "Erro ao listar manutenções", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(manutencoes)
}

// GET /manutencoes/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	m, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Manutenção não encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(m)
}

// GET /manutencoes/veiculo/{veiculoId}
func (h *Handler) ListarPorVeiculo(w http.ResponseWriter, r *http.Request) {
	veiculoID, err := strconv.Atoi(mux.Vars(r)["veiculoId"])
	if err != nil {
		http.Error(w, "ID do veículo inválido", http.StatusBadRequest)
		return
	}
	manutencoes, err := h.Repo.ListarPorVeiculo(uint(veiculoID))
	if err != nil {
		http.Error(w, "Erro ao listar manutenções do veículo", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(manutencoes)
}

// GET /manutencoes/veiculo/{veiculoId}/resumo
func (h *Handler) ResumoGastos(w http.ResponseWriter, r *http.Request) {
	veiculoID, err := strconv.Atoi(mux.Vars(r)["veiculoId"])
	if err != nil {
		http.Error(w, "ID do veículo inválido", http.StatusBadRequest)
		return
	}
	manutencoes, err := h.Repo.ListarPorVeiculo(uint(veiculoID))
	if err != nil {
		http.Error(w, "Erro ao calcular resumo de gastos", http.StatusInternalServerError)
		return
	}

	resumo := ResumoGastosDTO{
		PorCategoria: map[string]float64{},
		Quantidade:   len(manutencoes),
	}
	for _, m := range manutencoes {
		resumo.TotalGasto += m.Custo
		resumo.PorCategoria[m.Categoria] += m.Custo
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resumo)
}

// PUT /manutencoes/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	m, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Manutenção não encontrada", http.StatusNotFound)
		return
	}

	var in ManutencaoDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	if in.Tipo != "" {
		if in.Tipo != TipoPreventiva && in.Tipo != TipoCorretiva {
			http.Error(w, "Tipo inválido. Use 'preventiva' ou 'corretiva'.", http.StatusBadRequest)
			return
		}
		m.Tipo = in.Tipo
	}
	if in.Categoria != "" {
		m.Categoria = in.Categoria
	}
	if in.Custo != nil {
		if *in.Custo <= 0 {
			http.Error(w, "Custo deve ser positivo", http.StatusBadRequest)
			return
		}
		m.Custo = *in.Custo
	}
	if in.Data != nil {
		m.Data = *in.Data
	}
	if in.Descricao != "" {
		m.Descricao = in.Descricao
	}
	if in.Km != nil {
		m.Km = in.Km
	}

	if err := h.Repo.Atualizar(m); err != nil {
		http.Error(w, "Erro ao atualizar manutenção", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(m)
}

// DELETE /manutencoes/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.DeletarPorID(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Manutenção não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao excluir manutenção", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
