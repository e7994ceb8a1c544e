package veiculo

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// DTO usado no POST/PUT de veículos.
type VeiculoDTO struct {
	Placa  string `json:"placa"`
	Modelo string `json:"modelo"`
	Marca  string `json:"marca"`
	Ano    int    `json:"ano"`
	Cor    string `json:"cor"`
	Foto   string `json:"foto"`
	Status string `json:"status"`
}

// POST /veiculos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var in VeiculoDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if in.Placa == "" || in.Modelo == "" || in.Marca == "" {
		http.Error(w, "Placa, modelo e marca são obrigatórios", http.StatusBadRequest)
		return
	}

	v := Veiculo{
		Placa:  in.Placa,
		Modelo: in.Modelo,
		Marca:  in.Marca,
		Ano:    in.Ano,
		Cor:    in.Cor,
		Foto:   in.Foto,
		Status: StatusDisponivel,
	}
	if err := h.Repo.Criar(&v); err != nil {
		http.Error(w, "Erro ao criar veículo", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(v)
}

// GET /veiculos
func (h *Handler) ListarTodos(w http.ResponseWriter, r *http.Request) {
	veiculos, err := h.Repo.ListarTodos()
	if err != nil {
		http.Error(w, "Erro ao listar veículos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(veiculos)
}

// GET /veiculos/disponiveis
func (h *Handler) ListarDisponiveis(w http.ResponseWriter, r *http.Request) {
	veiculos, err := h.Repo.ListarDisponiveis()
	if err != nil {
		http.Error(w, "Erro ao listar veículos disponíveis", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(veiculos)
}

// GET /veiculos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	v, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Veículo não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// PUT /veiculos/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	v, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Veículo não encontrado", http.StatusNotFound)
		return
	}

	var in VeiculoDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	if in.Placa != "" {
		v.Placa = in.Placa
	}
	if in.Modelo != "" {
		v.Modelo = in.Modelo
	}
	if in.Marca != "" {
		v.Marca = in.Marca
	}
	if in.Ano != 0 {
		v.Ano = in.Ano
	}
	if in.Cor != "" {
		v.Cor = in.Cor
	}
	if in.Foto != "" {
		v.Foto = in.Foto
	}
	if in.Status != "" {
		if in.Status != StatusDisponivel && in.Status != StatusAlugado && in.Status != StatusManutencao {
			http.Error(w, "Status inválido. Use 'disponivel', 'alugado' ou 'manutencao'.", http.StatusBadRequest)
			return
		}
		v.Status = in.Status
	}

	if err := h.Repo.Atualizar(v); err != nil {
		http.Error(w, "Erro ao atualizar veículo", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// DELETE /veiculos/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.DeletarPorID(uint(id)); err != nil {
		if err == gorm.ErrRecordNotFound {
			http.Error(w, "Veículo não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao excluir veículo", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
