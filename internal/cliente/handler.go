package cliente

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

// POST /clientes
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var c Cliente
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if c.Nome == "" || c.CPF == "" {
		http.Error(w, "Nome e CPF são obrigatórios", http.StatusBadRequest)
		return
	}
	c.ID = 0
	if err := h.Repo.Criar(&c); err != nil {
		http.Error(w, "Erro ao criar cliente", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(c)
}

// GET /clientes
func (h *Handler) ListarTodos(w http.ResponseWriter, r *http.Request) {
	clientes, err := h.Repo.ListarTodos()
	if err != nil {
		http.Error(w, "Erro ao listar clientes", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(clientes)
}

// GET /clientes/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	c, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Cliente não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(c)
}

// PUT /clientes/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Cliente não encontrado", http.StatusNotFound)
		return
	}

	var in Cliente
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	if in.Nome != "" {
		existente.Nome = in.Nome
	}
	if in.CPF != "" {
		existente.CPF = in.CPF
	}
	if in.Telefone != "" {
		existente.Telefone = in.Telefone
	}
	if in.Email != "" {
		existente.Email = in.Email
	}
	if in.Endereco != "" {
		existente.Endereco = in.Endereco
	}

	if err := h.Repo.Atualizar(existente); err != nil {
		http.Error(w, "Erro ao atualizar cliente", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(existente)
}

// DELETE /clientes/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.DeletarPorID(uint(id)); err != nil {
		if err == gorm.ErrRecordNotFound {
			http.Error(w, "Cliente não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao excluir cliente", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
