package vistoria

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

	// UploadDir é o diretório onde as fotos enviadas são gravadas.
	UploadDir string
}

func NewHandler(db *gorm.DB, uploadDir string) *Handler {
	return &Handler{Repo: NewRepository(db), UploadDir: uploadDir}
}

// DTO usado no POST/PUT de vistorias.
type VistoriaDTO struct {
	VeiculoID   uint       `json:"veiculoId"`
	AluguelID   *uint      `json:"aluguelId"`
	Data        *time.Time `json:"data"`
	Tipo        string     `json:"tipo"`
	Fotos       []string   `json:"fotos"`
	Observacoes string     `json:"observacoes"`
}

func tipoValido(tipo string) bool {
	return tipo == TipoEntrada || tipo == TipoSaida || tipo == TipoMensal
}

// POST /vistorias
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var in VistoriaDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if in.VeiculoID == 0 {
		http.Error(w, "Veículo é obrigatório", http.StatusBadRequest)
		return
	}
	if !tipoValido(in.Tipo) {
		http.Error(w, "Tipo inválido. Use 'entrada', 'saida' ou 'mensal'.", http.StatusBadRequest)
		return
	}
	if in.Data == nil {
		http.Error(w, "Data é obrigatória", http.StatusBadRequest)
		return
	}
	if in.Fotos == nil {
		in.Fotos = []string{}
	}

	v := Vistoria{
		VeiculoID:   in.VeiculoID,
		AluguelID:   in.AluguelID,
		Data:        *in.Data,
		Tipo:        in.Tipo,
		Fotos:       in.Fotos,
		Observacoes: in.Observacoes,
	}
	if err := h.Repo.Criar(&v); err != nil {
		http.Error(w, "Erro ao criar vistoria", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(v)
}

// GET /vistorias
func (h *Handler) ListarTodas(w http.ResponseWriter, r *http.Request) {
	vistorias, err := h.Repo.ListarTodas()
	if err != nil {
		http.Error(w, "Erro ao listar vistorias", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(vistorias)
}

// GET /vistorias/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	v, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Vistoria não encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// GET /vistorias/veiculo/{veiculoId}
func (h *Handler) ListarPorVeiculo(w http.ResponseWriter, r *http.Request) {
	veiculoID, err := strconv.Atoi(mux.Vars(r)["veiculoId"])
	if err != nil {
		http.Error(w, "ID do veículo inválido", http.StatusBadRequest)
		return
	}
	vistorias, err := h.Repo.ListarPorVeiculo(uint(veiculoID))
	if err != nil {
		http.Error(w, "Erro ao listar vistorias do veículo", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(vistorias)
}

// PUT /vistorias/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	v, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Vistoria não encontrada", http.StatusNotFound)
		return
	}

	var in VistoriaDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	if in.Data != nil {
		v.Data = *in.Data
	}
	if in.Tipo != "" {
		if !tipoValido(in.Tipo) {
			http.Error(w, "Tipo inválido. Use 'entrada', 'saida' ou 'mensal'.", http.StatusBadRequest)
			return
		}
		v.Tipo = in.Tipo
	}
	if in.Fotos != nil {
		v.Fotos = in.Fotos
	}
	if in.Observacoes != "" {
		v.Observacoes = in.Observacoes
	}

	if err := h.Repo.Atualizar(v); err != nil {
		http.Error(w, "Erro ao atualizar vistoria", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// DELETE /vistorias/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.DeletarPorID(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Vistoria não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao excluir vistoria", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
