package usuario

import (
	"encoding/json"
	"net/http"

	"gorm.io/gorm"

	"github.com/gestaolocadora/api-locadora/internal/auth"
	"github.com/gestaolocadora/api-locadora/internal/utils"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

type LoginDTO struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type RegistroDTO struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// POST /auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var in LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	u, err := h.Repo.BuscarPorEmail(in.Email)
	if err != nil || !utils.CheckSenha(u.Senha, in.Senha) {
		http.Error(w, "Credenciais inválidas", http.StatusUnauthorized)
		return
	}

	token, err := auth.GenerateAccessToken(u.ID)
	if err != nil {
		http.Error(w, "Erro ao gerar token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"token":   token,
		"usuario": u,
	})
}

// POST /auth/registrar
func (h *Handler) Registrar(w http.ResponseWriter, r *http.Request) {
	var in RegistroDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if in.Nome == "" || in.Email == "" || len(in.Senha) < 6 {
		http.Error(w, "Nome, email e senha (mínimo 6 caracteres) são obrigatórios", http.StatusBadRequest)
		return
	}

	hash, err := utils.HashSenha(in.Senha)
	if err != nil {
		http.Error(w, "Erro ao processar senha", http.StatusInternalServerError)
		return
	}

	u := Usuario{Nome: in.Nome, Email: in.Email, Senha: hash}
	if err := h.Repo.Criar(&u); err != nil {
		http.Error(w, "Erro ao criar usuário", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(u)
}
