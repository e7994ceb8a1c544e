package vistoria

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const tamanhoMaximoFoto = 10 << 20 // 10 MB

var extensoesPermitidas = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// POST /vistorias/upload
// Recebe uma foto (campo multipart "foto"), grava com nome único no
// diretório de uploads e devolve a URL pública.
func (h *Handler) UploadFoto(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(tamanhoMaximoFoto); err != nil {
		http.Error(w, "Arquivo muito grande ou requisição inválida", http.StatusBadRequest)
		return
	}

	arquivo, header, err := r.FormFile("foto")
	if err != nil {
		http.Error(w, "Nenhuma foto enviada", http.StatusBadRequest)
		return
	}
	defer arquivo.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !extensoesPermitidas[ext] {
		http.Error(w, "Apenas imagens são permitidas", http.StatusBadRequest)
		return
	}

	if err := os.MkdirAll(h.UploadDir, 0o755); err != nil {
		http.Error(w, "Erro ao preparar diretório de uploads", http.StatusInternalServerError)
		return
	}

	nome := uuid.NewString() + ext
	destino, err := os.Create(filepath.Join(h.UploadDir, nome))
	if err != nil {
		http.Error(w, "Erro ao gravar foto", http.StatusInternalServerError)
		return
	}
	defer destino.Close()

	if _, err := io.Copy(destino, arquivo); err != nil {
		http.Error(w, "Erro ao gravar foto", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"url": "/uploads/" + nome})
}
