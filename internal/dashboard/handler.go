package dashboard

import (
	"encoding/json"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/gestaolocadora/api-locadora/internal/aluguel"
	"github.com/gestaolocadora/api-locadora/internal/cliente"
	"github.com/gestaolocadora/api-locadora/internal/pagamento"
	"github.com/gestaolocadora/api-locadora/internal/veiculo"
)

type Handler struct {
	DB *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

// ResumoDTO é o painel geral da locadora.
type ResumoDTO struct {
	TotalVeiculos        int64   `json:"totalVeiculos"`
	VeiculosAlugados     int64   `json:"veiculosAlugados"`
	VeiculosDisponiveis  int64   `json:"veiculosDisponiveis"`
	TotalClientes        int64   `json:"totalClientes"`
	AlugueisAtivos       int64   `json:"alugueisAtivos"`
	PagamentosPendentes  int64   `json:"pagamentosPendentes"`
	PagamentosAtrasados  int64   `json:"pagamentosAtrasados"`
	ReceitaMensal        float64 `json:"receitaMensal"`
}

// GET /dashboard/resumo
func (h *Handler) Resumo(w http.ResponseWriter, r *http.Request) {
	var resumo ResumoDTO

	contagens := []struct {
		destino *int64
		query   *gorm.DB
	}{
		{&resumo.TotalVeiculos, h.DB.Model(&veiculo.Veiculo{})},
		{&resumo.VeiculosAlugados, h.DB.Model(&veiculo.Veiculo{}).Where("status = ?", veiculo.StatusAlugado)},
		{&resumo.VeiculosDisponiveis, h.DB.Model(&veiculo.Veiculo{}).Where("status = ?", veiculo.StatusDisponivel)},
		{&resumo.TotalClientes, h.DB.Model(&cliente.Cliente{})},
		{&resumo.AlugueisAtivos, h.DB.Model(&aluguel.Aluguel{}).Where("status = ?", aluguel.StatusAtivo)},
		{&resumo.PagamentosPendentes, h.DB.Model(&pagamento.Pagamento{}).
			Where("status IN ?", []string{pagamento.StatusPendente, pagamento.StatusParcial})},
		{&resumo.PagamentosAtrasados, h.DB.Model(&pagamento.Pagamento{}).
			Where("status = ?", pagamento.StatusAtrasado)},
	}
	for _, c := range contagens {
		if err := c.query.Count(c.destino).Error; err != nil {
			http.Error(w, "Erro ao montar resumo", http.StatusInternalServerError)
			return
		}
	}

	// Receita do mês corrente: soma do que foi efetivamente recebido.
	agora := time.Now()
	inicioMes := time.Date(agora.Year(), agora.Month(), 1, 0, 0, 0, 0, agora.Location())
	err := h.DB.Model(&pagamento.Pagamento{}).
		Where("data_pagamento >= ?", inicioMes).
		Select("COALESCE(SUM(valor_pago), 0)").
		Scan(&resumo.ReceitaMensal).Error
	if err != nil {
		http.Error(w, "Erro ao montar resumo", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resumo)
}
