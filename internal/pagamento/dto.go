package pagamento

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestaolocadora/api-locadora/internal/calculos"
)

// PagamentoProjetado é o pagamento acrescido da projeção de multa e juros
// calculada na hora da leitura. Os campos projetados ficam vazios para
// pagamentos já quitados e nunca são persistidos.
type PagamentoProjetado struct {
	Pagamento
	ValorAtualizado  *float64 `json:"valorAtualizado,omitempty"`
	MultaAtualizada  *float64 `json:"multaAtualizada,omitempty"`
	JurosAtualizados *float64 `json:"jurosAtualizados,omitempty"`
	DiasAtraso       *int     `json:"diasAtraso,omitempty"`
}

// Projetar monta a visão de leitura de um pagamento na data de referência.
func Projetar(p Pagamento, dataReferencia time.Time) PagamentoProjetado {
	if p.Status == StatusPago {
		return PagamentoProjetado{Pagamento: p}
	}

	va := calculos.CalcularValorAtualizado(
		decimal.NewFromFloat(p.Valor), p.DataVencimento, dataReferencia)

	total := calculos.EmReais(va.Total)
	multa := calculos.EmReais(va.Multa)
	juros := calculos.EmReais(va.Juros)
	dias := va.DiasAtraso

	return PagamentoProjetado{
		Pagamento:        p,
		ValorAtualizado:  &total,
		MultaAtualizada:  &multa,
		JurosAtualizados: &juros,
		DiasAtraso:       &dias,
	}
}

// ProjetarLista aplica Projetar a uma lista de pagamentos.
func ProjetarLista(pagamentos []Pagamento, dataReferencia time.Time) []PagamentoProjetado {
	projetados := make([]PagamentoProjetado, 0, len(pagamentos))
	for _, p := range pagamentos {
		projetados = append(projetados, Projetar(p, dataReferencia))
	}
	return projetados
}
