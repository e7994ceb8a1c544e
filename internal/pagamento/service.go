package pagamento

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/gestaolocadora/api-locadora/internal/calculos"
)

var (
	ErrPagamentoNaoEncontrado = errors.New("pagamento não encontrado")
	ErrPagamentoJaQuitado     = errors.New("pagamento já quitado")
	ErrValorInvalido          = errors.New("valor do pagamento deve ser positivo")
)

// Repositorio é a visão de persistência que o serviço precisa. Os handlers
// usam a implementação gorm; os testes, uma versão em memória.
type Repositorio interface {
	ListarEmAberto() ([]Pagamento, error)
	AtualizarAcrescimos(id uint, status string, multa, juros float64) error
	ProcessarComBloqueio(id uint, fn func(p *Pagamento) error) (*Pagamento, error)
}

// Service concentra a máquina de estados do pagamento: acúmulo de valor
// pago, transições pendente/parcial/atrasado → parcial|pago e a varredura
// que marca atrasos.
type Service struct {
	Repo Repositorio

	// Agora existe para os testes congelarem o relógio.
	Agora func() time.Time
}

func NewService(repo Repositorio) *Service {
	return &Service{Repo: repo, Agora: time.Now}
}

// ProcessarPagamento aplica um valor a um pagamento em aberto. O total
// devido é recalculado com multa e juros no momento do processamento; se o
// acumulado alcança o total, o pagamento é quitado e a data de pagamento
// gravada. Pagamento quitado não aceita novos processamentos.
func (s *Service) ProcessarPagamento(id uint, valorPago float64, dataPagamento time.Time) (*Pagamento, error) {
	if valorPago <= 0 {
		return nil, ErrValorInvalido
	}
	if dataPagamento.IsZero() {
		dataPagamento = s.Agora()
	}

	p, err := s.Repo.ProcessarComBloqueio(id, func(p *Pagamento) error {
		if p.Status == StatusPago {
			return ErrPagamentoJaQuitado
		}

		va := calculos.CalcularValorAtualizado(
			decimal.NewFromFloat(p.Valor), p.DataVencimento, s.Agora())

		novoValorPago := decimal.NewFromFloat(p.ValorPago).
			Add(decimal.NewFromFloat(valorPago))
		p.ValorPago = calculos.EmReais(novoValorPago)

		if novoValorPago.GreaterThanOrEqual(va.Total) {
			p.Status = StatusPago
			quitadoEm := dataPagamento
			p.DataPagamento = &quitadoEm
		} else {
			p.Status = StatusParcial
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPagamentoNaoEncontrado
		}
		return nil, err
	}
	return p, nil
}

// AtualizarAtrasados marca como atrasado todo pagamento pendente ou parcial
// vencido antes da data de referência, persistindo o retrato de multa e
// juros daquele dia. A varredura é idempotente: rodar duas vezes com a mesma
// data produz o mesmo estado. Retorna quantos pagamentos foram marcados.
func (s *Service) AtualizarAtrasados(dataReferencia time.Time) (int, error) {
	if dataReferencia.IsZero() {
		dataReferencia = s.Agora()
	}

	emAberto, err := s.Repo.ListarEmAberto()
	if err != nil {
		return 0, err
	}

	atualizados := 0
	for i := range emAberto {
		p := &emAberto[i]
		if !p.DataVencimento.Before(dataReferencia) {
			continue
		}

		va := calculos.CalcularValorAtualizado(
			decimal.NewFromFloat(p.Valor), p.DataVencimento, dataReferencia)

		err := s.Repo.AtualizarAcrescimos(p.ID, StatusAtrasado,
			calculos.EmReais(va.Multa), calculos.EmReais(va.Juros))
		if err != nil {
			return atualizados, err
		}
		atualizados++
	}
	return atualizados, nil
}
