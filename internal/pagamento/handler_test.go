package pagamento

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func ptrFloat(v float64) *float64 { return &v }

func ptrTime(v time.Time) *time.Time { return &v }

func TestAplicarAtualizacao(t *testing.T) {
	vencimento := dia(2026, time.May, 1)
	novoVencimento := dia(2026, time.June, 1)

	p := Pagamento{ID: 1, Valor: 1000, DataVencimento: vencimento, Status: StatusPendente}
	err := aplicarAtualizacao(&p, PagamentoUpdateDTO{
		Valor:          ptrFloat(1200),
		DataVencimento: ptrTime(novoVencimento),
		Status:         StatusParcial,
	})
	require.NoError(t, err)
	require.Equal(t, 1200.0, p.Valor)
	require.True(t, p.DataVencimento.Equal(novoVencimento))
	require.Equal(t, StatusParcial, p.Status)
}

func TestAplicarAtualizacaoValidaEntrada(t *testing.T) {
	p := Pagamento{ID: 1, Valor: 1000, DataVencimento: dia(2026, time.May, 1), Status: StatusPendente}

	err := aplicarAtualizacao(&p, PagamentoUpdateDTO{Valor: ptrFloat(-10)})
	require.ErrorIs(t, err, errValorNaoPositivo)

	err = aplicarAtualizacao(&p, PagamentoUpdateDTO{Status: "quitado"})
	require.ErrorIs(t, err, errStatusInvalido)

	require.Equal(t, 1000.0, p.Valor)
	require.Equal(t, StatusPendente, p.Status)
}

func TestAplicarAtualizacaoRejeitaEdicaoDeQuitado(t *testing.T) {
	quitadoEm := dia(2026, time.May, 5)
	original := Pagamento{
		ID:             1,
		Valor:          1000,
		DataVencimento: dia(2026, time.May, 1),
		Status:         StatusPago,
		ValorPago:      1000,
		DataPagamento:  &quitadoEm,
	}

	casos := []struct {
		nome string
		in   PagamentoUpdateDTO
	}{
		{"valor", PagamentoUpdateDTO{Valor: ptrFloat(2000)}},
		{"vencimento", PagamentoUpdateDTO{DataVencimento: ptrTime(dia(2026, time.June, 1))}},
		{"status", PagamentoUpdateDTO{Status: StatusPendente}},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			p := original
			err := aplicarAtualizacao(&p, c.in)
			require.ErrorIs(t, err, ErrPagamentoJaQuitado)
			require.Equal(t, original, p)
		})
	}
}
