package pagamento

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestProjetarPagamentoEmAtraso(t *testing.T) {
	vencimento := dia(2026, time.May, 1)
	referencia := vencimento.AddDate(0, 0, 10)
	p := Pagamento{ID: 1, Valor: 1000, DataVencimento: vencimento, Status: StatusPendente}

	proj := Projetar(p, referencia)

	require.NotNil(t, proj.ValorAtualizado)
	require.Equal(t, 1023.3, *proj.ValorAtualizado)
	require.Equal(t, 20.0, *proj.MultaAtualizada)
	require.Equal(t, 3.3, *proj.JurosAtualizados)
	require.Equal(t, 10, *proj.DiasAtraso)
}

func TestProjetarPagamentoEmDia(t *testing.T) {
	vencimento := dia(2026, time.May, 1)
	p := Pagamento{ID: 1, Valor: 500, DataVencimento: vencimento, Status: StatusPendente}

	proj := Projetar(p, vencimento.AddDate(0, 0, -2))

	require.Equal(t, 500.0, *proj.ValorAtualizado)
	require.Zero(t, *proj.MultaAtualizada)
	require.Zero(t, *proj.JurosAtualizados)
	require.Zero(t, *proj.DiasAtraso)
}

func TestProjetarPagamentoQuitadoSemProjecao(t *testing.T) {
	quitadoEm := dia(2026, time.May, 5)
	p := Pagamento{
		ID:             1,
		Valor:          1000,
		DataVencimento: dia(2026, time.May, 1),
		Status:         StatusPago,
		ValorPago:      1023.3,
		DataPagamento:  &quitadoEm,
	}

	proj := Projetar(p, dia(2026, time.December, 1))

	require.Nil(t, proj.ValorAtualizado)
	require.Nil(t, proj.MultaAtualizada)
	require.Nil(t, proj.JurosAtualizados)
	require.Nil(t, proj.DiasAtraso)
	require.Equal(t, 1023.3, proj.ValorPago)
}

func TestProjetarNaoAlteraRetratoPersistido(t *testing.T) {
	vencimento := dia(2026, time.May, 1)
	// Retrato gravado pela varredura no quinto dia de atraso.
	p := Pagamento{
		ID:             1,
		Valor:          1000,
		DataVencimento: vencimento,
		Status:         StatusAtrasado,
		Multa:          20,
		Juros:          1.65,
	}

	// Dez dias depois a projeção mostra o acumulado vivo, mas os campos
	// persistidos seguem com o retrato do dia da varredura.
	proj := Projetar(p, vencimento.AddDate(0, 0, 15))

	require.Equal(t, 20.0, *proj.MultaAtualizada)
	require.Equal(t, 4.95, *proj.JurosAtualizados)
	require.Equal(t, 20.0, proj.Multa)
	require.Equal(t, 1.65, proj.Juros)
	require.Equal(t, 20.0, p.Multa)
	require.Equal(t, 1.65, p.Juros)
}

func TestProjetarLista(t *testing.T) {
	vencimento := dia(2026, time.May, 1)
	quitadoEm := dia(2026, time.April, 30)
	pagamentos := []Pagamento{
		{ID: 1, Valor: 1000, DataVencimento: vencimento, Status: StatusPendente},
		{ID: 2, Valor: 500, DataVencimento: vencimento, Status: StatusPago, ValorPago: 500, DataPagamento: &quitadoEm},
	}

	projetados := ProjetarLista(pagamentos, vencimento.AddDate(0, 0, 10))

	require.Len(t, projetados, 2)
	require.NotNil(t, projetados[0].ValorAtualizado)
	require.Nil(t, projetados[1].ValorAtualizado)
}
