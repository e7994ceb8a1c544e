package calculos

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dia(ano int, mes time.Month, d int) time.Time {
	return time.Date(ano, mes, d, 0, 0, 0, 0, time.UTC)
}

func TestCalcularValorTotalAluguelPeriodoNormal(t *testing.T) {
	diaria := decimal.NewFromFloat(150)
	inicio := dia(2026, time.March, 10)
	fim := dia(2026, time.March, 13) // 3 dias

	total := CalcularValorTotalAluguel(diaria, inicio, fim)
	require.True(t, total.Equal(decimal.NewFromInt(450)), "esperado 450, veio %s", total)
}

func TestCalcularValorTotalAluguelMinimoDeUmaDiaria(t *testing.T) {
	diaria := decimal.NewFromFloat(200)

	casos := []struct {
		nome        string
		inicio, fim time.Time
	}{
		{"mesmo dia", dia(2026, time.March, 10), dia(2026, time.March, 10)},
		{"fim antes do inicio", dia(2026, time.March, 10), dia(2026, time.March, 8)},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			total := CalcularValorTotalAluguel(diaria, c.inicio, c.fim)
			require.True(t, total.Equal(diaria), "esperado uma diária, veio %s", total)
		})
	}
}

func TestCalcularValorTotalAluguelFracaoDeDiaContaComoDiaCheio(t *testing.T) {
	diaria := decimal.NewFromFloat(100)
	inicio := time.Date(2026, time.March, 10, 8, 0, 0, 0, time.UTC)
	fim := time.Date(2026, time.March, 12, 20, 0, 0, 0, time.UTC) // 2 dias e meio

	total := CalcularValorTotalAluguel(diaria, inicio, fim)
	require.True(t, total.Equal(decimal.NewFromInt(300)), "esperado 300, veio %s", total)
}

func TestCalcularValorAtualizadoSemAtraso(t *testing.T) {
	valor := decimal.NewFromFloat(1000)
	vencimento := dia(2026, time.April, 15)

	casos := []struct {
		nome       string
		referencia time.Time
	}{
		{"antes do vencimento", dia(2026, time.April, 10)},
		{"no dia do vencimento", vencimento},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			va := CalcularValorAtualizado(valor, vencimento, c.referencia)
			require.True(t, va.Multa.IsZero())
			require.True(t, va.Juros.IsZero())
			require.True(t, va.Total.Equal(valor))
			require.Zero(t, va.DiasAtraso)
		})
	}
}

func TestCalcularValorAtualizadoDezDiasDeAtraso(t *testing.T) {
	valor := decimal.NewFromFloat(1000)
	vencimento := dia(2026, time.April, 15)
	referencia := vencimento.AddDate(0, 0, 10)

	va := CalcularValorAtualizado(valor, vencimento, referencia)

	require.Equal(t, 10, va.DiasAtraso)
	require.True(t, va.Multa.Equal(decimal.NewFromInt(20)), "multa: %s", va.Multa)
	require.True(t, va.Juros.Equal(decimal.RequireFromString("3.3")), "juros: %s", va.Juros)
	require.True(t, va.Total.Equal(decimal.RequireFromString("1023.3")), "total: %s", va.Total)
}

func TestCalcularValorAtualizadoFracaoDeDiaArredondaParaBaixo(t *testing.T) {
	valor := decimal.NewFromFloat(500)
	vencimento := dia(2026, time.April, 15)
	referencia := vencimento.Add(36 * time.Hour) // um dia e meio

	va := CalcularValorAtualizado(valor, vencimento, referencia)
	require.Equal(t, 1, va.DiasAtraso)
}

func TestEmReais(t *testing.T) {
	require.Equal(t, 1023.3, EmReais(decimal.RequireFromString("1023.3")))
	require.Equal(t, 3.3, EmReais(decimal.RequireFromString("3.3000")))
	require.Equal(t, 10.57, EmReais(decimal.RequireFromString("10.565")))
}
