package contrato

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func dadosExemplo() DadosContrato {
	var d DadosContrato
	d.Cliente.Nome = "Maria Souza"
	d.Cliente.CPF = "123.456.789-00"
	d.Cliente.Telefone = "(11) 99999-0000"
	d.Cliente.Endereco = "Rua das Flores, 123"
	d.Veiculo.Placa = "ABC1D23"
	d.Veiculo.Modelo = "Onix"
	d.Veiculo.Marca = "Chevrolet"
	d.Veiculo.Ano = 2023
	d.Veiculo.Cor = "Prata"
	d.Aluguel.DataInicio = time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	d.Aluguel.DataFim = time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	d.Aluguel.ValorDiaria = 150
	d.Aluguel.ValorTotal = 750
	return d
}

func TestGerarContrato(t *testing.T) {
	pdf, err := GerarContrato(dadosExemplo())
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	require.Equal(t, "%PDF", string(pdf[:4]))
}

func TestFormatarMoeda(t *testing.T) {
	casos := []struct {
		valor    float64
		esperado string
	}{
		{150, "R$ 150,00"},
		{1234.56, "R$ 1.234,56"},
		{1000000, "R$ 1.000.000,00"},
		{0.5, "R$ 0,50"},
		{-99.9, "-R$ 99,90"},
	}
	for _, c := range casos {
		require.Equal(t, c.esperado, FormatarMoeda(c.valor))
	}
}

func TestFormatarData(t *testing.T) {
	d := time.Date(2026, time.March, 5, 14, 30, 0, 0, time.UTC)
	require.Equal(t, "05/03/2026", FormatarData(d))
}
