package calculos

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Percentuais contratuais de atraso: multa única de 2% sobre o valor
// original e juros simples de 0,033% ao dia, sem capitalização.
var (
	taxaMulta    = decimal.NewFromFloat(0.02)
	taxaJurosDia = decimal.NewFromFloat(0.00033)
)

// ValorAtualizado é o resultado do cálculo de acréscimos de um pagamento
// em uma data de referência.
type ValorAtualizado struct {
	Multa      decimal.Decimal
	Juros      decimal.Decimal
	Total      decimal.Decimal
	DiasAtraso int
}

// CalcularValorAtualizado calcula multa e juros de um pagamento vencido.
// A data de referência é recebida por parâmetro para manter a função
// determinística; quem chama decide o "hoje".
func CalcularValorAtualizado(valorOriginal decimal.Decimal, dataVencimento, dataReferencia time.Time) ValorAtualizado {
	diasAtraso := int(math.Floor(dataReferencia.Sub(dataVencimento).Hours() / 24))

	if diasAtraso <= 0 {
		return ValorAtualizado{
			Multa: decimal.Zero,
			Juros: decimal.Zero,
			Total: valorOriginal,
		}
	}

	multa := valorOriginal.Mul(taxaMulta)
	juros := valorOriginal.Mul(taxaJurosDia).Mul(decimal.NewFromInt(int64(diasAtraso)))

	return ValorAtualizado{
		Multa:      multa,
		Juros:      juros,
		Total:      valorOriginal.Add(multa).Add(juros),
		DiasAtraso: diasAtraso,
	}
}

// CalcularValorTotalAluguel calcula o valor total de um aluguel a partir da
// diária e do período. Fração de dia conta como dia cheio e o mínimo cobrado
// é sempre uma diária, mesmo com período zerado ou invertido.
func CalcularValorTotalAluguel(valorDiaria decimal.Decimal, dataInicio, dataFim time.Time) decimal.Decimal {
	dias := int(math.Ceil(dataFim.Sub(dataInicio).Hours() / 24))
	if dias < 1 {
		dias = 1
	}
	return valorDiaria.Mul(decimal.NewFromInt(int64(dias)))
}

// EmReais arredonda para centavos e converte para float64, usado na
// fronteira com o banco e com o JSON da API.
func EmReais(valor decimal.Decimal) float64 {
	f, _ := valor.Round(2).Float64()
	return f
}
