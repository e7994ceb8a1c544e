package contrato

import (
	"fmt"
	"strings"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// DadosContrato reúne as informações que entram no contrato de locação.
type DadosContrato struct {
	Cliente struct {
		Nome     string `json:"nome"`
		CPF      string `json:"cpf"`
		Telefone string `json:"telefone"`
		Endereco string `json:"endereco"`
	} `json:"cliente"`
	Veiculo struct {
		Placa  string `json:"placa"`
		Modelo string `json:"modelo"`
		Marca  string `json:"marca"`
		Ano    int    `json:"ano"`
		Cor    string `json:"cor"`
	} `json:"veiculo"`
	Aluguel struct {
		DataInicio  time.Time `json:"dataInicio"`
		DataFim     time.Time `json:"dataFim"`
		ValorDiaria float64   `json:"valorDiaria"`
		ValorTotal  float64   `json:"valorTotal"`
	} `json:"aluguel"`
}

var clausulas = []string{
	"1. O locatário se compromete a devolver o veículo nas mesmas condições em que o recebeu.",
	"2. Qualquer dano causado ao veículo será de responsabilidade do locatário.",
	"3. O pagamento deve ser realizado nas datas acordadas.",
	"4. Em caso de atraso no pagamento, será cobrada multa de 2% e juros de 0,033% ao dia.",
	"5. O veículo não pode ser utilizado para fins ilícitos ou fora do território nacional.",
}

// GerarContrato monta o PDF do contrato de locação e devolve seus bytes.
func GerarContrato(dados DadosContrato) ([]byte, error) {
	cfg := config.NewBuilder().Build()
	m := maroto.New(cfg)

	titulo := props.Text{Size: 18, Style: fontstyle.Bold, Align: align.Center}
	secao := props.Text{Size: 14, Style: fontstyle.Bold}
	corpo := props.Text{Size: 11}
	clausula := props.Text{Size: 10}

	m.AddRows(text.NewRow(14, "CONTRATO DE ALUGUEL DE VEÍCULO", titulo))

	m.AddRows(text.NewRow(10, "LOCATÁRIO", secao))
	m.AddRows(
		text.NewRow(6, "Nome: "+dados.Cliente.Nome, corpo),
		text.NewRow(6, "CPF: "+dados.Cliente.CPF, corpo),
		text.NewRow(6, "Telefone: "+dados.Cliente.Telefone, corpo),
		text.NewRow(6, "Endereço: "+dados.Cliente.Endereco, corpo),
	)

	m.AddRows(text.NewRow(10, "VEÍCULO", secao))
	m.AddRows(
		text.NewRow(6, "Marca: "+dados.Veiculo.Marca, corpo),
		text.NewRow(6, "Modelo: "+dados.Veiculo.Modelo, corpo),
		text.NewRow(6, "Placa: "+dados.Veiculo.Placa, corpo),
		text.NewRow(6, fmt.Sprintf("Ano: %d", dados.Veiculo.Ano), corpo),
		text.NewRow(6, "Cor: "+dados.Veiculo.Cor, corpo),
	)

	m.AddRows(text.NewRow(10, "CONDIÇÕES DO ALUGUEL", secao))
	m.AddRows(
		text.NewRow(6, "Data de Início: "+FormatarData(dados.Aluguel.DataInicio), corpo),
		text.NewRow(6, "Data de Término: "+FormatarData(dados.Aluguel.DataFim), corpo),
		text.NewRow(6, "Valor da Diária: "+FormatarMoeda(dados.Aluguel.ValorDiaria), corpo),
		text.NewRow(6, "Valor Total: "+FormatarMoeda(dados.Aluguel.ValorTotal), corpo),
	)

	m.AddRows(text.NewRow(10, "CLÁUSULAS", secao))
	for _, c := range clausulas {
		m.AddRows(text.NewRow(8, c, clausula))
	}

	m.AddRows(
		text.NewRow(16, "_________________________________", corpo),
		text.NewRow(6, "Locador", corpo),
		text.NewRow(16, "_________________________________", corpo),
		text.NewRow(6, "Locatário", corpo),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("gerar contrato: %w", err)
	}
	return doc.GetBytes(), nil
}

// FormatarData formata no padrão brasileiro (dd/mm/aaaa).
func FormatarData(d time.Time) string {
	return d.Format("02/01/2006")
}

// FormatarMoeda formata um valor em reais: R$ 1.234,56.
func FormatarMoeda(valor float64) string {
	negativo := valor < 0
	if negativo {
		valor = -valor
	}

	centavos := int64(valor*100 + 0.5)
	inteiro := centavos / 100
	resto := centavos % 100

	digitos := fmt.Sprintf("%d", inteiro)
	var partes []string
	for len(digitos) > 3 {
		partes = append([]string{digitos[len(digitos)-3:]}, partes...)
		digitos = digitos[:len(digitos)-3]
	}
	partes = append([]string{digitos}, partes...)

	s := fmt.Sprintf("R$ %s,%02d", strings.Join(partes, "."), resto)
	if negativo {
		s = "-" + s
	}
	return s
}
