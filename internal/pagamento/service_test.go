package pagamento

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// memRepo é uma implementação em memória de Repositorio para os testes do
// serviço.
type memRepo struct {
	pagamentos map[uint]*Pagamento
}

func newMemRepo(pagamentos ...*Pagamento) *memRepo {
	m := &memRepo{pagamentos: map[uint]*Pagamento{}}
	for _, p := range pagamentos {
		m.pagamentos[p.ID] = p
	}
	return m
}

func (m *memRepo) ListarEmAberto() ([]Pagamento, error) {
	var lista []Pagamento
	for _, p := range m.pagamentos {
		if p.Status == StatusPendente || p.Status == StatusParcial {
			lista = append(lista, *p)
		}
	}
	return lista, nil
}

func (m *memRepo) AtualizarAcrescimos(id uint, status string, multa, juros float64) error {
	p, ok := m.pagamentos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Status = status
	p.Multa = multa
	p.Juros = juros
	return nil
}

func (m *memRepo) ProcessarComBloqueio(id uint, fn func(p *Pagamento) error) (*Pagamento, error) {
	p, ok := m.pagamentos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if err := fn(p); err != nil {
		return nil, err
	}
	copia := *p
	return &copia, nil
}

func dia(ano int, mes time.Month, d int) time.Time {
	return time.Date(ano, mes, d, 0, 0, 0, 0, time.UTC)
}

func novoService(repo Repositorio, agora time.Time) *Service {
	s := NewService(repo)
	s.Agora = func() time.Time { return agora }
	return s
}

func TestProcessarPagamentoParcialDepoisQuitacao(t *testing.T) {
	vencimento := dia(2026, time.May, 1)
	hoje := vencimento.AddDate(0, 0, 10) // total devido: 1023.30

	repo := newMemRepo(&Pagamento{ID: 1, Valor: 1000, DataVencimento: vencimento, Status: StatusPendente})
	s := novoService(repo, hoje)

	p, err := s.ProcessarPagamento(1, 500, hoje)
	require.NoError(t, err)
	require.Equal(t, StatusParcial, p.Status)
	require.Equal(t, 500.0, p.ValorPago)
	require.Nil(t, p.DataPagamento)

	p, err = s.ProcessarPagamento(1, 600, hoje)
	require.NoError(t, err)
	require.Equal(t, StatusPago, p.Status)
	require.Equal(t, 1100.0, p.ValorPago)
	require.NotNil(t, p.DataPagamento)
	require.True(t, p.DataPagamento.Equal(hoje))
}

func TestProcessarPagamentoEmDiaQuitaPeloValorOriginal(t *testing.T) {
	vencimento := dia(2026, time.May, 1)
	hoje := vencimento.AddDate(0, 0, -3)

	repo := newMemRepo(&Pagamento{ID: 1, Valor: 800, DataVencimento: vencimento, Status: StatusPendente})
	s := novoService(repo, hoje)

	p, err := s.ProcessarPagamento(1, 800, hoje)
	require.NoError(t, err)
	require.Equal(t, StatusPago, p.Status)
	require.Equal(t, 800.0, p.ValorPago)
}

func TestProcessarPagamentoAtrasadoExigeAcrescimos(t *testing.T) {
	vencimento := dia(2026, time.May, 1)
	hoje := vencimento.AddDate(0, 0, 10)

	repo := newMemRepo(&Pagamento{ID: 1, Valor: 1000, DataVencimento: vencimento, Status: StatusAtrasado})
	s := novoService(repo, hoje)

	// O valor original não basta quando há multa e juros acumulados.
	p, err := s.ProcessarPagamento(1, 1000, hoje)
	require.NoError(t, err)
	require.Equal(t, StatusParcial, p.Status)

	p, err = s.ProcessarPagamento(1, 23.30, hoje)
	require.NoError(t, err)
	require.Equal(t, StatusPago, p.Status)
	require.Equal(t, 1023.3, p.ValorPago)
}

func TestProcessarPagamentoValorInvalido(t *testing.T) {
	repo := newMemRepo(&Pagamento{ID: 1, Valor: 100, DataVencimento: dia(2026, time.May, 1), Status: StatusPendente})
	s := novoService(repo, dia(2026, time.May, 1))

	_, err := s.ProcessarPagamento(1, 0, time.Time{})
	require.ErrorIs(t, err, ErrValorInvalido)

	_, err = s.ProcessarPagamento(1, -50, time.Time{})
	require.ErrorIs(t, err, ErrValorInvalido)
}

func TestProcessarPagamentoNaoEncontrado(t *testing.T) {
	s := novoService(newMemRepo(), dia(2026, time.May, 1))

	_, err := s.ProcessarPagamento(99, 100, time.Time{})
	require.ErrorIs(t, err, ErrPagamentoNaoEncontrado)
}

func TestPagamentoQuitadoEhTerminal(t *testing.T) {
	quitadoEm := dia(2026, time.May, 5)
	repo := newMemRepo(&Pagamento{
		ID:             1,
		Valor:          100,
		DataVencimento: dia(2026, time.May, 1),
		Status:         StatusPago,
		ValorPago:      100,
		DataPagamento:  &quitadoEm,
	})
	s := novoService(repo, dia(2026, time.June, 1))

	_, err := s.ProcessarPagamento(1, 50, dia(2026, time.June, 1))
	require.ErrorIs(t, err, ErrPagamentoJaQuitado)

	guardado := repo.pagamentos[1]
	require.Equal(t, 100.0, guardado.ValorPago)
	require.True(t, guardado.DataPagamento.Equal(quitadoEm))
}

func TestProcessarPagamentoNuncaDiminuiValorPago(t *testing.T) {
	vencimento := dia(2026, time.May, 1)
	repo := newMemRepo(&Pagamento{ID: 1, Valor: 1000, DataVencimento: vencimento, Status: StatusPendente})
	s := novoService(repo, vencimento)

	anterior := 0.0
	for i := 0; i < 3; i++ {
		p, err := s.ProcessarPagamento(1, 100, vencimento)
		require.NoError(t, err)
		require.Greater(t, p.ValorPago, anterior)
		anterior = p.ValorPago
	}
	require.Equal(t, 300.0, anterior)
}

func TestProcessarPagamentoUsaAgoraQuandoDataOmitida(t *testing.T) {
	hoje := dia(2026, time.May, 20)
	repo := newMemRepo(&Pagamento{ID: 1, Valor: 100, DataVencimento: dia(2026, time.May, 25), Status: StatusPendente})
	s := novoService(repo, hoje)

	p, err := s.ProcessarPagamento(1, 100, time.Time{})
	require.NoError(t, err)
	require.Equal(t, StatusPago, p.Status)
	require.NotNil(t, p.DataPagamento)
	require.True(t, p.DataPagamento.Equal(hoje))
}

func TestAtualizarAtrasadosMarcaVencidosEPersisteAcrescimos(t *testing.T) {
	referencia := dia(2026, time.June, 10)
	repo := newMemRepo(
		&Pagamento{ID: 1, Valor: 1000, DataVencimento: referencia.AddDate(0, 0, -5), Status: StatusPendente},
		&Pagamento{ID: 2, Valor: 500, DataVencimento: referencia.AddDate(0, 0, -1), Status: StatusParcial, ValorPago: 200},
		&Pagamento{ID: 3, Valor: 300, DataVencimento: referencia.AddDate(0, 0, 3), Status: StatusPendente},
	)
	s := novoService(repo, referencia)

	atualizados, err := s.AtualizarAtrasados(referencia)
	require.NoError(t, err)
	require.Equal(t, 2, atualizados)

	// 1000 * 2% e 1000 * 0,033% * 5 dias
	require.Equal(t, StatusAtrasado, repo.pagamentos[1].Status)
	require.Equal(t, 20.0, repo.pagamentos[1].Multa)
	require.Equal(t, 1.65, repo.pagamentos[1].Juros)

	// Parcial vencido também vira atrasado, sem perder o valor já pago.
	require.Equal(t, StatusAtrasado, repo.pagamentos[2].Status)
	require.Equal(t, 200.0, repo.pagamentos[2].ValorPago)

	// Ainda não vencido fica como está.
	require.Equal(t, StatusPendente, repo.pagamentos[3].Status)
	require.Zero(t, repo.pagamentos[3].Multa)
}

func TestAtualizarAtrasadosIdempotente(t *testing.T) {
	referencia := dia(2026, time.June, 10)
	repo := newMemRepo(
		&Pagamento{ID: 1, Valor: 1000, DataVencimento: referencia.AddDate(0, 0, -5), Status: StatusPendente},
	)
	s := novoService(repo, referencia)

	_, err := s.AtualizarAtrasados(referencia)
	require.NoError(t, err)
	primeiro := *repo.pagamentos[1]

	atualizados, err := s.AtualizarAtrasados(referencia)
	require.NoError(t, err)
	require.Zero(t, atualizados)
	require.Equal(t, primeiro, *repo.pagamentos[1])
}
