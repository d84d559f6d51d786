package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luizeletrico1/sistema-otica-fim/internal/dto"
	"github.com/luizeletrico1/sistema-otica-fim/internal/model"
	"github.com/luizeletrico1/sistema-otica-fim/internal/repository"
	"github.com/luizeletrico1/sistema-otica-fim/internal/store"
)

func newReceitaFixture(t *testing.T) (*receitaService, repository.ClienteRepository) {
	t.Helper()
	st, err := store.New(t.TempDir())
	require.NoError(t, err)
	clientes := repository.NewClienteRepository(st)
	svc := NewReceitaService(clientes).(*receitaService)
	svc.agora = func() time.Time {
		return time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	}
	return svc, clientes
}

func seedClienteComReceita(t *testing.T, clientes repository.ClienteRepository, nome, dataReceita string) *model.Cliente {
	t.Helper()
	ctx := context.Background()
	c := &model.Cliente{Nome: nome, Contato: model.Contato{WhatsApp: "27999990000"}}
	require.NoError(t, clientes.Create(ctx, c))
	if dataReceita != "" {
		require.NoError(t, clientes.AppendReceita(ctx, c.ID, model.Receita{Data: dataReceita}))
	}
	return c
}

func TestAdicionarReceita(t *testing.T) {
	svc, clientes := newReceitaFixture(t)
	c := seedClienteComReceita(t, clientes, "Ana", "")

	atual, err := svc.Adicionar(context.Background(), c.ID, dto.CriarReceitaRequest{
		Data:   "2026-06-01",
		Medico: "Dra. Lima",
	})
	require.NoError(t, err)
	require.Len(t, atual.Receitas, 1)
	assert.Equal(t, "Dra. Lima", atual.Receitas[0].Medico)
}

// Expiry is strictly more than 365 days, counting whole days.
func TestListarVencidasBoundary(t *testing.T) {
	svc, clientes := newReceitaFixture(t)

	// Reference "now" is 15/06/2026. 365 days before is 15/06/2025 — a
	// prescription from that day is NOT expired; one day earlier is.
	seedClienteComReceita(t, clientes, "No Limite", "15/06/2025")
	vencido := seedClienteComReceita(t, clientes, "Vencido", "14/06/2025")
	seedClienteComReceita(t, clientes, "Recente", "2026-01-10")

	vencidas, err := svc.ListarVencidas(context.Background())
	require.NoError(t, err)
	require.Len(t, vencidas, 1)
	assert.Equal(t, vencido.ID, vencidas[0].ClienteID)
	assert.Equal(t, "Vencido", vencidas[0].Nome)
}

func TestListarVencidasAcceptsBothDateFormats(t *testing.T) {
	svc, clientes := newReceitaFixture(t)

	seedClienteComReceita(t, clientes, "Formato BR", "01/01/2024")
	seedClienteComReceita(t, clientes, "Formato ISO", "2024-01-01")

	vencidas, err := svc.ListarVencidas(context.Background())
	require.NoError(t, err)
	assert.Len(t, vencidas, 2)
}

// Garbage dates are skipped, never flagged as expired.
func TestListarVencidasSkipsUnparsableDates(t *testing.T) {
	svc, clientes := newReceitaFixture(t)

	seedClienteComReceita(t, clientes, "Sem Data", "???")
	seedClienteComReceita(t, clientes, "Sem Receita", "")

	vencidas, err := svc.ListarVencidas(context.Background())
	require.NoError(t, err)
	assert.Empty(t, vencidas)
}

// Only the most recent prescription counts: a customer who renewed is fine
// even if an old expired one remains in the record.
func TestListarVencidasUsesLatestPrescription(t *testing.T) {
	svc, clientes := newReceitaFixture(t)
	ctx := context.Background()

	c := seedClienteComReceita(t, clientes, "Renovado", "01/01/2023")
	require.NoError(t, clientes.AppendReceita(ctx, c.ID, model.Receita{Data: "2026-05-01"}))

	vencidas, err := svc.ListarVencidas(ctx)
	require.NoError(t, err)
	assert.Empty(t, vencidas)
}
