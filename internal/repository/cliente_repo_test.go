package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luizeletrico1/sistema-otica-fim/internal/model"
	"github.com/luizeletrico1/sistema-otica-fim/internal/store"
)

func newClienteRepo(t *testing.T) ClienteRepository {
	t.Helper()
	st, err := store.New(t.TempDir())
	require.NoError(t, err)
	return NewClienteRepository(st)
}

func criarCliente(t *testing.T, repo ClienteRepository, nome string) *model.Cliente {
	t.Helper()
	c := &model.Cliente{Nome: nome, Contato: model.Contato{WhatsApp: "27999990000"}}
	require.NoError(t, repo.Create(context.Background(), c))
	return c
}

func TestClienteIDsStartAtOne(t *testing.T) {
	repo := newClienteRepo(t)

	a := criarCliente(t, repo, "Ana")
	b := criarCliente(t, repo, "Bruno")
	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 2, b.ID)
}

// Removing the highest id frees it for the next registration.
func TestClienteIDReuseAfterDelete(t *testing.T) {
	repo := newClienteRepo(t)
	ctx := context.Background()

	criarCliente(t, repo, "Ana")
	b := criarCliente(t, repo, "Bruno")
	require.NoError(t, repo.Delete(ctx, b.ID))

	c := criarCliente(t, repo, "Clara")
	assert.Equal(t, 2, c.ID)
}

func TestClienteUpdatePreservesHistories(t *testing.T) {
	repo := newClienteRepo(t)
	ctx := context.Background()

	c := criarCliente(t, repo, "Ana")
	require.NoError(t, repo.AppendVenda(ctx, c.ID, model.VendaHistorico{
		Data:  "01/06/2026 10:00",
		Itens: []string{"Armação Ray-Ban"},
		Total: decimal.NewFromInt(450),
	}))
	require.NoError(t, repo.AppendReceita(ctx, c.ID, model.Receita{Data: "01/06/2026"}))

	require.NoError(t, repo.Update(ctx, c.ID, &model.Cliente{
		Nome:    "Ana Paula",
		Contato: model.Contato{WhatsApp: "27988887777"},
	}))

	atual, err := repo.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Paula", atual.Nome)
	assert.Len(t, atual.Vendas, 1)
	assert.Len(t, atual.Receitas, 1)
}

func TestClienteAppendOrcamento(t *testing.T) {
	repo := newClienteRepo(t)
	ctx := context.Background()

	c := criarCliente(t, repo, "Ana")
	require.NoError(t, repo.AppendOrcamento(ctx, c.ID, model.OrcamentoHistorico{
		Data:  "01/06/2026",
		Itens: []string{"Lente Transitions"},
		Total: decimal.NewFromInt(800),
		Tipo:  "ORCAMENTO",
	}))

	atual, err := repo.FindByID(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, atual.Orcamentos, 1)
	assert.Equal(t, "ORCAMENTO", atual.Orcamentos[0].Tipo)
}

func TestClienteFindMissing(t *testing.T) {
	repo := newClienteRepo(t)
	_, err := repo.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNaoEncontrado)
}
