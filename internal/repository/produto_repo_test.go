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

func newProdutoRepo(t *testing.T) ProdutoRepository {
	t.Helper()
	st, err := store.New(t.TempDir())
	require.NoError(t, err)
	return NewProdutoRepository(st)
}

func criarProduto(t *testing.T, repo ProdutoRepository, nome, codigo string, qtd int) *model.Produto {
	t.Helper()
	p := &model.Produto{
		Nome:       nome,
		Codigo:     codigo,
		Tipo:       "Armação",
		Quantidade: qtd,
		Preco:      decimal.NewFromInt(100),
	}
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func TestProdutoIDsStartAtOneThousand(t *testing.T) {
	repo := newProdutoRepo(t)

	a := criarProduto(t, repo, "Armação A", "A1", 3)
	b := criarProduto(t, repo, "Armação B", "B1", 3)
	assert.Equal(t, 1000, a.ID)
	assert.Equal(t, 1001, b.ID)
}

func TestProdutoFindByCodigo(t *testing.T) {
	repo := newProdutoRepo(t)
	ctx := context.Background()

	criarProduto(t, repo, "Armação A", "A1", 3)
	p, err := repo.FindByCodigo(ctx, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Armação A", p.Nome)

	_, err = repo.FindByCodigo(ctx, "ZZZ")
	assert.ErrorIs(t, err, ErrNaoEncontrado)
}

func TestBaixarEstoqueDecrementsOnePerOccurrence(t *testing.T) {
	repo := newProdutoRepo(t)
	ctx := context.Background()

	a := criarProduto(t, repo, "Armação A", "A1", 5)
	b := criarProduto(t, repo, "Lente B", "B1", 2)

	// Two units of A, one of B.
	require.NoError(t, repo.BaixarEstoque(ctx, []int{a.ID, b.ID, a.ID}))

	atualA, err := repo.FindByID(ctx, a.ID)
	require.NoError(t, err)
	atualB, err := repo.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, atualA.Quantidade)
	assert.Equal(t, 1, atualB.Quantidade)
}

// Stock is not validated at checkout; counts may go negative and the report
// surfaces them for manual correction.
func TestBaixarEstoqueAllowsNegative(t *testing.T) {
	repo := newProdutoRepo(t)
	ctx := context.Background()

	a := criarProduto(t, repo, "Armação A", "A1", 0)
	require.NoError(t, repo.BaixarEstoque(ctx, []int{a.ID}))

	atual, err := repo.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, -1, atual.Quantidade)
}

func TestBaixarEstoqueSkipsUnknownIDs(t *testing.T) {
	repo := newProdutoRepo(t)
	ctx := context.Background()

	a := criarProduto(t, repo, "Armação A", "A1", 5)
	require.NoError(t, repo.BaixarEstoque(ctx, []int{a.ID, 9999}))

	atual, err := repo.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, atual.Quantidade)
}
