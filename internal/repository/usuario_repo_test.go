package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luizeletrico1/sistema-otica-fim/internal/model"
	"github.com/luizeletrico1/sistema-otica-fim/internal/store"
)

func newUsuarioRepo(t *testing.T) UsuarioRepository {
	t.Helper()
	st, err := store.New(t.TempDir())
	require.NoError(t, err)
	return NewUsuarioRepository(st)
}

func TestEnsureAdminSeedsDefaultAccount(t *testing.T) {
	repo := newUsuarioRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.EnsureAdmin(ctx))

	admin, err := repo.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "123", admin.Senha)
	assert.Equal(t, "Administrador", admin.Nome)
	assert.Equal(t, model.PerfilAdmin, admin.Perfil)
}

func TestEnsureAdminDoesNotOverwriteExisting(t *testing.T) {
	repo := newUsuarioRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.EnsureAdmin(ctx))
	require.NoError(t, repo.Update(ctx, "admin", &model.Usuario{
		Usuario: "admin", Senha: "nova", Nome: "Chefe", Perfil: model.PerfilAdmin,
	}))

	require.NoError(t, repo.EnsureAdmin(ctx))
	admin, err := repo.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "nova", admin.Senha)
}

func TestFindByUsernameNormalizesLogin(t *testing.T) {
	repo := newUsuarioRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.EnsureAdmin(ctx))

	for _, login := range []string{"admin", "ADMIN", "  Admin  "} {
		u, err := repo.FindByUsername(ctx, login)
		require.NoError(t, err, "login %q", login)
		assert.Equal(t, "admin", u.Usuario)
	}
}

func TestCreateRejectsDuplicateLogin(t *testing.T) {
	repo := newUsuarioRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.Usuario{
		Usuario: "joana", Senha: "s", Nome: "Joana", Perfil: model.PerfilVendedor,
	}))
	err := repo.Create(ctx, &model.Usuario{
		Usuario: "  JOANA ", Senha: "x", Nome: "Outra", Perfil: model.PerfilVendedor,
	})
	assert.Error(t, err)
}

func TestDeleteBlocksAdminAccount(t *testing.T) {
	repo := newUsuarioRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.EnsureAdmin(ctx))

	assert.Error(t, repo.Delete(ctx, "admin"))

	require.NoError(t, repo.Create(ctx, &model.Usuario{
		Usuario: "carlos", Senha: "s", Nome: "Carlos", Perfil: model.PerfilTecnico,
	}))
	assert.NoError(t, repo.Delete(ctx, "carlos"))
	_, err := repo.FindByUsername(ctx, "carlos")
	assert.ErrorIs(t, err, ErrNaoEncontrado)
}
