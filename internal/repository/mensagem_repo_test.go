package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luizeletrico1/sistema-otica-fim/internal/model"
	"github.com/luizeletrico1/sistema-otica-fim/internal/store"
)

func newMensagemRepo(t *testing.T) MensagemRepository {
	t.Helper()
	st, err := store.New(t.TempDir())
	require.NoError(t, err)
	return NewMensagemRepository(st)
}

func TestTemplatesSeededOnFirstAccess(t *testing.T) {
	repo := newMensagemRepo(t)

	templates, err := repo.ListTemplates(context.Background())
	require.NoError(t, err)
	require.Len(t, templates, 3)

	titulos := make([]string, 0, 3)
	for _, tpl := range templates {
		titulos = append(titulos, tpl.Titulo)
		assert.Contains(t, tpl.Texto, model.PlaceholderNome)
	}
	assert.Contains(t, titulos, "Aniversário")
}

func TestTemplateCRUD(t *testing.T) {
	repo := newMensagemRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateTemplate(ctx, &model.TemplateMensagem{
		Titulo: "Promoção", Texto: "Olá {nome}, temos novidades!",
	}))

	tpl, err := repo.FindTemplate(ctx, "Promoção")
	require.NoError(t, err)
	assert.Contains(t, tpl.Texto, "novidades")

	require.NoError(t, repo.UpdateTemplate(ctx, "Promoção", &model.TemplateMensagem{
		Titulo: "Promoção", Texto: "Olá {nome}, chegou coleção nova!",
	}))
	tpl, err = repo.FindTemplate(ctx, "Promoção")
	require.NoError(t, err)
	assert.Contains(t, tpl.Texto, "coleção")

	require.NoError(t, repo.DeleteTemplate(ctx, "Promoção"))
	_, err = repo.FindTemplate(ctx, "Promoção")
	assert.ErrorIs(t, err, ErrNaoEncontrado)
}

func TestConfigLojaRoundTrip(t *testing.T) {
	repo := newMensagemRepo(t)
	ctx := context.Background()

	// Missing file reads as zero config, not an error.
	cfg, err := repo.LoadConfig(ctx)
	require.NoError(t, err)
	assert.Empty(t, cfg.ZapLoja)

	require.NoError(t, repo.SaveConfig(ctx, &model.ConfigLoja{
		ZapLoja: "5527999990000", Assinatura: "Fábrica de Óculos JR",
	}))
	cfg, err = repo.LoadConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, "5527999990000", cfg.ZapLoja)
}
