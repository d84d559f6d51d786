package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luizeletrico1/sistema-otica-fim/internal/dto"
	"github.com/luizeletrico1/sistema-otica-fim/internal/model"
	"github.com/luizeletrico1/sistema-otica-fim/internal/repository"
	"github.com/luizeletrico1/sistema-otica-fim/internal/store"
)

func newMarketingFixture(t *testing.T) (MarketingService, repository.ClienteRepository) {
	t.Helper()
	st, err := store.New(t.TempDir())
	require.NoError(t, err)
	clientes := repository.NewClienteRepository(st)
	mensagens := repository.NewMensagemRepository(st)
	return NewMarketingService(clientes, mensagens, nil), clientes
}

func TestRenderMensagemUsesFirstName(t *testing.T) {
	msg := RenderMensagem("Olá {nome}, seus óculos chegaram!", "Ana Paula Souza", "")
	assert.Equal(t, "Olá Ana, seus óculos chegaram!", msg)
}

func TestRenderMensagemAppendsSignature(t *testing.T) {
	msg := RenderMensagem("Oi {nome}!", "Bruno Costa", "Fábrica de Óculos JR")
	assert.Equal(t, "Oi Bruno!\n\nFábrica de Óculos JR", msg)
}

func TestRenderMensagemWithoutPlaceholder(t *testing.T) {
	msg := RenderMensagem("Promoção de lentes esta semana!", "Ana", "")
	assert.Equal(t, "Promoção de lentes esta semana!", msg)
}

func TestGerarLinkNumberNormalization(t *testing.T) {
	cases := []struct {
		numero string
		prefix string
	}{
		// 8/9 digits: local number, gets area code 27 then country 55.
		{"99990000", "https://wa.me/552799990000?"},
		{"999990000", "https://wa.me/5527999990000?"},
		// 10/11 digits: has area code, gets country 55.
		{"2799990000", "https://wa.me/552799990000?"},
		{"27 99999-0000", "https://wa.me/5527999990000?"},
		// 12/13 digits: already international.
		{"5527999990000", "https://wa.me/5527999990000?"},
	}
	for _, tc := range cases {
		link := GerarLink(tc.numero, "Olá")
		assert.Contains(t, link, tc.prefix, "numero %q", tc.numero)
	}
}

func TestGerarLinkRejectsOddLengths(t *testing.T) {
	for _, numero := range []string{"", "123", "1234567", "12345678901234"} {
		assert.Empty(t, GerarLink(numero, "Olá"), "numero %q", numero)
	}
}

func TestGerarLinkEncodesMessage(t *testing.T) {
	link := GerarLink("27999990000", "Olá Ana! Tudo bem?")
	assert.Contains(t, link, "text=Ol%C3%A1+Ana%21+Tudo+bem%3F")
}

func seedClienteMarketing(t *testing.T, clientes repository.ClienteRepository, nome, nascimento string) {
	t.Helper()
	c := &model.Cliente{
		Nome:       nome,
		Nascimento: nascimento,
		Contato:    model.Contato{WhatsApp: "27999990000"},
	}
	require.NoError(t, clientes.Create(context.Background(), c))
}

func TestFiltrarClientesPorAniversario(t *testing.T) {
	svc, clientes := newMarketingFixture(t)

	seedClienteMarketing(t, clientes, "Ana", "1990-06-12")
	seedClienteMarketing(t, clientes, "Bruno", "1985-11-03")
	seedClienteMarketing(t, clientes, "Clara", "12/06/1992")
	seedClienteMarketing(t, clientes, "Sem Data", "")

	alvo, err := svc.FiltrarClientes(context.Background(), dto.FiltroClientesRequest{
		Modo: "aniversariantes", Mes: 6,
	})
	require.NoError(t, err)
	require.Len(t, alvo, 2)
}

// Without a month the birthday filter would match every record whose
// nascimento is blank or unparsable; it must refuse instead.
func TestFiltrarClientesAniversariantesRequiresMes(t *testing.T) {
	svc, clientes := newMarketingFixture(t)

	seedClienteMarketing(t, clientes, "Sem Data", "")
	seedClienteMarketing(t, clientes, "Data Inválida", "???")

	_, err := svc.FiltrarClientes(context.Background(), dto.FiltroClientesRequest{
		Modo: "aniversariantes",
	})
	assert.Error(t, err)
}

func TestFiltrarClientesPorNome(t *testing.T) {
	svc, clientes := newMarketingFixture(t)

	seedClienteMarketing(t, clientes, "Ana Paula", "")
	seedClienteMarketing(t, clientes, "Bruno", "")

	alvo, err := svc.FiltrarClientes(context.Background(), dto.FiltroClientesRequest{
		Modo: "nome", Nome: "ana",
	})
	require.NoError(t, err)
	require.Len(t, alvo, 1)
	assert.Equal(t, "Ana Paula", alvo[0].Nome)
}

func TestPrepararDisparoRendersAndLinks(t *testing.T) {
	svc, clientes := newMarketingFixture(t)

	seedClienteMarketing(t, clientes, "Ana Paula", "")

	itens, err := svc.PrepararDisparo(context.Background(), dto.DisparoRequest{
		Modo:     "todos",
		Template: "Óculos Pronto",
	})
	require.NoError(t, err)
	require.Len(t, itens, 1)
	assert.Contains(t, itens[0].Mensagem, "Ana")
	assert.NotContains(t, itens[0].Mensagem, "{nome}")
	assert.Contains(t, itens[0].Link, "https://wa.me/5527999990000")
	assert.False(t, itens[0].EmailEnfileirado)
}

func TestPrepararDisparoUnknownTemplate(t *testing.T) {
	svc, clientes := newMarketingFixture(t)
	seedClienteMarketing(t, clientes, "Ana", "")

	_, err := svc.PrepararDisparo(context.Background(), dto.DisparoRequest{
		Modo: "todos", Template: "Inexistente",
	})
	assert.ErrorIs(t, err, repository.ErrNaoEncontrado)
}
