package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/luizeletrico1/sistema-otica-fim/internal/dto"
	"github.com/luizeletrico1/sistema-otica-fim/internal/model"
	"github.com/luizeletrico1/sistema-otica-fim/internal/repository"
	"github.com/luizeletrico1/sistema-otica-fim/internal/worker"
)

type MarketingService interface {
	FiltrarClientes(ctx context.Context, filtro dto.FiltroClientesRequest) ([]model.Cliente, error)
	PrepararDisparo(ctx context.Context, req dto.DisparoRequest) ([]dto.DisparoItemResponse, error)
	ListarTemplates(ctx context.Context) ([]model.TemplateMensagem, error)
	CriarTemplate(ctx context.Context, req dto.TemplateRequest) (*model.TemplateMensagem, error)
	AtualizarTemplate(ctx context.Context, titulo string, req dto.TemplateRequest) (*model.TemplateMensagem, error)
	RemoverTemplate(ctx context.Context, titulo string) error
	ConfigLoja(ctx context.Context) (*model.ConfigLoja, error)
	SalvarConfigLoja(ctx context.Context, req dto.ConfigLojaRequest) (*model.ConfigLoja, error)
}

type marketingService struct {
	clientes   repository.ClienteRepository
	mensagens  repository.MensagemRepository
	dispatcher *worker.Dispatcher
}

func NewMarketingService(
	clientes repository.ClienteRepository,
	mensagens repository.MensagemRepository,
	dispatcher *worker.Dispatcher,
) MarketingService {
	return &marketingService{clientes: clientes, mensagens: mensagens, dispatcher: dispatcher}
}

func (s *marketingService) FiltrarClientes(ctx context.Context, filtro dto.FiltroClientesRequest) ([]model.Cliente, error) {
	clientes, err := s.clientes.List(ctx)
	if err != nil {
		return nil, err
	}
	switch filtro.Modo {
	case "", "todos":
		return clientes, nil
	case "aniversariantes":
		// mesNascimento yields 0 for blank or unparsable dates; without
		// this guard an omitted mes would select exactly those records.
		if filtro.Mes < 1 || filtro.Mes > 12 {
			return nil, errors.New("mês obrigatório para filtrar aniversariantes")
		}
		out := []model.Cliente{}
		for _, c := range clientes {
			if mesNascimento(c.Nascimento) == filtro.Mes {
				out = append(out, c)
			}
		}
		return out, nil
	case "nome":
		termo := strings.ToLower(filtro.Nome)
		out := []model.Cliente{}
		for _, c := range clientes {
			if strings.Contains(strings.ToLower(c.Nome), termo) {
				out = append(out, c)
			}
		}
		return out, nil
	}
	return clientes, nil
}

func mesNascimento(nascimento string) int {
	if nascimento == "" {
		return 0
	}
	for _, layout := range []string{model.DataISO, model.DataBR} {
		if t, err := time.Parse(layout, nascimento); err == nil {
			return int(t.Month())
		}
	}
	return 0
}

// RenderMensagem fills the {nome} placeholder with the customer's first
// name and appends the store signature when one is configured.
func RenderMensagem(texto, nomeCompleto, assinatura string) string {
	primeiro := nomeCompleto
	if campos := strings.Fields(nomeCompleto); len(campos) > 0 {
		primeiro = campos[0]
	}
	msg := strings.ReplaceAll(texto, model.PlaceholderNome, primeiro)
	if assinatura != "" {
		msg += "\n\n" + assinatura
	}
	return msg
}

// GerarLink builds a wa.me click-to-chat URL from a loosely formatted
// Brazilian phone number. Local numbers get the store's area code, national
// numbers the country code; anything else yields no link.
func GerarLink(numero, mensagem string) string {
	var digitos strings.Builder
	for _, r := range numero {
		if r >= '0' && r <= '9' {
			digitos.WriteRune(r)
		}
	}
	num := digitos.String()
	if len(num) == 8 || len(num) == 9 {
		num = "27" + num
	}
	if len(num) == 10 || len(num) == 11 {
		num = "55" + num
	}
	if len(num) != 12 && len(num) != 13 {
		return ""
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", num, url.QueryEscape(mensagem))
}

func (s *marketingService) PrepararDisparo(ctx context.Context, req dto.DisparoRequest) ([]dto.DisparoItemResponse, error) {
	tpl, err := s.mensagens.FindTemplate(ctx, req.Template)
	if err != nil {
		return nil, err
	}
	cfg, err := s.mensagens.LoadConfig(ctx)
	if err != nil {
		return nil, err
	}
	alvo, err := s.FiltrarClientes(ctx, dto.FiltroClientesRequest{Modo: req.Modo, Mes: req.Mes, Nome: req.Nome})
	if err != nil {
		return nil, err
	}

	out := make([]dto.DisparoItemResponse, 0, len(alvo))
	for _, c := range alvo {
		msg := RenderMensagem(tpl.Texto, c.Nome, cfg.Assinatura)
		item := dto.DisparoItemResponse{
			ClienteID: c.ID,
			Nome:      c.Nome,
			WhatsApp:  c.Contato.WhatsApp,
			Mensagem:  msg,
			Link:      GerarLink(c.Contato.WhatsApp, msg),
		}
		if req.PorEmail && c.Contato.Email != "" && s.dispatcher.Enabled() {
			payload := worker.CampanhaJobPayload{
				ToEmail: c.Contato.Email,
				Assunto: tpl.Titulo,
				Corpo:   msg,
			}
			if err := s.dispatcher.EnqueueCampanha(ctx, payload); err != nil {
				log.Warn().Err(err).Str("email", c.Contato.Email).Msg("falha ao enfileirar campanha")
			} else {
				item.EmailEnfileirado = true
			}
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *marketingService) ListarTemplates(ctx context.Context) ([]model.TemplateMensagem, error) {
	return s.mensagens.ListTemplates(ctx)
}

func (s *marketingService) CriarTemplate(ctx context.Context, req dto.TemplateRequest) (*model.TemplateMensagem, error) {
	tpl := &model.TemplateMensagem{Titulo: req.Titulo, Texto: req.Texto}
	if err := s.mensagens.CreateTemplate(ctx, tpl); err != nil {
		return nil, err
	}
	return tpl, nil
}

func (s *marketingService) AtualizarTemplate(ctx context.Context, titulo string, req dto.TemplateRequest) (*model.TemplateMensagem, error) {
	tpl := &model.TemplateMensagem{Titulo: req.Titulo, Texto: req.Texto}
	if err := s.mensagens.UpdateTemplate(ctx, titulo, tpl); err != nil {
		return nil, err
	}
	return tpl, nil
}

func (s *marketingService) RemoverTemplate(ctx context.Context, titulo string) error {
	return s.mensagens.DeleteTemplate(ctx, titulo)
}

func (s *marketingService) ConfigLoja(ctx context.Context) (*model.ConfigLoja, error) {
	return s.mensagens.LoadConfig(ctx)
}

func (s *marketingService) SalvarConfigLoja(ctx context.Context, req dto.ConfigLojaRequest) (*model.ConfigLoja, error) {
	cfg := &model.ConfigLoja{ZapLoja: req.ZapLoja, Assinatura: req.Assinatura}
	if err := s.mensagens.SaveConfig(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
