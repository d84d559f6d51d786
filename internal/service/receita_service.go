package service

import (
	"context"
	"time"

	"github.com/luizeletrico1/sistema-otica-fim/internal/dto"
	"github.com/luizeletrico1/sistema-otica-fim/internal/model"
	"github.com/luizeletrico1/sistema-otica-fim/internal/repository"
)

type ReceitaService interface {
	Adicionar(ctx context.Context, clienteID int, req dto.CriarReceitaRequest) (*model.Cliente, error)
	ListarDoCliente(ctx context.Context, clienteID int) ([]model.Receita, error)
	ListarVencidas(ctx context.Context) ([]dto.ReceitaVencidaResponse, error)
}

type receitaService struct {
	clientes repository.ClienteRepository
	agora    func() time.Time
}

func NewReceitaService(clientes repository.ClienteRepository) ReceitaService {
	return &receitaService{clientes: clientes, agora: time.Now}
}

func (s *receitaService) Adicionar(ctx context.Context, clienteID int, req dto.CriarReceitaRequest) (*model.Cliente, error) {
	rx := model.Receita{
		Data:   req.Data,
		Medico: req.Medico,
		OD:     model.Dioptria{Esf: req.OD.Esf, Cil: req.OD.Cil, Eixo: req.OD.Eixo},
		OE:     model.Dioptria{Esf: req.OE.Esf, Cil: req.OE.Cil, Eixo: req.OE.Eixo},
		Adicao: req.Adicao,
		Obs:    req.Obs,
	}
	if err := s.clientes.AppendReceita(ctx, clienteID, rx); err != nil {
		return nil, err
	}
	return s.clientes.FindByID(ctx, clienteID)
}

func (s *receitaService) ListarDoCliente(ctx context.Context, clienteID int) ([]model.Receita, error) {
	c, err := s.clientes.FindByID(ctx, clienteID)
	if err != nil {
		return nil, err
	}
	return c.Receitas, nil
}

// ListarVencidas reports every customer whose latest prescription is more
// than a year old. Prescriptions with unparsable dates are skipped, never
// counted as expired.
func (s *receitaService) ListarVencidas(ctx context.Context) ([]dto.ReceitaVencidaResponse, error) {
	clientes, err := s.clientes.List(ctx)
	if err != nil {
		return nil, err
	}

	hoje := s.agora()
	out := []dto.ReceitaVencidaResponse{}
	for _, c := range clientes {
		ultima, data, ok := ultimaReceita(c.Receitas)
		if !ok {
			continue
		}
		dias := int(hoje.Sub(data).Hours() / 24)
		if dias > 365 {
			out = append(out, dto.ReceitaVencidaResponse{
				ClienteID:   c.ID,
				Nome:        c.Nome,
				WhatsApp:    c.Contato.WhatsApp,
				Data:        ultima.Data,
				Medico:      ultima.Medico,
				DiasVencida: dias - 365,
			})
		}
	}
	return out, nil
}

// ultimaReceita picks the most recent prescription with a parseable date.
func ultimaReceita(receitas []model.Receita) (model.Receita, time.Time, bool) {
	var (
		melhor     model.Receita
		melhorData time.Time
		achou      bool
	)
	for _, rx := range receitas {
		data, err := parseDataReceita(rx.Data)
		if err != nil {
			continue
		}
		if !achou || data.After(melhorData) {
			melhor, melhorData, achou = rx, data, true
		}
	}
	return melhor, melhorData, achou
}

// parseDataReceita accepts both date formats found in legacy data files.
func parseDataReceita(s string) (time.Time, error) {
	if t, err := time.Parse(model.DataBR, s); err == nil {
		return t, nil
	}
	return time.Parse(model.DataISO, s)
}
