package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/luizeletrico1/sistema-otica-fim/internal/model"
	"github.com/luizeletrico1/sistema-otica-fim/internal/repository"
)

// EstoqueBaixoLimite marks products needing reposition on the dashboard.
const EstoqueBaixoLimite = 5

type DashboardResumo struct {
	Faturamento      decimal.Decimal `json:"faturamento"`
	NumVendas        int             `json:"num_vendas"`
	TicketMedio      decimal.Decimal `json:"ticket_medio"`
	ValorEstoque     decimal.Decimal `json:"valor_estoque"`
	EstoqueBaixo     []model.Produto `json:"estoque_baixo"`
	ReceitasVencidas int             `json:"receitas_vencidas"`
	TotalClientes    int             `json:"total_clientes"`
	TotalProdutos    int             `json:"total_produtos"`
}

type DashboardService interface {
	Resumo(ctx context.Context) (*DashboardResumo, error)
}

type dashboardService struct {
	clientes repository.ClienteRepository
	produtos repository.ProdutoRepository
	receitas ReceitaService
}

func NewDashboardService(
	clientes repository.ClienteRepository,
	produtos repository.ProdutoRepository,
	receitas ReceitaService,
) DashboardService {
	return &dashboardService{clientes: clientes, produtos: produtos, receitas: receitas}
}

func (s *dashboardService) Resumo(ctx context.Context) (*DashboardResumo, error) {
	clientes, err := s.clientes.List(ctx)
	if err != nil {
		return nil, err
	}
	produtos, err := s.produtos.List(ctx)
	if err != nil {
		return nil, err
	}
	vencidas, err := s.receitas.ListarVencidas(ctx)
	if err != nil {
		return nil, err
	}

	resumo := &DashboardResumo{
		Faturamento:      decimal.Zero,
		TicketMedio:      decimal.Zero,
		ValorEstoque:     decimal.Zero,
		EstoqueBaixo:     []model.Produto{},
		ReceitasVencidas: len(vencidas),
		TotalClientes:    len(clientes),
		TotalProdutos:    len(produtos),
	}

	for _, c := range clientes {
		for _, v := range c.Vendas {
			resumo.Faturamento = resumo.Faturamento.Add(v.Total)
			resumo.NumVendas++
		}
	}
	if resumo.NumVendas > 0 {
		resumo.TicketMedio = resumo.Faturamento.DivRound(decimal.NewFromInt(int64(resumo.NumVendas)), 2)
	}

	for _, p := range produtos {
		resumo.ValorEstoque = resumo.ValorEstoque.Add(p.Preco.Mul(decimal.NewFromInt(int64(p.Quantidade))))
		if p.Quantidade < EstoqueBaixoLimite {
			resumo.EstoqueBaixo = append(resumo.EstoqueBaixo, p)
		}
	}

	return resumo, nil
}
