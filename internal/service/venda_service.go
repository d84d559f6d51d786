package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/luizeletrico1/sistema-otica-fim/internal/dto"
	"github.com/luizeletrico1/sistema-otica-fim/internal/infra"
	"github.com/luizeletrico1/sistema-otica-fim/internal/model"
	"github.com/luizeletrico1/sistema-otica-fim/internal/repository"
)

// ValidadeOrcamentoDias is how long a quote stays honored.
const ValidadeOrcamentoDias = 7

type VendaService interface {
	Simular(ctx context.Context, req dto.SimulacaoRequest) (*dto.SimulacaoResponse, error)
	RegistrarVenda(ctx context.Context, vendedor string, req dto.RegistrarVendaRequest) (*dto.VendaResponse, error)
	GerarOrcamento(ctx context.Context, consultor string, req dto.OrcamentoRequest) (*dto.OrcamentoResponse, error)
}

type vendaService struct {
	produtos    repository.ProdutoRepository
	clientes    repository.ClienteRepository
	loja        model.LojaInfo
	storagePath string
	agora       func() time.Time
}

func NewVendaService(
	produtos repository.ProdutoRepository,
	clientes repository.ClienteRepository,
	loja model.LojaInfo,
	storagePath string,
) VendaService {
	return &vendaService{
		produtos:    produtos,
		clientes:    clientes,
		loja:        loja,
		storagePath: storagePath,
		agora:       time.Now,
	}
}

// carrinho is the resolved cart: one entry per code sent, duplicates kept.
type carrinho struct {
	itens []dto.ItemVendaResponse
	ids   []int
	total decimal.Decimal
}

// montarCarrinho resolves codes into priced lines. Sales only offer produtos
// with stock on the shelf; quotes price anything in the catalog.
func (s *vendaService) montarCarrinho(ctx context.Context, codigos []string, paraVenda bool) (*carrinho, error) {
	c := &carrinho{total: decimal.Zero}
	for _, codigo := range codigos {
		p, err := s.produtos.FindByCodigo(ctx, codigo)
		if err != nil {
			if errors.Is(err, repository.ErrNaoEncontrado) {
				return nil, fmt.Errorf("produto não encontrado: %s", codigo)
			}
			return nil, err
		}
		if paraVenda && p.Quantidade <= 0 {
			return nil, fmt.Errorf("produto sem estoque: %s", codigo)
		}
		c.itens = append(c.itens, dto.ItemVendaResponse{
			ProdutoID: p.ID,
			Nome:      p.Nome,
			Codigo:    p.Codigo,
			Preco:     p.Preco,
		})
		c.ids = append(c.ids, p.ID)
		c.total = c.total.Add(p.Preco)
	}
	return c, nil
}

// normalizarParcelas enforces the installment rules: only credit card and
// direct installment plans split the total, everything else is a single
// payment.
func normalizarParcelas(forma string, parcelas int) (int, error) {
	if !model.FormaPagamentoValida(forma) {
		return 0, fmt.Errorf("forma de pagamento inválida: %s", forma)
	}
	if !model.FormaParcelavel(forma) {
		return 1, nil
	}
	if parcelas < 1 || parcelas > model.MaxParcelas {
		return 0, fmt.Errorf("parcelas deve estar entre 1 e %d", model.MaxParcelas)
	}
	return parcelas, nil
}

func valorParcela(total decimal.Decimal, parcelas int) decimal.Decimal {
	return total.DivRound(decimal.NewFromInt(int64(parcelas)), 2)
}

func rotuloPagamento(forma string, parcelas int) string {
	return fmt.Sprintf("%s (%dx)", forma, parcelas)
}

func (s *vendaService) Simular(ctx context.Context, req dto.SimulacaoRequest) (*dto.SimulacaoResponse, error) {
	parcelas, err := normalizarParcelas(req.FormaPagamento, req.Parcelas)
	if err != nil {
		return nil, err
	}
	cart, err := s.montarCarrinho(ctx, req.Codigos, true)
	if err != nil {
		return nil, err
	}
	return &dto.SimulacaoResponse{
		Itens:          cart.itens,
		Total:          cart.total,
		FormaPagamento: req.FormaPagamento,
		Parcelas:       parcelas,
		ValorParcela:   valorParcela(cart.total, parcelas),
	}, nil
}

// montarComprador resolves the buyer block: the linked customer record wins,
// otherwise whatever was typed at the counter.
func (s *vendaService) montarComprador(ctx context.Context, clienteID *int, req *dto.CompradorRequest) (model.DadosComprador, *model.Cliente, error) {
	if clienteID != nil {
		c, err := s.clientes.FindByID(ctx, *clienteID)
		if err != nil {
			return model.DadosComprador{}, nil, err
		}
		end := c.Endereco
		endereco := end.Logradouro
		if end.Numero != "" {
			endereco += ", " + end.Numero
		}
		if end.Municipio != "" {
			endereco += " - " + end.Municipio
		}
		return model.DadosComprador{
			Nome:     c.Nome,
			CPF:      c.CPF,
			RG:       c.RG,
			Telefone: c.Contato.Telefone,
			WhatsApp: c.Contato.WhatsApp,
			Endereco: endereco,
		}, c, nil
	}
	if req == nil {
		return model.DadosComprador{}, nil, nil
	}
	return model.DadosComprador{
		Nome:     req.Nome,
		CPF:      req.CPF,
		RG:       req.RG,
		Telefone: req.Telefone,
		WhatsApp: req.WhatsApp,
		Endereco: req.Endereco,
	}, nil, nil
}

func itensDocumento(itens []dto.ItemVendaResponse) []model.ItemDocumento {
	out := make([]model.ItemDocumento, 0, len(itens))
	for _, it := range itens {
		out = append(out, model.ItemDocumento{Nome: it.Nome, Preco: it.Preco})
	}
	return out
}

func nomesItens(itens []dto.ItemVendaResponse) []string {
	out := make([]string, 0, len(itens))
	for _, it := range itens {
		out = append(out, it.Nome)
	}
	return out
}

func (s *vendaService) RegistrarVenda(ctx context.Context, vendedor string, req dto.RegistrarVendaRequest) (*dto.VendaResponse, error) {
	parcelas, err := normalizarParcelas(req.FormaPagamento, req.Parcelas)
	if err != nil {
		return nil, err
	}
	cart, err := s.montarCarrinho(ctx, req.Codigos, true)
	if err != nil {
		return nil, err
	}
	comprador, cliente, err := s.montarComprador(ctx, req.ClienteID, req.Comprador)
	if err != nil {
		return nil, err
	}
	// The sale only settles against confirmed buyer data.
	if strings.TrimSpace(comprador.Nome) == "" {
		return nil, errors.New("dados do comprador não confirmados")
	}

	if err := s.produtos.BaixarEstoque(ctx, cart.ids); err != nil {
		return nil, err
	}

	agora := s.agora()
	recibo := &model.Recibo{
		Loja:           s.loja,
		Numero:         agora.Unix(),
		Data:           agora.Format(model.DataBRHora),
		Vendedor:       vendedor,
		Comprador:      comprador,
		Itens:          itensDocumento(cart.itens),
		Total:          cart.total,
		FormaPagamento: req.FormaPagamento,
		Parcelas:       parcelas,
		ValorParcela:   valorParcela(cart.total, parcelas),
		Obs:            req.Obs,
	}

	if cliente != nil {
		hist := model.VendaHistorico{
			Data:      recibo.Data,
			Itens:     nomesItens(cart.itens),
			Total:     cart.total,
			Pagamento: rotuloPagamento(req.FormaPagamento, parcelas),
			Vendedor:  vendedor,
		}
		if err := s.clientes.AppendVenda(ctx, cliente.ID, hist); err != nil {
			return nil, err
		}
	}

	pdfName, err := infra.GerarReciboPDF(recibo, s.storagePath)
	if err != nil {
		// The sale already went through; the text receipt still works.
		log.Warn().Err(err).Int64("numero", recibo.Numero).Msg("falha ao gerar PDF do recibo")
		pdfName = ""
	}

	return &dto.VendaResponse{
		Numero:         recibo.Numero,
		Data:           recibo.Data,
		Vendedor:       vendedor,
		Itens:          cart.itens,
		Total:          cart.total,
		FormaPagamento: req.FormaPagamento,
		Parcelas:       parcelas,
		ValorParcela:   recibo.ValorParcela,
		Documento:      infra.ReciboTexto(recibo),
		PDF:            pdfName,
	}, nil
}

// GerarOrcamento prices the cart without touching stock.
func (s *vendaService) GerarOrcamento(ctx context.Context, consultor string, req dto.OrcamentoRequest) (*dto.OrcamentoResponse, error) {
	parcelas, err := normalizarParcelas(req.FormaPagamento, req.Parcelas)
	if err != nil {
		return nil, err
	}
	cart, err := s.montarCarrinho(ctx, req.Codigos, false)
	if err != nil {
		return nil, err
	}
	comprador, cliente, err := s.montarComprador(ctx, req.ClienteID, req.Comprador)
	if err != nil {
		return nil, err
	}

	agora := s.agora()
	orc := &model.Orcamento{
		Loja:           s.loja,
		Emissao:        agora.Format(model.DataBR),
		Validade:       agora.AddDate(0, 0, ValidadeOrcamentoDias).Format(model.DataBR),
		Consultor:      consultor,
		Comprador:      comprador,
		Itens:          itensDocumento(cart.itens),
		Total:          cart.total,
		FormaPagamento: req.FormaPagamento,
		Parcelas:       parcelas,
		ValorParcela:   valorParcela(cart.total, parcelas),
		Obs:            req.Obs,
	}

	if cliente != nil {
		hist := model.OrcamentoHistorico{
			Data:  orc.Emissao,
			Itens: nomesItens(cart.itens),
			Total: cart.total,
			Tipo:  "ORCAMENTO",
		}
		if err := s.clientes.AppendOrcamento(ctx, cliente.ID, hist); err != nil {
			return nil, err
		}
	}

	pdfName, err := infra.GerarOrcamentoPDF(orc, s.storagePath, agora.Unix())
	if err != nil {
		log.Warn().Err(err).Msg("falha ao gerar PDF do orçamento")
		pdfName = ""
	}

	return &dto.OrcamentoResponse{
		Emissao:        orc.Emissao,
		Validade:       orc.Validade,
		Consultor:      consultor,
		Itens:          cart.itens,
		Total:          cart.total,
		FormaPagamento: req.FormaPagamento,
		Parcelas:       parcelas,
		ValorParcela:   orc.ValorParcela,
		Documento:      infra.OrcamentoTexto(orc),
		PDF:            pdfName,
	}, nil
}
