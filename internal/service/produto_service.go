package service

import (
	"context"
	"strings"

	"github.com/luizeletrico1/sistema-otica-fim/internal/dto"
	"github.com/luizeletrico1/sistema-otica-fim/internal/model"
	"github.com/luizeletrico1/sistema-otica-fim/internal/repository"
)

type ProdutoService interface {
	Listar(ctx context.Context, busca string) ([]model.Produto, error)
	Buscar(ctx context.Context, id int) (*model.Produto, error)
	Criar(ctx context.Context, req dto.CriarProdutoRequest) (*model.Produto, error)
	Atualizar(ctx context.Context, id int, req dto.AtualizarProdutoRequest) (*model.Produto, error)
	Remover(ctx context.Context, id int) error
}

type produtoService struct {
	repo repository.ProdutoRepository
}

func NewProdutoService(repo repository.ProdutoRepository) ProdutoService {
	return &produtoService{repo: repo}
}

func (s *produtoService) Listar(ctx context.Context, busca string) ([]model.Produto, error) {
	produtos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if busca == "" {
		return produtos, nil
	}
	termo := strings.ToLower(busca)
	out := make([]model.Produto, 0, len(produtos))
	for _, p := range produtos {
		if strings.Contains(strings.ToLower(p.Nome), termo) || strings.Contains(p.Codigo, busca) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *produtoService) Buscar(ctx context.Context, id int) (*model.Produto, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *produtoService) Criar(ctx context.Context, req dto.CriarProdutoRequest) (*model.Produto, error) {
	p := fromProdutoRequest(req)
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *produtoService) Atualizar(ctx context.Context, id int, req dto.AtualizarProdutoRequest) (*model.Produto, error) {
	p := fromProdutoRequest(req)
	if err := s.repo.Update(ctx, id, p); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *produtoService) Remover(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func fromProdutoRequest(req dto.CriarProdutoRequest) *model.Produto {
	return &model.Produto{
		Nome:       strings.TrimSpace(req.Nome),
		Codigo:     strings.TrimSpace(req.Codigo),
		Tipo:       req.Tipo,
		Quantidade: req.Quantidade,
		Preco:      req.Preco,
		Marca:      req.Marca,
	}
}
