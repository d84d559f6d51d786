package repository

import (
	"context"

	"github.com/luizeletrico1/sistema-otica-fim/internal/model"
	"github.com/luizeletrico1/sistema-otica-fim/internal/store"
)

// ProdutoRepository defines data access for the stock catalog.
type ProdutoRepository interface {
	List(ctx context.Context) ([]model.Produto, error)
	FindByID(ctx context.Context, id int) (*model.Produto, error)
	FindByCodigo(ctx context.Context, codigo string) (*model.Produto, error)
	Create(ctx context.Context, p *model.Produto) error
	Update(ctx context.Context, id int, p *model.Produto) error
	Delete(ctx context.Context, id int) error
	BaixarEstoque(ctx context.Context, ids []int) error
}

type produtoRepo struct{ st *store.Store }

func NewProdutoRepository(st *store.Store) ProdutoRepository { return &produtoRepo{st: st} }

func (r *produtoRepo) load() []model.Produto {
	var produtos []model.Produto
	_ = r.st.Load(store.ColProdutos, &produtos)
	return produtos
}

func (r *produtoRepo) List(_ context.Context) ([]model.Produto, error) {
	return r.load(), nil
}

func (r *produtoRepo) FindByID(_ context.Context, id int) (*model.Produto, error) {
	for _, p := range r.load() {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, ErrNaoEncontrado
}

// FindByCodigo returns the first produto carrying the code. Code uniqueness is
// not enforced anywhere, so duplicates shadow each other in insertion order.
func (r *produtoRepo) FindByCodigo(_ context.Context, codigo string) (*model.Produto, error) {
	for _, p := range r.load() {
		if p.Codigo == codigo {
			p := p
			return &p, nil
		}
	}
	return nil, ErrNaoEncontrado
}

// Create assigns id = max(existing)+1 with floor 1000 and persists the record.
func (r *produtoRepo) Create(_ context.Context, novo *model.Produto) error {
	produtos := r.load()
	novo.ID = 1000
	for _, p := range produtos {
		if p.ID >= novo.ID {
			novo.ID = p.ID + 1
		}
	}
	produtos = append(produtos, *novo)
	return r.st.Save(store.ColProdutos, produtos)
}

func (r *produtoRepo) Update(_ context.Context, id int, upd *model.Produto) error {
	produtos := r.load()
	for i, p := range produtos {
		if p.ID == id {
			upd.ID = id
			produtos[i] = *upd
			return r.st.Save(store.ColProdutos, produtos)
		}
	}
	return ErrNaoEncontrado
}

func (r *produtoRepo) Delete(_ context.Context, id int) error {
	produtos := r.load()
	for i, p := range produtos {
		if p.ID == id {
			produtos = append(produtos[:i], produtos[i+1:]...)
			return r.st.Save(store.ColProdutos, produtos)
		}
	}
	return ErrNaoEncontrado
}

// BaixarEstoque decrements one unit per id occurrence and rewrites the whole
// collection in a single save. The quantity is not re-validated against the
// cart that was built earlier, so it can go negative when stock changed in
// between; ids that no longer exist are skipped.
func (r *produtoRepo) BaixarEstoque(_ context.Context, ids []int) error {
	produtos := r.load()
	for _, id := range ids {
		for i := range produtos {
			if produtos[i].ID == id {
				produtos[i].Quantidade--
				break
			}
		}
	}
	return r.st.Save(store.ColProdutos, produtos)
}
