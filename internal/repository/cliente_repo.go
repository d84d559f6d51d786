package repository

import (
	"context"

	"github.com/luizeletrico1/sistema-otica-fim/internal/model"
	"github.com/luizeletrico1/sistema-otica-fim/internal/store"
)

// ClienteRepository defines data access for customers and their embedded
// histories. Every mutation rewrites the whole clientes collection.
type ClienteRepository interface {
	List(ctx context.Context) ([]model.Cliente, error)
	FindByID(ctx context.Context, id int) (*model.Cliente, error)
	Create(ctx context.Context, c *model.Cliente) error
	Update(ctx context.Context, id int, c *model.Cliente) error
	Delete(ctx context.Context, id int) error
	AppendVenda(ctx context.Context, id int, v model.VendaHistorico) error
	AppendOrcamento(ctx context.Context, id int, o model.OrcamentoHistorico) error
	AppendReceita(ctx context.Context, id int, rx model.Receita) error
	SetFoto(ctx context.Context, id int, arquivo string) error
}

type clienteRepo struct{ st *store.Store }

func NewClienteRepository(st *store.Store) ClienteRepository { return &clienteRepo{st: st} }

func (r *clienteRepo) load() []model.Cliente {
	var clientes []model.Cliente
	_ = r.st.Load(store.ColClientes, &clientes)
	return clientes
}

func (r *clienteRepo) List(_ context.Context) ([]model.Cliente, error) {
	return r.load(), nil
}

func (r *clienteRepo) FindByID(_ context.Context, id int) (*model.Cliente, error) {
	for _, c := range r.load() {
		if c.ID == id {
			c := c
			return &c, nil
		}
	}
	return nil, ErrNaoEncontrado
}

// Create assigns id = max(existing)+1 with floor 1 and persists the record.
// Deleting the highest id and creating again reuses that id; this matches the
// data already on disk and is kept on purpose.
func (r *clienteRepo) Create(_ context.Context, novo *model.Cliente) error {
	clientes := r.load()
	novo.ID = 1
	for _, c := range clientes {
		if c.ID >= novo.ID {
			novo.ID = c.ID + 1
		}
	}
	if novo.Receitas == nil {
		novo.Receitas = []model.Receita{}
	}
	if novo.Vendas == nil {
		novo.Vendas = []model.VendaHistorico{}
	}
	clientes = append(clientes, *novo)
	return r.st.Save(store.ColClientes, clientes)
}

func (r *clienteRepo) Update(_ context.Context, id int, upd *model.Cliente) error {
	clientes := r.load()
	for i, c := range clientes {
		if c.ID == id {
			// Id and histories are immutable through Update; only the
			// registration fields change.
			upd.ID = id
			upd.Foto = c.Foto
			upd.Receitas = c.Receitas
			upd.Vendas = c.Vendas
			upd.Orcamentos = c.Orcamentos
			clientes[i] = *upd
			return r.st.Save(store.ColClientes, clientes)
		}
	}
	return ErrNaoEncontrado
}

func (r *clienteRepo) Delete(_ context.Context, id int) error {
	clientes := r.load()
	for i, c := range clientes {
		if c.ID == id {
			clientes = append(clientes[:i], clientes[i+1:]...)
			return r.st.Save(store.ColClientes, clientes)
		}
	}
	return ErrNaoEncontrado
}

func (r *clienteRepo) AppendVenda(_ context.Context, id int, v model.VendaHistorico) error {
	return r.mutate(id, func(c *model.Cliente) {
		c.Vendas = append(c.Vendas, v)
	})
}

func (r *clienteRepo) AppendOrcamento(_ context.Context, id int, o model.OrcamentoHistorico) error {
	return r.mutate(id, func(c *model.Cliente) {
		c.Orcamentos = append(c.Orcamentos, o)
	})
}

func (r *clienteRepo) AppendReceita(_ context.Context, id int, rx model.Receita) error {
	return r.mutate(id, func(c *model.Cliente) {
		c.Receitas = append(c.Receitas, rx)
	})
}

func (r *clienteRepo) SetFoto(_ context.Context, id int, arquivo string) error {
	return r.mutate(id, func(c *model.Cliente) {
		c.Foto = arquivo
	})
}

func (r *clienteRepo) mutate(id int, fn func(*model.Cliente)) error {
	clientes := r.load()
	for i := range clientes {
		if clientes[i].ID == id {
			fn(&clientes[i])
			return r.st.Save(store.ColClientes, clientes)
		}
	}
	return ErrNaoEncontrado
}
