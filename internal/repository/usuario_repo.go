package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/luizeletrico1/sistema-otica-fim/internal/model"
	"github.com/luizeletrico1/sistema-otica-fim/internal/store"
)

// ErrNaoEncontrado is returned by every repository when the target record is
// absent — including the "deleted by another session" case (the caller falls
// back to no-record-selected semantics).
var ErrNaoEncontrado = errors.New("registro não encontrado")

// UsuarioRepository defines data access for system logins.
type UsuarioRepository interface {
	List(ctx context.Context) ([]model.Usuario, error)
	FindByUsername(ctx context.Context, username string) (*model.Usuario, error)
	Create(ctx context.Context, u *model.Usuario) error
	Update(ctx context.Context, username string, u *model.Usuario) error
	Delete(ctx context.Context, username string) error
	EnsureAdmin(ctx context.Context) error
}

type usuarioRepo struct{ st *store.Store }

func NewUsuarioRepository(st *store.Store) UsuarioRepository { return &usuarioRepo{st: st} }

// NormalizeUsername applies the login comparison rule: lowercase + trim.
func NormalizeUsername(u string) string {
	return strings.ToLower(strings.TrimSpace(u))
}

func (r *usuarioRepo) load() []model.Usuario {
	var usuarios []model.Usuario
	_ = r.st.Load(store.ColUsuarios, &usuarios)
	return usuarios
}

func (r *usuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	return r.load(), nil
}

func (r *usuarioRepo) FindByUsername(_ context.Context, username string) (*model.Usuario, error) {
	alvo := NormalizeUsername(username)
	for _, u := range r.load() {
		if NormalizeUsername(u.Usuario) == alvo {
			u := u
			return &u, nil
		}
	}
	return nil, ErrNaoEncontrado
}

func (r *usuarioRepo) Create(_ context.Context, novo *model.Usuario) error {
	usuarios := r.load()
	alvo := NormalizeUsername(novo.Usuario)
	for _, u := range usuarios {
		if NormalizeUsername(u.Usuario) == alvo {
			return errors.New("login já existe")
		}
	}
	usuarios = append(usuarios, *novo)
	return r.st.Save(store.ColUsuarios, usuarios)
}

func (r *usuarioRepo) Update(_ context.Context, username string, upd *model.Usuario) error {
	usuarios := r.load()
	alvo := NormalizeUsername(username)
	for i, u := range usuarios {
		if NormalizeUsername(u.Usuario) == alvo {
			// Login is immutable; only nome, senha and perfil change.
			usuarios[i].Nome = upd.Nome
			usuarios[i].Senha = upd.Senha
			usuarios[i].Perfil = upd.Perfil
			return r.st.Save(store.ColUsuarios, usuarios)
		}
	}
	return ErrNaoEncontrado
}

func (r *usuarioRepo) Delete(_ context.Context, username string) error {
	alvo := NormalizeUsername(username)
	if alvo == "admin" {
		return errors.New("o usuário admin não pode ser removido")
	}
	usuarios := r.load()
	for i, u := range usuarios {
		if NormalizeUsername(u.Usuario) == alvo {
			usuarios = append(usuarios[:i], usuarios[i+1:]...)
			return r.st.Save(store.ColUsuarios, usuarios)
		}
	}
	return ErrNaoEncontrado
}

// EnsureAdmin seeds the default administrator when the collection is empty or
// unreadable, so a fresh install can always log in.
func (r *usuarioRepo) EnsureAdmin(_ context.Context) error {
	if len(r.load()) > 0 {
		return nil
	}
	padrao := []model.Usuario{{
		Usuario: "admin",
		Senha:   "123",
		Nome:    "Administrador",
		Perfil:  model.PerfilAdmin,
	}}
	if err := r.st.Save(store.ColUsuarios, padrao); err != nil {
		return err
	}
	log.Info().Msg("usuário admin padrão criado")
	return nil
}
