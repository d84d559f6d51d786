package repository

import (
	"context"
	"errors"

	"github.com/luizeletrico1/sistema-otica-fim/internal/model"
	"github.com/luizeletrico1/sistema-otica-fim/internal/store"
)

// MensagemRepository defines data access for marketing templates and the
// store messaging config.
type MensagemRepository interface {
	ListTemplates(ctx context.Context) ([]model.TemplateMensagem, error)
	FindTemplate(ctx context.Context, titulo string) (*model.TemplateMensagem, error)
	CreateTemplate(ctx context.Context, t *model.TemplateMensagem) error
	UpdateTemplate(ctx context.Context, titulo string, t *model.TemplateMensagem) error
	DeleteTemplate(ctx context.Context, titulo string) error
	LoadConfig(ctx context.Context) (*model.ConfigLoja, error)
	SaveConfig(ctx context.Context, cfg *model.ConfigLoja) error
}

type mensagemRepo struct{ st *store.Store }

func NewMensagemRepository(st *store.Store) MensagemRepository { return &mensagemRepo{st: st} }

// templatesPadrao seeds a first-run install with the default campaign models.
var templatesPadrao = []model.TemplateMensagem{
	{Titulo: "Aniversário", Texto: "Parabéns {nome}! 🎂 A Fábrica de Óculos JR deseja muitas felicidades. Venha nos visitar!"},
	{Titulo: "Óculos Pronto", Texto: "Olá {nome}, seus óculos ficaram prontos! 😎 Pode vir buscar na loja."},
	{Titulo: "Cobrança Suave", Texto: "Oi {nome}, tudo bem? Vimos que tem uma pendência aqui na ótica. Vamos resolver?"},
}

func (r *mensagemRepo) loadTemplates() ([]model.TemplateMensagem, error) {
	if !r.st.Exists(store.ColTemplates) {
		if err := r.st.Save(store.ColTemplates, templatesPadrao); err != nil {
			return nil, err
		}
		return append([]model.TemplateMensagem(nil), templatesPadrao...), nil
	}
	var templates []model.TemplateMensagem
	_ = r.st.Load(store.ColTemplates, &templates)
	return templates, nil
}

func (r *mensagemRepo) ListTemplates(_ context.Context) ([]model.TemplateMensagem, error) {
	return r.loadTemplates()
}

// FindTemplate returns the first template with the given title (titles are
// not unique; the first one wins, matching the selector behavior).
func (r *mensagemRepo) FindTemplate(_ context.Context, titulo string) (*model.TemplateMensagem, error) {
	templates, err := r.loadTemplates()
	if err != nil {
		return nil, err
	}
	for _, t := range templates {
		if t.Titulo == titulo {
			t := t
			return &t, nil
		}
	}
	return nil, ErrNaoEncontrado
}

func (r *mensagemRepo) CreateTemplate(_ context.Context, novo *model.TemplateMensagem) error {
	if novo.Titulo == "" || novo.Texto == "" {
		return errors.New("preencha título e texto")
	}
	templates, err := r.loadTemplates()
	if err != nil {
		return err
	}
	templates = append(templates, *novo)
	return r.st.Save(store.ColTemplates, templates)
}

func (r *mensagemRepo) UpdateTemplate(_ context.Context, titulo string, upd *model.TemplateMensagem) error {
	templates, err := r.loadTemplates()
	if err != nil {
		return err
	}
	for i, t := range templates {
		if t.Titulo == titulo {
			templates[i] = *upd
			return r.st.Save(store.ColTemplates, templates)
		}
	}
	return ErrNaoEncontrado
}

func (r *mensagemRepo) DeleteTemplate(_ context.Context, titulo string) error {
	templates, err := r.loadTemplates()
	if err != nil {
		return err
	}
	for i, t := range templates {
		if t.Titulo == titulo {
			templates = append(templates[:i], templates[i+1:]...)
			return r.st.Save(store.ColTemplates, templates)
		}
	}
	return ErrNaoEncontrado
}

func (r *mensagemRepo) LoadConfig(_ context.Context) (*model.ConfigLoja, error) {
	cfg := &model.ConfigLoja{}
	_ = r.st.Load(store.ColConfigLoja, cfg)
	return cfg, nil
}

func (r *mensagemRepo) SaveConfig(_ context.Context, cfg *model.ConfigLoja) error {
	return r.st.Save(store.ColConfigLoja, cfg)
}
