package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/luizeletrico1/sistema-otica-fim/internal/dto"
	"github.com/luizeletrico1/sistema-otica-fim/internal/model"
	"github.com/luizeletrico1/sistema-otica-fim/internal/repository"
)

var extensoesFoto = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

type ClienteService interface {
	Listar(ctx context.Context, busca string) ([]model.Cliente, error)
	Buscar(ctx context.Context, id int) (*model.Cliente, error)
	Criar(ctx context.Context, req dto.CriarClienteRequest) (*model.Cliente, error)
	Atualizar(ctx context.Context, id int, req dto.AtualizarClienteRequest) (*model.Cliente, error)
	Remover(ctx context.Context, id int) error
	SalvarFoto(ctx context.Context, id int, nomeOriginal string, conteudo io.Reader) (string, error)
	FotoPath(ctx context.Context, id int) (string, error)
}

type clienteService struct {
	repo     repository.ClienteRepository
	fotosDir string
}

func NewClienteService(repo repository.ClienteRepository, fotosDir string) ClienteService {
	return &clienteService{repo: repo, fotosDir: fotosDir}
}

func (s *clienteService) Listar(ctx context.Context, busca string) ([]model.Cliente, error) {
	clientes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if busca == "" {
		return clientes, nil
	}
	termo := strings.ToLower(busca)
	out := make([]model.Cliente, 0, len(clientes))
	for _, c := range clientes {
		if strings.Contains(strings.ToLower(c.Nome), termo) || strings.Contains(c.CPF, busca) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *clienteService) Buscar(ctx context.Context, id int) (*model.Cliente, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *clienteService) Criar(ctx context.Context, req dto.CriarClienteRequest) (*model.Cliente, error) {
	c := fromClienteRequest(req)
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *clienteService) Atualizar(ctx context.Context, id int, req dto.AtualizarClienteRequest) (*model.Cliente, error) {
	c := fromClienteRequest(req)
	if err := s.repo.Update(ctx, id, c); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *clienteService) Remover(ctx context.Context, id int) error {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	// Orphaned photo files are removed best-effort; the record is gone
	// either way.
	if c.Foto != "" {
		_ = os.Remove(filepath.Join(s.fotosDir, c.Foto))
	}
	return nil
}

func (s *clienteService) SalvarFoto(ctx context.Context, id int, nomeOriginal string, conteudo io.Reader) (string, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(nomeOriginal))
	if !extensoesFoto[ext] {
		return "", errors.New("formato de imagem não suportado")
	}

	if err := os.MkdirAll(s.fotosDir, 0o755); err != nil {
		return "", err
	}
	nome := fmt.Sprintf("cliente_%d%s", id, ext)
	f, err := os.Create(filepath.Join(s.fotosDir, nome))
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := io.Copy(f, conteudo); err != nil {
		return "", err
	}

	if err := s.repo.SetFoto(ctx, id, nome); err != nil {
		return "", err
	}
	return nome, nil
}

func (s *clienteService) FotoPath(ctx context.Context, id int) (string, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	if c.Foto == "" {
		return "", repository.ErrNaoEncontrado
	}
	return filepath.Join(s.fotosDir, c.Foto), nil
}

func fromClienteRequest(req dto.CriarClienteRequest) *model.Cliente {
	return &model.Cliente{
		Nome:       strings.TrimSpace(req.Nome),
		CPF:        req.CPF,
		RG:         req.RG,
		Nascimento: req.Nascimento,
		Contato: model.Contato{
			Telefone: req.Contato.Telefone,
			WhatsApp: req.Contato.WhatsApp,
			Email:    req.Contato.Email,
		},
		Endereco: model.Endereco{
			CEP:        req.Endereco.CEP,
			Logradouro: req.Endereco.Logradouro,
			Numero:     req.Endereco.Numero,
			Bairro:     req.Endereco.Bairro,
			Municipio:  req.Endereco.Municipio,
			Estado:     req.Endereco.Estado,
			Pais:       req.Endereco.Pais,
		},
	}
}
