package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/luizeletrico1/sistema-otica-fim/internal/config"
	"github.com/luizeletrico1/sistema-otica-fim/internal/dto"
	"github.com/luizeletrico1/sistema-otica-fim/internal/middleware"
	"github.com/luizeletrico1/sistema-otica-fim/internal/model"
	"github.com/luizeletrico1/sistema-otica-fim/internal/repository"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	CriarUsuario(ctx context.Context, req dto.CriarUsuarioRequest) (*dto.UsuarioResponse, error)
	ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error)
	AtualizarUsuario(ctx context.Context, login string, req dto.AtualizarUsuarioRequest) (*dto.UsuarioResponse, error)
	RemoverUsuario(ctx context.Context, login string) error
}

type authService struct {
	repo repository.UsuarioRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.UsuarioRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.FindByUsername(ctx, req.Usuario)
	if err != nil {
		return nil, errors.New("usuário ou senha inválidos")
	}

	// Passwords are compared exactly as stored; only the login is normalized.
	if user.Senha != req.Senha {
		return nil, errors.New("usuário ou senha inválidos")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:     token,
		TokenType: "bearer",
		ExpiresIn: s.cfg.SessionExpirationHours * 3600,
		Usuario:   toUsuarioResponse(user),
	}, nil
}

func (s *authService) generateToken(user *model.Usuario) (string, error) {
	now := time.Now()
	claims := middleware.SessaoClaims{
		Usuario: user.Usuario,
		Nome:    user.Nome,
		Perfil:  user.Perfil,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.cfg.SessionExpirationHours) * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.SessionSecret))
}

func (s *authService) CriarUsuario(ctx context.Context, req dto.CriarUsuarioRequest) (*dto.UsuarioResponse, error) {
	user := &model.Usuario{
		Usuario: repository.NormalizeUsername(req.Usuario),
		Senha:   req.Senha,
		Nome:    req.Nome,
		Perfil:  req.Perfil,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	resp := toUsuarioResponse(user)
	return &resp, nil
}

func (s *authService) ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UsuarioResponse, 0, len(users))
	for i := range users {
		out = append(out, toUsuarioResponse(&users[i]))
	}
	return out, nil
}

func (s *authService) AtualizarUsuario(ctx context.Context, login string, req dto.AtualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	user := &model.Usuario{
		Usuario: repository.NormalizeUsername(login),
		Senha:   req.Senha,
		Nome:    req.Nome,
		Perfil:  req.Perfil,
	}
	if err := s.repo.Update(ctx, login, user); err != nil {
		return nil, err
	}
	resp := toUsuarioResponse(user)
	return &resp, nil
}

func (s *authService) RemoverUsuario(ctx context.Context, login string) error {
	return s.repo.Delete(ctx, login)
}

func toUsuarioResponse(u *model.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{Usuario: u.Usuario, Nome: u.Nome, Perfil: u.Perfil}
}
