package dto

type LoginRequest struct {
	Usuario string `json:"usuario" validate:"required"`
	Senha   string `json:"senha" validate:"required"`
}

type LoginResponse struct {
	Token     string          `json:"token"`
	TokenType string          `json:"token_type"`
	ExpiresIn int             `json:"expires_in"`
	Usuario   UsuarioResponse `json:"usuario"`
}

type UsuarioResponse struct {
	Usuario string `json:"usuario"`
	Nome    string `json:"nome"`
	Perfil  string `json:"perfil"`
}

type CriarUsuarioRequest struct {
	Usuario string `json:"usuario" validate:"required"`
	Senha   string `json:"senha" validate:"required"`
	Nome    string `json:"nome" validate:"required"`
	Perfil  string `json:"perfil" validate:"required,oneof=admin vendedor tecnico medico"`
}

// AtualizarUsuarioRequest changes everything except the login itself.
type AtualizarUsuarioRequest struct {
	Nome   string `json:"nome" validate:"required"`
	Senha  string `json:"senha" validate:"required"`
	Perfil string `json:"perfil" validate:"required,oneof=admin vendedor tecnico medico"`
}
