package dto

// ContatoRequest mirrors the nested contato block. WhatsApp is the one
// required contact channel (the store runs on it).
type ContatoRequest struct {
	Telefone string `json:"telefone"`
	WhatsApp string `json:"whatsapp" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
}

type EnderecoRequest struct {
	CEP        string `json:"cep"`
	Logradouro string `json:"logradouro"`
	Numero     string `json:"numero"`
	Bairro     string `json:"bairro"`
	Municipio  string `json:"municipio"`
	Estado     string `json:"estado"`
	Pais       string `json:"pais"`
}

// CriarClienteRequest carries the full registration form. Validation is
// presence-based only: nome and whatsapp.
type CriarClienteRequest struct {
	Nome       string          `json:"nome" validate:"required"`
	CPF        string          `json:"cpf"`
	RG         string          `json:"rg"`
	Nascimento string          `json:"nascimento" validate:"omitempty,datetime=2006-01-02"`
	Contato    ContatoRequest  `json:"contato" validate:"required"`
	Endereco   EnderecoRequest `json:"endereco"`
}

// AtualizarClienteRequest has the same shape; the id in the path wins and
// histories are untouched by updates.
type AtualizarClienteRequest = CriarClienteRequest
