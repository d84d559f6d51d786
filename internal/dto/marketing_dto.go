package dto

// FiltroClientesRequest selects the campaign audience. Modo "todos" takes
// everyone, "aniversariantes" keeps birthdays in Mes, "nome" keeps matches
// of the Nome substring.
type FiltroClientesRequest struct {
	Modo string `form:"modo" validate:"omitempty,oneof=todos aniversariantes nome"`
	Mes  int    `form:"mes" validate:"omitempty,min=1,max=12"`
	Nome string `form:"nome"`
}

type DisparoRequest struct {
	Modo     string `json:"modo" validate:"omitempty,oneof=todos aniversariantes nome"`
	Mes      int    `json:"mes" validate:"omitempty,min=1,max=12"`
	Nome     string `json:"nome"`
	Template string `json:"template" validate:"required"`
	PorEmail bool   `json:"por_email"`
}

// DisparoItemResponse is one prepared message: the rendered text plus a
// click-to-chat link when the stored number supports one.
type DisparoItemResponse struct {
	ClienteID        int    `json:"cliente_id"`
	Nome             string `json:"nome"`
	WhatsApp         string `json:"whatsapp"`
	Mensagem         string `json:"mensagem"`
	Link             string `json:"link,omitempty"`
	EmailEnfileirado bool   `json:"email_enfileirado"`
}

type TemplateRequest struct {
	Titulo string `json:"titulo" validate:"required"`
	Texto  string `json:"texto" validate:"required"`
}

type ConfigLojaRequest struct {
	ZapLoja    string `json:"zap_loja"`
	Assinatura string `json:"assinatura"`
}
