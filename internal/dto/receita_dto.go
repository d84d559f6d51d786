package dto

import (
	"github.com/shopspring/decimal"
)

type DioptriaRequest struct {
	Esf  decimal.Decimal `json:"esf"`
	Cil  decimal.Decimal `json:"cil"`
	Eixo int             `json:"eixo" validate:"min=0,max=180"`
}

type CriarReceitaRequest struct {
	Data   string          `json:"data" validate:"required,datetime=2006-01-02"`
	Medico string          `json:"medico"`
	OD     DioptriaRequest `json:"od"`
	OE     DioptriaRequest `json:"oe"`
	Adicao decimal.Decimal `json:"adicao"`
	Obs    string          `json:"obs"`
}

// ReceitaVencidaResponse is one row of the expired-prescription report,
// carrying enough contact data to start a follow-up conversation.
type ReceitaVencidaResponse struct {
	ClienteID   int    `json:"cliente_id"`
	Nome        string `json:"nome"`
	WhatsApp    string `json:"whatsapp"`
	Data        string `json:"data"`
	Medico      string `json:"medico,omitempty"`
	DiasVencida int    `json:"dias_vencida"`
}
