package dto

import (
	"github.com/shopspring/decimal"
)

// CompradorRequest identifies the buyer when the sale is not linked to a
// registered customer (balcão sale). When ClienteID is set on the sale the
// buyer data comes from the customer record instead.
type CompradorRequest struct {
	Nome     string `json:"nome"`
	CPF      string `json:"cpf"`
	RG       string `json:"rg"`
	Telefone string `json:"telefone"`
	WhatsApp string `json:"whatsapp"`
	Endereco string `json:"endereco"`
}

type RegistrarVendaRequest struct {
	ClienteID      *int              `json:"cliente_id"`
	Comprador      *CompradorRequest `json:"comprador"`
	Codigos        []string          `json:"codigos" validate:"required,min=1"`
	FormaPagamento string            `json:"forma_pagamento" validate:"required"`
	Parcelas       int               `json:"parcelas"`
	Obs            string            `json:"obs"`
}

type SimulacaoRequest struct {
	Codigos        []string `json:"codigos" validate:"required,min=1"`
	FormaPagamento string   `json:"forma_pagamento" validate:"required"`
	Parcelas       int      `json:"parcelas"`
}

type ItemVendaResponse struct {
	ProdutoID int             `json:"produto_id"`
	Nome      string          `json:"nome"`
	Codigo    string          `json:"codigo"`
	Preco     decimal.Decimal `json:"preco"`
}

type SimulacaoResponse struct {
	Itens          []ItemVendaResponse `json:"itens"`
	Total          decimal.Decimal     `json:"total"`
	FormaPagamento string              `json:"forma_pagamento"`
	Parcelas       int                 `json:"parcelas"`
	ValorParcela   decimal.Decimal     `json:"valor_parcela"`
}

type VendaResponse struct {
	Numero         int64               `json:"numero"`
	Data           string              `json:"data"`
	Vendedor       string              `json:"vendedor"`
	Itens          []ItemVendaResponse `json:"itens"`
	Total          decimal.Decimal     `json:"total"`
	FormaPagamento string              `json:"forma_pagamento"`
	Parcelas       int                 `json:"parcelas"`
	ValorParcela   decimal.Decimal     `json:"valor_parcela"`
	Documento      string              `json:"documento"`
	PDF            string              `json:"pdf,omitempty"`
}

type OrcamentoRequest struct {
	ClienteID      *int              `json:"cliente_id"`
	Comprador      *CompradorRequest `json:"comprador"`
	Codigos        []string          `json:"codigos" validate:"required,min=1"`
	FormaPagamento string            `json:"forma_pagamento" validate:"required"`
	Parcelas       int               `json:"parcelas"`
	Obs            string            `json:"obs"`
}

type OrcamentoResponse struct {
	Emissao        string              `json:"emissao"`
	Validade       string              `json:"validade"`
	Consultor      string              `json:"consultor"`
	Itens          []ItemVendaResponse `json:"itens"`
	Total          decimal.Decimal     `json:"total"`
	FormaPagamento string              `json:"forma_pagamento"`
	Parcelas       int                 `json:"parcelas"`
	ValorParcela   decimal.Decimal     `json:"valor_parcela"`
	Documento      string              `json:"documento"`
	PDF            string              `json:"pdf,omitempty"`
}
