package model

import (
	"github.com/shopspring/decimal"
)

// LojaInfo is the letterhead printed on every emitted document.
type LojaInfo struct {
	Nome     string `json:"nome"`
	Cidade   string `json:"cidade"`
	Telefone string `json:"telefone"`
}

// DadosComprador is the buyer block of a receipt or quote. It is a snapshot
// of the confirmed form data, not a reference to a stored cliente — ad-hoc
// buyers produce documents too.
type DadosComprador struct {
	Nome     string `json:"nome"`
	CPF      string `json:"cpf"`
	RG       string `json:"rg"`
	Telefone string `json:"telefone"`
	WhatsApp string `json:"whatsapp"`
	Endereco string `json:"endereco"`
}

// ItemDocumento is one unit line. Two lines of the same product stay as two
// lines; there is no quantity aggregation.
type ItemDocumento struct {
	Nome  string          `json:"nome"`
	Preco decimal.Decimal `json:"preco"`
}

// Recibo is the printable settlement document of a completed sale.
type Recibo struct {
	Loja           LojaInfo        `json:"loja"`
	Numero         int64           `json:"numero"`
	Data           string          `json:"data"`
	Vendedor       string          `json:"vendedor"`
	Comprador      DadosComprador  `json:"comprador"`
	Itens          []ItemDocumento `json:"itens"`
	Total          decimal.Decimal `json:"total"`
	FormaPagamento string          `json:"forma_pagamento"`
	Parcelas       int             `json:"parcelas"`
	ValorParcela   decimal.Decimal `json:"valor_parcela"`
	Obs            string          `json:"obs,omitempty"`
}

// Orcamento is the printable quote document. It never reserves stock and
// carries an expiry date instead of a sale number.
type Orcamento struct {
	Loja           LojaInfo        `json:"loja"`
	Emissao        string          `json:"emissao"`
	Validade       string          `json:"validade"`
	Consultor      string          `json:"consultor"`
	Comprador      DadosComprador  `json:"comprador"`
	Itens          []ItemDocumento `json:"itens"`
	Total          decimal.Decimal `json:"total"`
	FormaPagamento string          `json:"forma_pagamento"`
	Parcelas       int             `json:"parcelas"`
	ValorParcela   decimal.Decimal `json:"valor_parcela"`
	Obs            string          `json:"obs,omitempty"`
}
