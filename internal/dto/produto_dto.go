package dto

import (
	"github.com/shopspring/decimal"
)

type CriarProdutoRequest struct {
	Nome       string          `json:"nome" validate:"required"`
	Codigo     string          `json:"codigo" validate:"required"`
	Tipo       string          `json:"tipo" validate:"required,oneof=Armação Lente 'Lente Contato' Acessório"`
	Quantidade int             `json:"quantidade" validate:"min=0"`
	Preco      decimal.Decimal `json:"preco" validate:"min=0"`
	Marca      string          `json:"marca"`
}

type AtualizarProdutoRequest = CriarProdutoRequest
