package model

import (
	"github.com/shopspring/decimal"
)

// Tipos de produto aceitos no estoque.
var TiposProduto = []string{"Armação", "Lente", "Lente Contato", "Acessório"}

// Produto is one stock item. Codigo is the human-facing selector used at the
// checkout; its uniqueness is not enforced — lookups take the first match.
type Produto struct {
	ID         int             `json:"id"`
	Nome       string          `json:"nome"`
	Codigo     string          `json:"codigo"`
	Tipo       string          `json:"tipo"`
	Quantidade int             `json:"quantidade"`
	Preco      decimal.Decimal `json:"preco"`
	Marca      string          `json:"marca"`
}

// TipoProdutoValido reports whether t is a known product type.
func TipoProdutoValido(t string) bool {
	for _, v := range TiposProduto {
		if v == t {
			return true
		}
	}
	return false
}
