package model

import (
	"github.com/shopspring/decimal"
)

// Date layouts accepted throughout the stored data. Older records carry
// brazilian dates (02/01/2006); newer ones ISO (2006-01-02). Both must parse.
const (
	DataBR     = "02/01/2006"
	DataBRHora = "02/01/2006 15:04"
	DataISO    = "2006-01-02"
)

// Cliente is the full customer record, including the append-only histories
// embedded in it. There is no cross-collection referential integrity: deleting
// a cliente leaves produtos and documents untouched.
type Cliente struct {
	ID         int                  `json:"id"`
	Nome       string               `json:"nome"`
	CPF        string               `json:"cpf"`
	RG         string               `json:"rg"`
	Nascimento string               `json:"nascimento"` // ISO on new records
	Contato    Contato              `json:"contato"`
	Endereco   Endereco             `json:"endereco"`
	Foto       string               `json:"foto,omitempty"`
	Receitas   []Receita            `json:"receitas"`
	Vendas     []VendaHistorico     `json:"historico_vendas"`
	Orcamentos []OrcamentoHistorico `json:"historico_orcamentos,omitempty"`
}

type Contato struct {
	Telefone string `json:"telefone"`
	WhatsApp string `json:"whatsapp"`
	Email    string `json:"email,omitempty"`
}

type Endereco struct {
	CEP        string `json:"cep"`
	Logradouro string `json:"logradouro"`
	Numero     string `json:"numero"`
	Bairro     string `json:"bairro"`
	Municipio  string `json:"municipio"`
	Estado     string `json:"estado"`
	Pais       string `json:"pais"`
}

// Receita is one prescription entry. Append-only, most recent last.
type Receita struct {
	Data   string          `json:"data"` // DataISO on new records, DataBR on legacy ones
	Medico string          `json:"medico"`
	OD     Dioptria        `json:"od"`
	OE     Dioptria        `json:"oe"`
	Adicao decimal.Decimal `json:"adicao"`
	Obs    string          `json:"obs"`
}

// Dioptria holds the per-eye measurements.
type Dioptria struct {
	Esf  decimal.Decimal `json:"esf"`
	Cil  decimal.Decimal `json:"cil"`
	Eixo int             `json:"eixo"`
}

// VendaHistorico is one past sale summary embedded in the cliente.
type VendaHistorico struct {
	Data      string          `json:"data"` // DataBRHora
	Itens     []string        `json:"itens"`
	Total     decimal.Decimal `json:"total"`
	Pagamento string          `json:"pagamento"` // ex.: "PIX (1x)"
	Vendedor  string          `json:"vendedor"`
}

// OrcamentoHistorico is one past quote summary embedded in the cliente.
type OrcamentoHistorico struct {
	Data  string          `json:"data"` // DataBR
	Itens []string        `json:"itens"`
	Total decimal.Decimal `json:"total"`
	Tipo  string          `json:"tipo"` // always "ORCAMENTO"
}
