package infra

// documento.go — plain-text rendering of receipts and quotes. The text body
// goes back in the API response for direct printing; pdf.go produces the
// matching PDF for download.

import (
	"fmt"
	"strings"

	"github.com/luizeletrico1/sistema-otica-fim/internal/model"
)

const larguraCupom = 42

func linha(b *strings.Builder) {
	b.WriteString(strings.Repeat("-", larguraCupom))
	b.WriteString("\n")
}

func centro(b *strings.Builder, s string) {
	pad := (larguraCupom - len([]rune(s))) / 2
	if pad < 0 {
		pad = 0
	}
	b.WriteString(strings.Repeat(" ", pad))
	b.WriteString(s)
	b.WriteString("\n")
}

func itemLinha(b *strings.Builder, nome, valor string) {
	espaco := larguraCupom - len([]rune(nome)) - len(valor)
	if espaco < 1 {
		corte := larguraCupom - len(valor) - 2
		if corte > 0 && len([]rune(nome)) > corte {
			nome = string([]rune(nome)[:corte-1]) + "…"
		}
		espaco = 1
	}
	b.WriteString(nome)
	b.WriteString(strings.Repeat(" ", espaco))
	b.WriteString(valor)
	b.WriteString("\n")
}

// ReciboTexto renders the settlement receipt as printable structured text.
func ReciboTexto(r *model.Recibo) string {
	var b strings.Builder
	centro(&b, r.Loja.Nome)
	centro(&b, fmt.Sprintf("%s | Tel: %s", r.Loja.Cidade, r.Loja.Telefone))
	linha(&b)
	fmt.Fprintf(&b, "VENDA Nº: %d\n", r.Numero)
	fmt.Fprintf(&b, "DATA: %s\n", r.Data)
	fmt.Fprintf(&b, "VENDEDOR: %s\n", r.Vendedor)
	linha(&b)
	fmt.Fprintf(&b, "CLIENTE: %s\n", r.Comprador.Nome)
	fmt.Fprintf(&b, "CPF: %s | RG: %s\n", r.Comprador.CPF, r.Comprador.RG)
	fmt.Fprintf(&b, "TEL: %s / %s\n", r.Comprador.Telefone, r.Comprador.WhatsApp)
	fmt.Fprintf(&b, "END: %s\n", r.Comprador.Endereco)
	linha(&b)
	itemLinha(&b, "ITEM", "VALOR")
	for _, item := range r.Itens {
		itemLinha(&b, item.Nome, "R$ "+item.Preco.StringFixed(2))
	}
	linha(&b)
	itemLinha(&b, "TOTAL:", "R$ "+r.Total.StringFixed(2))
	fmt.Fprintf(&b, "FORMA PAGTO: %s\n", r.FormaPagamento)
	fmt.Fprintf(&b, "PARCELAS: %dx de R$ %s\n", r.Parcelas, r.ValorParcela.StringFixed(2))
	if r.Obs != "" {
		fmt.Fprintf(&b, "OBS: %s\n", r.Obs)
	}
	b.WriteString("\n")
	centro(&b, "Obrigado pela preferência!")
	return b.String()
}

// OrcamentoTexto renders the quote document as printable structured text.
func OrcamentoTexto(o *model.Orcamento) string {
	var b strings.Builder
	centro(&b, "ORÇAMENTO - "+o.Loja.Nome)
	centro(&b, "Este documento não garante reserva de estoque.")
	linha(&b)
	fmt.Fprintf(&b, "EMISSÃO: %s\n", o.Emissao)
	fmt.Fprintf(&b, "VÁLIDO ATÉ: %s\n", o.Validade)
	fmt.Fprintf(&b, "CONSULTOR: %s\n", o.Consultor)
	linha(&b)
	fmt.Fprintf(&b, "CLIENTE: %s\n", o.Comprador.Nome)
	fmt.Fprintf(&b, "CPF: %s | TEL: %s\n", o.Comprador.CPF, o.Comprador.Telefone)
	fmt.Fprintf(&b, "END: %s\n", o.Comprador.Endereco)
	linha(&b)
	itemLinha(&b, "ITEM", "VALOR")
	for _, item := range o.Itens {
		itemLinha(&b, item.Nome, "R$ "+item.Preco.StringFixed(2))
	}
	linha(&b)
	itemLinha(&b, "TOTAL:", "R$ "+o.Total.StringFixed(2))
	fmt.Fprintf(&b, "CONDIÇÃO: %s (%dx)\n", o.FormaPagamento, o.Parcelas)
	if o.Obs != "" {
		fmt.Fprintf(&b, "OBS: %s\n", o.Obs)
	}
	b.WriteString("\n")
	centro(&b, "* Orçamento sujeito a alteração de valores após a validade.")
	centro(&b, "NÃO POSSUI VALOR FISCAL")
	return b.String()
}
