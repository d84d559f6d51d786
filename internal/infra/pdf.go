package infra

// pdf.go — printable PDF generation using go-pdf/fpdf.
// Receipts and quotes share the A7 thermal layout:
//   - store letterhead
//   - document numbers / dates
//   - buyer block
//   - one row per unit line (no quantity aggregation)
//   - bold total and payment terms

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"github.com/luizeletrico1/sistema-otica-fim/internal/model"
)

// A7 ≈ 74mm × 105mm — close to thermal receipt paper.
func novoCupom() *fpdf.Fpdf {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 74, Ht: 105},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()
	return pdf
}

func cabecalho(pdf *fpdf.Fpdf, contentW float64, loja model.LojaInfo, subtitulo string) {
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 6, tr(loja.Nome), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, tr(fmt.Sprintf("%s | Tel: %s", loja.Cidade, loja.Telefone)), "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 4, tr(subtitulo), "", 1, "C", false, 0, "")
	pdf.Ln(1)
}

func blocoItens(pdf *fpdf.Fpdf, contentW float64, itens []model.ItemDocumento, total string) {
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	col1 := contentW * 0.68
	col2 := contentW * 0.32

	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(col1, 5, "ITEM", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, "VALOR", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	for _, item := range itens {
		nome := item.Nome
		if len([]rune(nome)) > 26 {
			nome = string([]rune(nome)[:25]) + "…"
		}
		pdf.CellFormat(col1, 4, tr(nome), "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 4, "R$ "+item.Preco.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(1)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 6, "TOTAL:", "T", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "R$ "+total, "T", 1, "R", false, 0, "")
}

// GerarReciboPDF writes the receipt PDF and returns its file name.
func GerarReciboPDF(r *model.Recibo, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0o755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	pdf := novoCupom()
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8

	cabecalho(pdf, contentW, r.Loja, "Comprovante de Venda")

	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(contentW, 4, tr(fmt.Sprintf("VENDA Nº %d", r.Numero)), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, tr("DATA: "+r.Data), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 4, tr("VENDEDOR: "+r.Vendedor), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 4, tr("CLIENTE: "+r.Comprador.Nome), "", 1, "L", false, 0, "")
	if r.Comprador.Endereco != "" {
		pdf.CellFormat(contentW, 4, tr("END: "+r.Comprador.Endereco), "", 1, "L", false, 0, "")
	}
	pdf.Ln(1)

	blocoItens(pdf, contentW, r.Itens, r.Total.StringFixed(2))

	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, tr("FORMA PAGTO: "+r.FormaPagamento), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 4, tr(fmt.Sprintf("PARCELAS: %dx de R$ %s", r.Parcelas, r.ValorParcela.StringFixed(2))), "", 1, "L", false, 0, "")

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.CellFormat(contentW, 4, tr("Obrigado pela preferência!"), "", 1, "C", false, 0, "")

	fileName := fmt.Sprintf("recibo_%d.pdf", r.Numero)
	if err := pdf.OutputFileAndClose(filepath.Join(storagePath, fileName)); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return fileName, nil
}

// GerarOrcamentoPDF writes the quote PDF and returns its file name.
func GerarOrcamentoPDF(o *model.Orcamento, storagePath string, numero int64) (string, error) {
	if err := os.MkdirAll(storagePath, 0o755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	pdf := novoCupom()
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8

	cabecalho(pdf, contentW, o.Loja, "ORÇAMENTO — sem reserva de estoque")

	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, tr("EMISSÃO: "+o.Emissao), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 4, tr("VÁLIDO ATÉ: "+o.Validade), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 4, tr("CONSULTOR: "+o.Consultor), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 4, tr("CLIENTE: "+o.Comprador.Nome), "", 1, "L", false, 0, "")
	pdf.Ln(1)

	blocoItens(pdf, contentW, o.Itens, o.Total.StringFixed(2))

	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, tr(fmt.Sprintf("CONDIÇÃO: %s (%dx)", o.FormaPagamento, o.Parcelas)), "", 1, "L", false, 0, "")

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "I", 6)
	pdf.CellFormat(contentW, 3, tr("* Sujeito a alteração de valores após a validade."), "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 3, tr("NÃO POSSUI VALOR FISCAL"), "", 1, "C", false, 0, "")

	fileName := fmt.Sprintf("orcamento_%d.pdf", numero)
	if err := pdf.OutputFileAndClose(filepath.Join(storagePath, fileName)); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return fileName, nil
}
