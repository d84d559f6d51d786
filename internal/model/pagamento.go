package model

// Payment methods accepted at the counter. The two last entries are the
// only ones that split into installments.
const (
	PagamentoDinheiro     = "DINHEIRO"
	PagamentoPix          = "PIX"
	PagamentoDebito       = "CARTÃO DE DÉBITO"
	PagamentoCredito      = "CARTÃO DE CRÉDITO"
	PagamentoBoleto       = "BOLETO"
	PagamentoParcelamento = "PARCELAMENTO DIRETO"
)

var FormasPagamento = []string{
	PagamentoDinheiro,
	PagamentoPix,
	PagamentoDebito,
	PagamentoCredito,
	PagamentoBoleto,
	PagamentoParcelamento,
}

func FormaPagamentoValida(f string) bool {
	for _, v := range FormasPagamento {
		if v == f {
			return true
		}
	}
	return false
}

// FormaParcelavel reports whether the method accepts more than one parcela.
func FormaParcelavel(f string) bool {
	return f == PagamentoCredito || f == PagamentoParcelamento
}

// MaxParcelas caps installment plans.
const MaxParcelas = 12
