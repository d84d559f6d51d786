package model

// PlaceholderNome is replaced by the customer's first name when a template
// is rendered.
const PlaceholderNome = "{nome}"

// TemplateMensagem is a reusable marketing message. Titulo acts as the
// selector key; uniqueness is not enforced by the storage layer.
type TemplateMensagem struct {
	Titulo string `json:"titulo"`
	Texto  string `json:"texto"`
}

// ConfigLoja holds the store-wide messaging settings.
type ConfigLoja struct {
	ZapLoja    string `json:"zap_loja"`
	Assinatura string `json:"assinatura"`
}
