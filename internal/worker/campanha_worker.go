package worker

// campanha_worker.go
// Delivers marketing campaign messages by e-mail to customers that have one
// on file. WhatsApp delivery stays manual (the API returns wa.me links); the
// queue only carries the e-mail side.

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/luizeletrico1/sistema-otica-fim/internal/infra"
)

// CampanhaJobPayload is the job envelope pushed to QueueCampanha.
type CampanhaJobPayload struct {
	ToEmail string `json:"to_email"`
	Assunto string `json:"assunto"`
	Corpo   string `json:"corpo"`
}

// CampanhaWorker processes campaign delivery jobs.
type CampanhaWorker struct {
	mailer *infra.Mailer
}

func NewCampanhaWorker(mailer *infra.Mailer) *CampanhaWorker {
	return &CampanhaWorker{mailer: mailer}
}

// Process sends one campaign message. Failures are logged and dropped; no
// retry, matching the best-effort delivery contract.
func (w *CampanhaWorker) Process(_ context.Context, raw json.RawMessage) {
	var payload CampanhaJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("campanha_worker: payload inválido")
		return
	}
	if payload.ToEmail == "" {
		log.Warn().Msg("campanha_worker: to_email vazio — ignorado")
		return
	}

	if err := w.mailer.SendMensagem(payload.ToEmail, payload.Assunto, payload.Corpo); err != nil {
		log.Error().Err(err).Str("to", payload.ToEmail).Msg("campanha_worker: falha no envio")
		return
	}
	log.Info().Str("to", payload.ToEmail).Msg("campanha_worker: mensagem enviada")
}
