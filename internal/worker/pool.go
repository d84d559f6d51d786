package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const QueueCampanha = "jobs:campanha"

// Job is the generic envelope for async tasks.
type Job struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Dispatcher enqueues async jobs into Redis lists; the worker pool dequeues
// them via BRPOP. A nil Dispatcher (no Redis configured) silently drops
// enqueues — campaign delivery is best effort.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// Enabled reports whether jobs actually reach a queue.
func (d *Dispatcher) Enabled() bool {
	return d != nil && d.rdb != nil
}

// EnqueueCampanha pushes one campaign delivery job.
func (d *Dispatcher) EnqueueCampanha(ctx context.Context, payload interface{}) error {
	if d == nil || d.rdb == nil {
		return nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	job := Job{Type: "campanha", Payload: data}
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, QueueCampanha, encoded).Err()
}

// StartWorkerPool launches numWorkers goroutines consuming the campaign
// queue. Each goroutine blocks on BRPOP — zero CPU when idle.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, campanha *CampanhaWorker, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, rdb, campanha, i)
	}
	log.Info().Msgf("worker pool iniciado com %d workers", numWorkers)
}

func runWorker(ctx context.Context, rdb *redis.Client, campanha *CampanhaWorker, id int) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d encerrando", id)
			return
		default:
			// Blocking pop — waits up to 5s then loops to check ctx
			result, err := rdb.BRPop(ctx, 5*time.Second, QueueCampanha).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			processJob(ctx, campanha, result[1])
		}
	}
}

func processJob(ctx context.Context, campanha *CampanhaWorker, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Err(err).Msg("worker: job ilegível descartado")
		return
	}
	switch job.Type {
	case "campanha":
		campanha.Process(ctx, job.Payload)
	default:
		log.Warn().Str("type", job.Type).Msg("worker: tipo de job desconhecido")
	}
}
