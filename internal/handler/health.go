package handler

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/luizeletrico1/sistema-otica-fim/internal/infra"
	"github.com/luizeletrico1/sistema-otica-fim/internal/store"
)

// Health returns a JSON health check response.
// Checks the data directory, Redis (when configured) and the state of the
// external lookup circuit breakers; never exposes paths or credentials.
func Health(st *store.Store, rdb *redis.Client, cep *infra.CEPClient, geocoder *infra.GeocoderClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		dadosStatus := "ok"
		if _, err := os.Stat(st.Path(store.ColUsuarios)); err != nil && !os.IsNotExist(err) {
			dadosStatus = "error"
		}

		redisStatus := "disabled"
		if rdb != nil {
			redisStatus = "connected"
			if rdb.Ping(ctx).Err() != nil {
				redisStatus = "error"
			}
		}

		status := http.StatusOK
		if dadosStatus != "ok" || redisStatus == "error" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":       status == http.StatusOK,
			"dados":    dadosStatus,
			"redis":    redisStatus,
			"viacep":   cep.CircuitState().String(),
			"geocoder": geocoder.CircuitState().String(),
		})
	}
}
