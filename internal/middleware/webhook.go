package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-availability/internal/httperr"
)

const WebhookTokenHeader = "X-Webhook-Token"

// WebhookTokenValidate guards the booking ingestion endpoint. An empty
// configured token rejects every request.
func WebhookTokenValidate(token string) gin.HandlerFunc {
	expected := []byte(token)

	return func(c *gin.Context) {
		got := []byte(c.GetHeader(WebhookTokenHeader))

		if len(expected) == 0 || subtle.ConstantTimeCompare(got, expected) != 1 {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_webhook_token", "Token de webhook inválido.")
			return
		}

		c.Next()
	}
}
