package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/hazard_hotspots/internal/config"
	"github.com/shenikar/hazard_hotspots/internal/models"
	"github.com/sirupsen/logrus"
)

const identityKey = "identity"

// APIKeyAuthMiddleware - middleware для аутентификации по API-ключу.
// Ключ сопоставляется с пользователем и ролью из конфигурации, личность кладется в контекст.
func APIKeyAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	keys := make(map[string]models.Identity, len(cfg.APIKeys))
	for _, k := range cfg.APIKeys {
		keys[k.Key] = models.Identity{UserID: k.UserID, Role: models.Role(k.Role)}
	}

	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			// Проверяем также заголовок Authorization: Bearer
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				apiKey = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if apiKey == "" {
			log.Warn("API key missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key required"})
			return
		}

		identity, ok := keys[apiKey]
		if !ok {
			log.Warn("Invalid API key provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// identityFrom возвращает личность, установленную middleware
func identityFrom(c *gin.Context) models.Identity {
	if v, ok := c.Get(identityKey); ok {
		if identity, ok := v.(models.Identity); ok {
			return identity
		}
	}
	return models.Identity{}
}
