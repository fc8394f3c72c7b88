package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// ConfigCORS allows origins whose host matches one of the
// comma-separated allowed domains.
func ConfigCORS(allowedDomains string) gin.HandlerFunc {
	domains := strings.Split(allowedDomains, ",")
	for i := range domains {
		domains[i] = strings.TrimSpace(domains[i])
	}

	return cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		AllowOriginFunc: func(origin string) bool {
			for _, domain := range domains {
				if domain != "" && strings.HasSuffix(origin, domain) {
					return true
				}
			}

			return false
		},
		MaxAge: 12 * time.Hour,
	})
}
