package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emanuelalzate12-bit/Proyecto/utils"
)

// RecoveryMiddleware converts a handler panic into a 500 response so a
// single bad request cannot take the process down.
func RecoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		utils.LogPanic(recovered, c.Request.Method+" "+c.Request.URL.Path)

		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Internal server error",
		})
		c.Abort()
	})
}
