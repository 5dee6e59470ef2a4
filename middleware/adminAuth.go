package middleware

import (
	"net/http"

	adminRepo "hotelify/database/repository/admin"
	"hotelify/models"
	"hotelify/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthAdminMiddleware validates an admin bearer token and stores the
// requester identity, flagged as admin, on the context.
func JWTAuthAdminMiddleware(admins adminRepo.AdminRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Missing or invalid Authorization header",
			})
			return
		}

		subject, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || subject == "" || role != utils.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Unauthorized admin access",
			})
			return
		}

		adm, err := admins.GetByID(subject)
		if err != nil || adm == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Unauthorized admin access",
			})
			return
		}

		c.Set("requester", models.Requester{ID: adm.ID, Name: adm.Username, Admin: true})
		c.Next()
	}
}
