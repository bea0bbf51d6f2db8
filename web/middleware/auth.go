package middleware

import (
	"net/http"

	"storefront/database/model"
	"storefront/web/session"

	"github.com/gin-gonic/gin"
)

// RequireRoles gates a route group to sessions whose role is in the
// allow-list. Anonymous or wrong-role requests are redirected to login.
func RequireRoles(roles ...model.Role) gin.HandlerFunc {
	allowed := make(map[model.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		user := session.GetLoginUser(c)
		if user == nil || !allowed[user.Role] {
			c.Redirect(http.StatusFound, c.GetString("base_path")+"login")
			c.Abort()
			return
		}
		c.Next()
	}
}
