// Package controller provides the HTTP handlers of the storefront panel:
// authentication, the customer shop, and the seller and admin areas.
package controller

import (
	"net/http"
	"strings"

	"storefront/web/session"

	"github.com/gin-gonic/gin"
)

// BaseController provides redirect helpers shared by all controllers.
type BaseController struct{}

// redirect sends the browser to a panel path, honoring the base path.
func (a *BaseController) redirect(c *gin.Context, path string) {
	c.Redirect(http.StatusFound, c.GetString("base_path")+strings.TrimPrefix(path, "/"))
}

// flashAndRedirect queues a flash message and redirects.
func (a *BaseController) flashAndRedirect(c *gin.Context, category, message, path string) {
	session.AddFlash(c, category, message)
	a.redirect(c, path)
}
