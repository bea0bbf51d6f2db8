package controller

import (
	"net"
	"net/http"
	"strconv"
	"strings"

	"storefront/config"
	"storefront/web/session"

	"github.com/gin-gonic/gin"
)

// getRemoteIp extracts the real IP address from the request headers or
// remote address.
func getRemoteIp(c *gin.Context) string {
	value := c.GetHeader("X-Real-IP")
	if value != "" {
		return value
	}
	value = c.GetHeader("X-Forwarded-For")
	if value != "" {
		ips := strings.Split(value, ",")
		return ips[0]
	}
	addr := c.Request.RemoteAddr
	ip, _, _ := net.SplitHostPort(addr)
	return ip
}

// html renders a template with the session user, pending flash messages
// and common context data merged in.
func html(c *gin.Context, name string, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["title"] = title
	data["base_path"] = c.GetString("base_path")
	data["cur_ver"] = config.GetVersion()
	if _, ok := data["flashes"]; !ok {
		data["flashes"] = session.PopFlashes(c)
	}
	if user := session.GetLoginUser(c); user != nil {
		data["username"] = user.Username
		data["role"] = string(user.Role)
		if user.ShopName != "" {
			data["shop_name"] = user.ShopName
		}
	}
	c.HTML(http.StatusOK, name, data)
}

// parsePrice parses a non-negative price form field.
func parsePrice(raw string) (float64, bool) {
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || price < 0 {
		return 0, false
	}
	return price, true
}

// parseStock parses a non-negative stock form field.
func parseStock(raw string) (int, bool) {
	stock, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || stock < 0 {
		return 0, false
	}
	return stock, true
}
