package controller

import (
	"errors"
	"strings"

	"storefront/database/model"
	"storefront/logger"
	"storefront/web/service"
	"storefront/web/session"

	"github.com/gin-gonic/gin"
)

// LoginForm represents the login request fields.
type LoginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

// RegisterForm represents the registration request fields.
type RegisterForm struct {
	Username        string `form:"username"`
	Email           string `form:"email"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirm_password"`
	Role            string `form:"role"`
	ShopName        string `form:"shop_name"`
}

// IndexController handles the root redirect and the login, registration
// and logout routes.
type IndexController struct {
	BaseController

	userService   service.UserService
	sessionMaxAge int
}

// NewIndexController creates an IndexController and registers its routes.
func NewIndexController(g *gin.RouterGroup, sessionMaxAge int) *IndexController {
	a := &IndexController{sessionMaxAge: sessionMaxAge}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.index)
	g.GET("/login", a.loginPage)
	g.POST("/login", a.login)
	g.GET("/register", a.registerPage)
	g.POST("/register", a.register)
	g.GET("/logout", a.logout)
}

// index redirects logged-in users to their role's landing page.
func (a *IndexController) index(c *gin.Context) {
	user := session.GetLoginUser(c)
	if user == nil {
		a.redirect(c, "login")
		return
	}
	a.redirect(c, landingPath(user.Role))
}

func landingPath(role model.Role) string {
	switch role {
	case model.RoleAdmin:
		return "admin"
	case model.RoleSeller:
		return "seller"
	default:
		return "home"
	}
}

func (a *IndexController) loginPage(c *gin.Context) {
	if session.IsLogin(c) {
		a.redirect(c, "/")
		return
	}
	html(c, "login.html", "Login", nil)
}

// login authenticates the user and stores the account in the session.
func (a *IndexController) login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		html(c, "login.html", "Login", gin.H{"error": "Invalid form data"})
		return
	}
	form.Email = strings.TrimSpace(form.Email)

	if form.Email == "" || form.Password == "" {
		html(c, "login.html", "Login", gin.H{"error": "Email and password are required"})
		return
	}

	user, err := a.userService.Authenticate(form.Email, form.Password)
	if errors.Is(err, service.ErrBadCredentials) {
		logger.Warningf("failed login for %q from %s", form.Email, getRemoteIp(c))
		html(c, "login.html", "Login", gin.H{"error": "Invalid credentials"})
		return
	} else if err != nil {
		logger.Warning("login err:", err)
		html(c, "login.html", "Login", gin.H{"error": "Login error occurred"})
		return
	}

	if err := session.SetMaxAge(c, a.sessionMaxAge*60); err != nil {
		logger.Warning("unable to set session max age:", err)
	}
	if err := session.SetLoginUser(c, user); err != nil {
		logger.Warning("unable to save session:", err)
		html(c, "login.html", "Login", gin.H{"error": "Login error occurred"})
		return
	}

	logger.Infof("%s logged in from %s", user.Username, getRemoteIp(c))
	a.flashAndRedirect(c, "success", "Login successful", landingPath(user.Role))
}

func (a *IndexController) registerPage(c *gin.Context) {
	if session.IsLogin(c) {
		a.redirect(c, "/")
		return
	}
	html(c, "register.html", "Register", nil)
}

// register creates a new customer or seller account.
func (a *IndexController) register(c *gin.Context) {
	var form RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		html(c, "register.html", "Register", gin.H{"error": "Invalid form data"})
		return
	}

	role := model.Role(form.Role)
	if form.Role == "" {
		role = model.RoleCustomer
	}

	_, err := a.userService.Register(form.Username, form.Email, form.Password, form.ConfirmPassword, role, form.ShopName)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			html(c, "register.html", "Register", gin.H{"error": verr.Message})
		case errors.Is(err, service.ErrEmailTaken):
			html(c, "register.html", "Register", gin.H{"error": "Email already exists"})
		default:
			logger.Warning("register err:", err)
			html(c, "register.html", "Register", gin.H{"error": "Registration failed. Please try again."})
		}
		return
	}

	a.flashAndRedirect(c, "success", "Registration successful! Please login.", "login")
}

// logout clears the session and returns to the login page.
func (a *IndexController) logout(c *gin.Context) {
	if user := session.GetLoginUser(c); user != nil {
		logger.Infof("%s logged out", user.Username)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("unable to clear session:", err)
	}
	a.redirect(c, "login")
}
