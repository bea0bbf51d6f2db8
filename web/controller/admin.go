package controller

import (
	"errors"
	"strconv"
	"strings"

	"storefront/database/model"
	"storefront/logger"
	"storefront/web/middleware"
	"storefront/web/service"
	"storefront/web/session"

	"github.com/gin-gonic/gin"
)

// AdminController handles the admin area: global dashboard, catalog-wide
// product management and the user and order listings.
type AdminController struct {
	BaseController

	userService    service.UserService
	productService service.ProductService
	orderService   service.OrderService
}

// NewAdminController creates an AdminController and registers its routes.
func NewAdminController(g *gin.RouterGroup) *AdminController {
	a := &AdminController{}
	a.initRouter(g)
	return a
}

func (a *AdminController) initRouter(g *gin.RouterGroup) {
	admin := g.Group("/admin")
	admin.Use(middleware.RequireRoles(model.RoleAdmin))
	{
		admin.GET("", a.dashboard)
		admin.GET("/add_product", a.addProductPage)
		admin.POST("/add_product", a.addProduct)
		admin.GET("/delete_product/:id", a.deleteProduct)
		admin.GET("/users", a.users)
		admin.GET("/all_orders", a.allOrders)
	}
}

// dashboard shows the whole catalog and every order.
func (a *AdminController) dashboard(c *gin.Context) {
	products, err := a.productService.ListAllProducts()
	if err != nil {
		logger.Warning("list all products err:", err)
		session.AddFlash(c, "danger", "Error loading admin dashboard")
	}
	orders, err := a.orderService.ListAllOrders()
	if err != nil {
		logger.Warning("list all orders err:", err)
		session.AddFlash(c, "danger", "Error loading admin dashboard")
	}
	html(c, "admin_dashboard.html", "Admin Dashboard", gin.H{
		"products": products,
		"orders":   orders,
	})
}

func (a *AdminController) addProductPage(c *gin.Context) {
	html(c, "admin_add_product.html", "Add Product", nil)
}

// addProduct creates an admin-owned catalog entry (no seller).
func (a *AdminController) addProduct(c *gin.Context) {
	var form ProductForm
	if err := c.ShouldBind(&form); err != nil {
		html(c, "admin_add_product.html", "Add Product", gin.H{"error": "Invalid form data"})
		return
	}
	form.Name = strings.TrimSpace(form.Name)

	if form.Name == "" || form.Price == "" {
		html(c, "admin_add_product.html", "Add Product", gin.H{"error": "Name and price are required!"})
		return
	}
	if form.Stock == "" {
		form.Stock = "0"
	}
	price, priceOk := parsePrice(form.Price)
	stock, stockOk := parseStock(form.Stock)
	if !priceOk || !stockOk {
		html(c, "admin_add_product.html", "Add Product", gin.H{"error": "Please enter valid price and stock numbers!"})
		return
	}
	image := form.Image
	if image == "" {
		image = defaultProductImage
	}

	_, err := a.productService.CreateProduct(form.Name, price, image, nil, stock, strings.TrimSpace(form.Description))
	if err != nil {
		logger.Warning("admin add product err:", err)
		html(c, "admin_add_product.html", "Add Product", gin.H{"error": "Error adding product"})
		return
	}
	a.flashAndRedirect(c, "success", "Product added successfully!", "admin")
}

// deleteProduct removes any product and the orders referencing it.
func (a *AdminController) deleteProduct(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		a.flashAndRedirect(c, "danger", "Error deleting product", "admin")
		return
	}

	err = a.productService.DeleteProduct(productID, nil)
	if errors.Is(err, service.ErrProductNotFound) {
		a.flashAndRedirect(c, "danger", "Product not found", "admin")
		return
	} else if err != nil {
		logger.Warning("admin delete product err:", err)
		a.flashAndRedirect(c, "danger", "Error deleting product", "admin")
		return
	}
	a.flashAndRedirect(c, "info", "Product deleted successfully!", "admin")
}

// users lists every account.
func (a *AdminController) users(c *gin.Context) {
	users, err := a.userService.ListUsers()
	if err != nil {
		logger.Warning("list users err:", err)
		session.AddFlash(c, "danger", "Error loading users")
	}
	html(c, "admin_users.html", "Users", gin.H{"users": users})
}

// allOrders lists every order with buyer and product details.
func (a *AdminController) allOrders(c *gin.Context) {
	orders, err := a.orderService.ListAllOrders()
	if err != nil {
		logger.Warning("list all orders err:", err)
		session.AddFlash(c, "danger", "Error loading orders")
	}
	html(c, "admin_all_orders.html", "All Orders", gin.H{"orders": orders})
}
