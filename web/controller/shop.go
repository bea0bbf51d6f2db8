package controller

import (
	"errors"
	"strconv"

	"storefront/database/model"
	"storefront/logger"
	"storefront/web/middleware"
	"storefront/web/service"
	"storefront/web/session"

	"github.com/gin-gonic/gin"
)

// ShopController handles the customer-facing routes: browsing the
// catalog, buying, and managing own orders.
type ShopController struct {
	BaseController

	productService service.ProductService
	orderService   service.OrderService
}

// NewShopController creates a ShopController and registers its routes.
func NewShopController(g *gin.RouterGroup) *ShopController {
	a := &ShopController{}
	a.initRouter(g)
	return a
}

func (a *ShopController) initRouter(g *gin.RouterGroup) {
	shop := g.Group("/")
	shop.Use(middleware.RequireRoles(model.RoleCustomer))
	{
		shop.GET("/home", a.home)
		shop.GET("/orders", a.orders)
		shop.GET("/buy/:id", a.buy)
		shop.GET("/delete_order/:id", a.deleteOrder)
	}
}

// home lists the in-stock catalog.
func (a *ShopController) home(c *gin.Context) {
	products, err := a.productService.ListInStock()
	if err != nil {
		logger.Warning("list products err:", err)
		session.AddFlash(c, "danger", "Error loading products")
	}
	html(c, "home.html", "Shop", gin.H{"products": products})
}

// orders lists the customer's own orders with product details.
func (a *ShopController) orders(c *gin.Context) {
	user := session.GetLoginUser(c)
	orders, err := a.orderService.ListUserOrders(user.Id)
	if err != nil {
		logger.Warning("list orders err:", err)
		session.AddFlash(c, "danger", "Error loading orders")
	}
	html(c, "orders.html", "My Orders", gin.H{"orders": orders})
}

// buy purchases one unit of a product.
func (a *ShopController) buy(c *gin.Context) {
	user := session.GetLoginUser(c)
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		a.flashAndRedirect(c, "danger", "Purchase error occurred", "home")
		return
	}

	_, err = a.orderService.Purchase(user.Id, productID)
	if errors.Is(err, service.ErrOutOfStock) {
		a.flashAndRedirect(c, "danger", "Product out of stock!", "orders")
		return
	} else if err != nil {
		logger.Warning("purchase err:", err)
		a.flashAndRedirect(c, "danger", "Purchase error occurred", "home")
		return
	}
	a.flashAndRedirect(c, "success", "Product purchased successfully!", "orders")
}

// deleteOrder removes one of the customer's own orders.
func (a *ShopController) deleteOrder(c *gin.Context) {
	user := session.GetLoginUser(c)
	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		a.flashAndRedirect(c, "danger", "Error deleting order", "orders")
		return
	}

	err = a.orderService.DeleteOrder(orderID, user.Id)
	if errors.Is(err, service.ErrOrderNotFound) {
		a.flashAndRedirect(c, "danger", "Order not found", "orders")
		return
	} else if err != nil {
		logger.Warning("delete order err:", err)
		a.flashAndRedirect(c, "danger", "Error deleting order", "orders")
		return
	}
	a.flashAndRedirect(c, "info", "Order deleted successfully", "orders")
}
