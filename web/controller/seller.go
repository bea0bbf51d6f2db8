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

const defaultProductImage = "https://via.placeholder.com/150"

// ProductForm represents the add/update product request fields.
type ProductForm struct {
	Name        string `form:"name"`
	Price       string `form:"price"`
	Stock       string `form:"stock"`
	Description string `form:"description"`
	Image       string `form:"image"`
}

// SellerController handles the seller area: dashboard and management of
// the seller's own products.
type SellerController struct {
	BaseController

	productService service.ProductService
	orderService   service.OrderService
}

// NewSellerController creates a SellerController and registers its routes.
func NewSellerController(g *gin.RouterGroup) *SellerController {
	a := &SellerController{}
	a.initRouter(g)
	return a
}

func (a *SellerController) initRouter(g *gin.RouterGroup) {
	seller := g.Group("/seller")
	seller.Use(middleware.RequireRoles(model.RoleSeller))
	{
		seller.GET("", a.dashboard)
		seller.GET("/add_product", a.addProductPage)
		seller.POST("/add_product", a.addProduct)
		seller.GET("/manage_products", a.manageProducts)
		seller.GET("/update_product/:id", a.updateProductPage)
		seller.POST("/update_product/:id", a.updateProduct)
		seller.GET("/delete_product/:id", a.deleteProduct)
	}
}

// dashboard shows the seller's products and the orders against them.
func (a *SellerController) dashboard(c *gin.Context) {
	user := session.GetLoginUser(c)

	products, err := a.productService.ListSellerProducts(user.Id)
	if err != nil {
		logger.Warning("list seller products err:", err)
		session.AddFlash(c, "danger", "Error loading dashboard")
	}
	orders, err := a.orderService.ListSellerOrders(user.Id)
	if err != nil {
		logger.Warning("list seller orders err:", err)
		session.AddFlash(c, "danger", "Error loading dashboard")
	}
	html(c, "seller_dashboard.html", "Seller Dashboard", gin.H{
		"products": products,
		"orders":   orders,
	})
}

func (a *SellerController) addProductPage(c *gin.Context) {
	html(c, "seller_add_product.html", "Add Product", nil)
}

// addProduct creates a product owned by the session seller.
func (a *SellerController) addProduct(c *gin.Context) {
	user := session.GetLoginUser(c)

	var form ProductForm
	if err := c.ShouldBind(&form); err != nil {
		html(c, "seller_add_product.html", "Add Product", gin.H{"error": "Invalid form data"})
		return
	}
	form.Name = strings.TrimSpace(form.Name)

	if form.Name == "" || form.Price == "" || form.Stock == "" {
		html(c, "seller_add_product.html", "Add Product", gin.H{"error": "Name, price, and stock are required!"})
		return
	}
	price, priceOk := parsePrice(form.Price)
	stock, stockOk := parseStock(form.Stock)
	if !priceOk || !stockOk {
		html(c, "seller_add_product.html", "Add Product", gin.H{"error": "Please enter valid price and stock numbers!"})
		return
	}
	image := form.Image
	if image == "" {
		image = defaultProductImage
	}

	sellerID := user.Id
	_, err := a.productService.CreateProduct(form.Name, price, image, &sellerID, stock, strings.TrimSpace(form.Description))
	if err != nil {
		logger.Warning("add product err:", err)
		html(c, "seller_add_product.html", "Add Product", gin.H{"error": "Error adding product"})
		return
	}
	a.flashAndRedirect(c, "success", "Product added successfully!", "seller")
}

// manageProducts lists the seller's products for editing.
func (a *SellerController) manageProducts(c *gin.Context) {
	user := session.GetLoginUser(c)

	products, err := a.productService.ListSellerProducts(user.Id)
	if err != nil {
		logger.Warning("list seller products err:", err)
		session.AddFlash(c, "danger", "Error loading products")
	}
	html(c, "seller_manage_products.html", "Manage Products", gin.H{"products": products})
}

func (a *SellerController) updateProductPage(c *gin.Context) {
	user := session.GetLoginUser(c)
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		a.flashAndRedirect(c, "danger", "Product not found or access denied!", "seller/manage_products")
		return
	}

	product, err := a.productService.GetSellerProduct(productID, user.Id)
	if err != nil {
		a.flashAndRedirect(c, "danger", "Product not found or access denied!", "seller/manage_products")
		return
	}
	html(c, "seller_update_product.html", "Update Product", gin.H{"product": product})
}

// updateProduct edits one of the seller's own products. The update is
// scoped by seller id, so another seller's product is never touched.
func (a *SellerController) updateProduct(c *gin.Context) {
	user := session.GetLoginUser(c)
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		a.flashAndRedirect(c, "danger", "Product not found or access denied!", "seller/manage_products")
		return
	}

	product, err := a.productService.GetSellerProduct(productID, user.Id)
	if err != nil {
		a.flashAndRedirect(c, "danger", "Product not found or access denied!", "seller/manage_products")
		return
	}

	var form ProductForm
	if err := c.ShouldBind(&form); err != nil {
		html(c, "seller_update_product.html", "Update Product", gin.H{"product": product, "error": "Invalid form data"})
		return
	}
	form.Name = strings.TrimSpace(form.Name)

	if form.Name == "" || form.Price == "" || form.Stock == "" {
		html(c, "seller_update_product.html", "Update Product", gin.H{"product": product, "error": "Name, price, and stock are required!"})
		return
	}
	price, priceOk := parsePrice(form.Price)
	stock, stockOk := parseStock(form.Stock)
	if !priceOk || !stockOk {
		html(c, "seller_update_product.html", "Update Product", gin.H{"product": product, "error": "Please enter valid price and stock numbers!"})
		return
	}

	err = a.productService.UpdateSellerProduct(productID, user.Id, form.Name, price, form.Image, stock, strings.TrimSpace(form.Description))
	if errors.Is(err, service.ErrProductNotFound) {
		a.flashAndRedirect(c, "danger", "Product not found or access denied!", "seller/manage_products")
		return
	} else if err != nil {
		logger.Warning("update product err:", err)
		html(c, "seller_update_product.html", "Update Product", gin.H{"product": product, "error": "Error updating product"})
		return
	}
	a.flashAndRedirect(c, "success", "Product updated successfully!", "seller/manage_products")
}

// deleteProduct removes one of the seller's own products together with
// the orders referencing it.
func (a *SellerController) deleteProduct(c *gin.Context) {
	user := session.GetLoginUser(c)
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		a.flashAndRedirect(c, "danger", "Product not found or access denied!", "seller/manage_products")
		return
	}

	sellerID := user.Id
	err = a.productService.DeleteProduct(productID, &sellerID)
	if errors.Is(err, service.ErrProductNotFound) {
		a.flashAndRedirect(c, "danger", "Product not found or access denied!", "seller/manage_products")
		return
	} else if err != nil {
		logger.Warning("delete product err:", err)
		a.flashAndRedirect(c, "danger", "Error deleting product", "seller/manage_products")
		return
	}
	a.flashAndRedirect(c, "info", "Product deleted successfully!", "seller/manage_products")
}
