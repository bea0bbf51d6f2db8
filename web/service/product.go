package service

import (
	"errors"

	"storefront/database"
	"storefront/database/model"
	"storefront/web/entity"

	"gorm.io/gorm"
)

// ErrProductNotFound is returned when a product does not exist or does
// not belong to the acting seller.
var ErrProductNotFound = errors.New("product not found or access denied")

// ProductService implements the catalog: scoped create, update and
// delete plus the read models for every role.
type ProductService struct{}

// CreateProduct stores a new product. sellerID is nil for admin-owned
// catalog entries.
func (s *ProductService) CreateProduct(name string, price float64, image string, sellerID *int, stock int, description string) (*model.Product, error) {
	if name == "" {
		return nil, validationErr("Name is required!")
	}
	if price < 0 || stock < 0 {
		return nil, validationErr("Price and stock must not be negative!")
	}

	product := &model.Product{
		Name:        name,
		Price:       price,
		Image:       image,
		SellerId:    sellerID,
		Stock:       stock,
		Description: description,
	}

	db := database.GetDB()
	if err := db.Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// GetSellerProduct loads a single product owned by the given seller.
func (s *ProductService) GetSellerProduct(id int, sellerID int) (*model.Product, error) {
	db := database.GetDB()

	product := &model.Product{}
	err := db.Model(model.Product{}).
		Where("id = ? AND seller_id = ?", id, sellerID).
		First(product).
		Error
	if database.IsNotFound(err) {
		return nil, ErrProductNotFound
	} else if err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateSellerProduct updates a product, scoped to its owning seller.
// Zero matched rows means the product is missing or owned by someone
// else.
func (s *ProductService) UpdateSellerProduct(id int, sellerID int, name string, price float64, image string, stock int, description string) error {
	if name == "" {
		return validationErr("Name is required!")
	}
	if price < 0 || stock < 0 {
		return validationErr("Price and stock must not be negative!")
	}

	db := database.GetDB()
	result := db.Model(model.Product{}).
		Where("id = ? AND seller_id = ?", id, sellerID).
		Updates(map[string]any{
			"name":        name,
			"price":       price,
			"image":       image,
			"stock":       stock,
			"description": description,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// DeleteProduct removes a product and every order referencing it in one
// transaction. A non-nil sellerID scopes the delete to that owner;
// admins pass nil and may delete any product.
func (s *ProductService) DeleteProduct(id int, sellerID *int) error {
	db := database.GetDB()
	return db.Transaction(func(tx *gorm.DB) error {
		query := tx.Where("id = ?", id)
		if sellerID != nil {
			query = query.Where("seller_id = ?", *sellerID)
		}
		result := query.Delete(&model.Product{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrProductNotFound
		}
		return tx.Where("product_id = ?", id).Delete(&model.Order{}).Error
	})
}

// ListInStock returns products with stock remaining, joined with their
// seller's shop, for the customer home page.
func (s *ProductService) ListInStock() ([]entity.ProductView, error) {
	db := database.GetDB()

	var products []entity.ProductView
	err := db.Table("products p").
		Select("p.id, p.name, p.price, p.image, p.stock, p.description, IFNULL(u.username, '') AS seller_name, IFNULL(u.shop_name, '') AS shop_name").
		Joins("LEFT JOIN users u ON u.id = p.seller_id").
		Where("p.stock > 0").
		Order("p.id").
		Scan(&products).
		Error
	return products, err
}

// ListSellerProducts returns the products owned by one seller.
func (s *ProductService) ListSellerProducts(sellerID int) ([]model.Product, error) {
	db := database.GetDB()

	var products []model.Product
	err := db.Model(model.Product{}).
		Where("seller_id = ?", sellerID).
		Order("id").
		Find(&products).
		Error
	return products, err
}

// ListAllProducts returns the whole catalog with seller details, for the
// admin dashboard.
func (s *ProductService) ListAllProducts() ([]entity.ProductView, error) {
	db := database.GetDB()

	var products []entity.ProductView
	err := db.Table("products p").
		Select("p.id, p.name, p.price, p.image, p.stock, p.description, IFNULL(u.username, '') AS seller_name, IFNULL(u.shop_name, '') AS shop_name").
		Joins("LEFT JOIN users u ON u.id = p.seller_id").
		Order("p.id").
		Scan(&products).
		Error
	return products, err
}
