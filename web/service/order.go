package service

import (
	"errors"

	"storefront/database"
	"storefront/database/model"
	"storefront/web/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrOutOfStock is returned when purchasing a product with no
	// stock remaining (or an unknown product id).
	ErrOutOfStock = errors.New("product out of stock")
	// ErrOrderNotFound is returned when deleting an order that does
	// not exist or belongs to another customer.
	ErrOrderNotFound = errors.New("order not found")
)

// OrderService implements the purchase flow and the order listings.
type OrderService struct{}

// Purchase buys one unit of a product for the given customer. The stock
// decrement is conditional on stock remaining and runs in the same
// transaction as the order insert, so the last unit can never be sold
// twice.
func (s *OrderService) Purchase(userID int, productID int) (*model.Order, error) {
	db := database.GetDB()

	order := &model.Order{
		RefId:     uuid.NewString(),
		UserId:    userID,
		ProductId: productID,
		Quantity:  1,
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(model.Product{}).
			Where("id = ? AND stock > 0", productID).
			UpdateColumn("stock", gorm.Expr("stock - 1"))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrOutOfStock
		}
		return tx.Create(order).Error
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// DeleteOrder removes an order, scoped to the customer who placed it.
func (s *OrderService) DeleteOrder(orderID int, userID int) error {
	db := database.GetDB()

	result := db.Where("id = ? AND user_id = ?", orderID, userID).Delete(&model.Order{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// ListUserOrders returns a customer's orders with product details.
func (s *OrderService) ListUserOrders(userID int) ([]entity.OrderView, error) {
	db := database.GetDB()

	var orders []entity.OrderView
	err := db.Table("orders o").
		Select("o.id, o.ref_id, p.name AS product_name, p.price, p.image, o.quantity, o.created_at").
		Joins("JOIN products p ON p.id = o.product_id").
		Where("o.user_id = ?", userID).
		Order("o.id").
		Scan(&orders).
		Error
	return orders, err
}

// ListSellerOrders returns the orders placed against one seller's
// products, joined with the buyer.
func (s *OrderService) ListSellerOrders(sellerID int) ([]entity.SellerOrderView, error) {
	db := database.GetDB()

	var orders []entity.SellerOrderView
	err := db.Table("orders o").
		Select("o.id, o.ref_id, u.username AS buyer, p.name AS product_name, p.price, o.quantity, o.created_at").
		Joins("JOIN users u ON u.id = o.user_id").
		Joins("JOIN products p ON p.id = o.product_id").
		Where("p.seller_id = ?", sellerID).
		Order("o.id").
		Scan(&orders).
		Error
	return orders, err
}

// ListAllOrders returns every order with buyer and product details, for
// the admin views.
func (s *OrderService) ListAllOrders() ([]entity.SellerOrderView, error) {
	db := database.GetDB()

	var orders []entity.SellerOrderView
	err := db.Table("orders o").
		Select("o.id, o.ref_id, u.username AS buyer, p.name AS product_name, p.price, o.quantity, o.created_at").
		Joins("JOIN users u ON u.id = o.user_id").
		Joins("JOIN products p ON p.id = o.product_id").
		Order("o.id").
		Scan(&orders).
		Error
	return orders, err
}
