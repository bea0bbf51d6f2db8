package service

import (
	"testing"

	"storefront/database"
	"storefront/database/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countOrders(t *testing.T, productID int) int64 {
	t.Helper()
	var count int64
	require.NoError(t, database.GetDB().Model(model.Order{}).Where("product_id = ?", productID).Count(&count).Error)
	return count
}

func TestPurchaseDecrementsStock(t *testing.T) {
	setup(t)

	productSvc := ProductService{}
	orderSvc := OrderService{}

	customer := registerCustomer(t, "c@example.com")
	product, err := productSvc.CreateProduct("Gadget", 25, "", nil, 4, "")
	require.NoError(t, err)

	order, err := orderSvc.Purchase(customer.Id, product.Id)
	require.NoError(t, err)
	assert.Equal(t, 1, order.Quantity)
	assert.NotEmpty(t, order.RefId)

	assert.Equal(t, 3, getProduct(t, product.Id).Stock)
	assert.EqualValues(t, 1, countOrders(t, product.Id))
}

func TestPurchaseOutOfStock(t *testing.T) {
	setup(t)

	productSvc := ProductService{}
	orderSvc := OrderService{}

	customer := registerCustomer(t, "c@example.com")
	product, err := productSvc.CreateProduct("Gone", 25, "", nil, 0, "")
	require.NoError(t, err)

	_, err = orderSvc.Purchase(customer.Id, product.Id)
	assert.ErrorIs(t, err, ErrOutOfStock)

	// No order created and stock unchanged.
	assert.Zero(t, countOrders(t, product.Id))
	assert.Equal(t, 0, getProduct(t, product.Id).Stock)

	// Unknown product looks the same as sold out.
	_, err = orderSvc.Purchase(customer.Id, 999999)
	assert.ErrorIs(t, err, ErrOutOfStock)
}

func TestPurchaseLastUnits(t *testing.T) {
	setup(t)

	productSvc := ProductService{}
	orderSvc := OrderService{}

	seller := registerSeller(t, "tech@example.com", "Tech")
	customer := registerCustomer(t, "buyer@example.com")

	sellerID := seller.Id
	product, err := productSvc.CreateProduct("Phone", 100, "", &sellerID, 2, "")
	require.NoError(t, err)

	_, err = orderSvc.Purchase(customer.Id, product.Id)
	require.NoError(t, err)
	_, err = orderSvc.Purchase(customer.Id, product.Id)
	require.NoError(t, err)

	assert.Equal(t, 0, getProduct(t, product.Id).Stock)
	assert.EqualValues(t, 2, countOrders(t, product.Id))

	_, err = orderSvc.Purchase(customer.Id, product.Id)
	assert.ErrorIs(t, err, ErrOutOfStock)
	assert.EqualValues(t, 2, countOrders(t, product.Id), "failed purchase must not create an order")
	assert.Equal(t, 0, getProduct(t, product.Id).Stock)
}

func TestDeleteOrderScoped(t *testing.T) {
	setup(t)

	productSvc := ProductService{}
	orderSvc := OrderService{}

	alice := registerCustomer(t, "alice@example.com")
	bob := registerCustomer(t, "bob@example.com")

	product, err := productSvc.CreateProduct("Gadget", 25, "", nil, 2, "")
	require.NoError(t, err)

	order, err := orderSvc.Purchase(alice.Id, product.Id)
	require.NoError(t, err)

	err = orderSvc.DeleteOrder(order.Id, bob.Id)
	assert.ErrorIs(t, err, ErrOrderNotFound)
	assert.EqualValues(t, 1, countOrders(t, product.Id))

	require.NoError(t, orderSvc.DeleteOrder(order.Id, alice.Id))
	assert.Zero(t, countOrders(t, product.Id))
}

func TestOrderListings(t *testing.T) {
	setup(t)

	productSvc := ProductService{}
	orderSvc := OrderService{}

	seller := registerSeller(t, "s@example.com", "Shop")
	customer := registerCustomer(t, "c@example.com")

	sellerID := seller.Id
	product, err := productSvc.CreateProduct("Camera", 300, "cam.jpg", &sellerID, 5, "")
	require.NoError(t, err)

	order, err := orderSvc.Purchase(customer.Id, product.Id)
	require.NoError(t, err)

	mine, err := orderSvc.ListUserOrders(customer.Id)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, order.Id, mine[0].Id)
	assert.Equal(t, "Camera", mine[0].ProductName)
	assert.Equal(t, 300.0, mine[0].Price)
	assert.Equal(t, "cam.jpg", mine[0].Image)

	sellerOrders, err := orderSvc.ListSellerOrders(seller.Id)
	require.NoError(t, err)
	require.Len(t, sellerOrders, 1)
	assert.Equal(t, "customer", sellerOrders[0].Buyer)

	// Another seller sees nothing.
	stranger := registerSeller(t, "x@example.com", "X")
	theirs, err := orderSvc.ListSellerOrders(stranger.Id)
	require.NoError(t, err)
	assert.Empty(t, theirs)

	all, err := orderSvc.ListAllOrders()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
