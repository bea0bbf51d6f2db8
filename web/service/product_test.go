package service

import (
	"testing"

	"storefront/database"
	"storefront/database/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSellerOwnershipScoping(t *testing.T) {
	setup(t)

	svc := ProductService{}

	owner := registerSeller(t, "owner@example.com", "Owner Shop")
	other := registerSeller(t, "other@example.com", "Other Shop")

	ownerID := owner.Id
	product, err := svc.CreateProduct("Widget", 9.99, "", &ownerID, 5, "a widget")
	require.NoError(t, err)

	// Another seller can neither read, update nor delete it.
	_, err = svc.GetSellerProduct(product.Id, other.Id)
	assert.ErrorIs(t, err, ErrProductNotFound)

	err = svc.UpdateSellerProduct(product.Id, other.Id, "Stolen", 1, "", 1, "")
	assert.ErrorIs(t, err, ErrProductNotFound)

	err = svc.DeleteProduct(product.Id, &other.Id)
	assert.ErrorIs(t, err, ErrProductNotFound)

	// Untouched.
	got := getProduct(t, product.Id)
	assert.Equal(t, "Widget", got.Name)
	assert.Equal(t, 5, got.Stock)

	// The owner can.
	err = svc.UpdateSellerProduct(product.Id, owner.Id, "Widget v2", 19.99, "img", 7, "better widget")
	require.NoError(t, err)
	got = getProduct(t, product.Id)
	assert.Equal(t, "Widget v2", got.Name)
	assert.Equal(t, 19.99, got.Price)
	assert.Equal(t, 7, got.Stock)

	require.NoError(t, svc.DeleteProduct(product.Id, &owner.Id))
	err = database.GetDB().First(&model.Product{}, product.Id).Error
	assert.True(t, database.IsNotFound(err))
}

func TestCreateProductValidation(t *testing.T) {
	setup(t)

	svc := ProductService{}

	var verr *ValidationError

	_, err := svc.CreateProduct("", 10, "", nil, 1, "")
	assert.ErrorAs(t, err, &verr)

	_, err = svc.CreateProduct("Thing", -1, "", nil, 1, "")
	assert.ErrorAs(t, err, &verr)

	_, err = svc.CreateProduct("Thing", 1, "", nil, -1, "")
	assert.ErrorAs(t, err, &verr)
}

func TestDeleteProductCascadesOrders(t *testing.T) {
	setup(t)

	productSvc := ProductService{}
	orderSvc := OrderService{}

	seller := registerSeller(t, "s@example.com", "Shop")
	customer := registerCustomer(t, "c@example.com")

	sellerID := seller.Id
	product, err := productSvc.CreateProduct("Gadget", 50, "", &sellerID, 3, "")
	require.NoError(t, err)

	_, err = orderSvc.Purchase(customer.Id, product.Id)
	require.NoError(t, err)
	_, err = orderSvc.Purchase(customer.Id, product.Id)
	require.NoError(t, err)

	require.NoError(t, productSvc.DeleteProduct(product.Id, &sellerID))

	var count int64
	require.NoError(t, database.GetDB().Model(model.Order{}).Where("product_id = ?", product.Id).Count(&count).Error)
	assert.Zero(t, count, "no dangling orders after product delete")

	orders, err := orderSvc.ListUserOrders(customer.Id)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestListInStock(t *testing.T) {
	setup(t)

	svc := ProductService{}

	seller := registerSeller(t, "s@example.com", "Shop")
	sellerID := seller.Id

	inStock, err := svc.CreateProduct("Available", 5, "", &sellerID, 1, "")
	require.NoError(t, err)
	soldOut, err := svc.CreateProduct("Gone", 5, "", &sellerID, 0, "")
	require.NoError(t, err)

	products, err := svc.ListInStock()
	require.NoError(t, err)

	ids := make(map[int]string)
	for _, p := range products {
		ids[p.Id] = p.ShopName
	}
	assert.Contains(t, ids, inStock.Id)
	assert.NotContains(t, ids, soldOut.Id)
	assert.Equal(t, "Shop", ids[inStock.Id])
}

func TestAdminOwnedProduct(t *testing.T) {
	setup(t)

	svc := ProductService{}

	// No seller: an admin-owned catalog entry.
	product, err := svc.CreateProduct("House Brand", 10, "", nil, 2, "")
	require.NoError(t, err)

	// Sellers never see or touch it.
	seller := registerSeller(t, "s@example.com", "Shop")
	products, err := svc.ListSellerProducts(seller.Id)
	require.NoError(t, err)
	for _, p := range products {
		assert.NotEqual(t, product.Id, p.Id)
	}
	err = svc.UpdateSellerProduct(product.Id, seller.Id, "Mine Now", 1, "", 1, "")
	assert.ErrorIs(t, err, ErrProductNotFound)

	// Admin delete is unscoped.
	require.NoError(t, svc.DeleteProduct(product.Id, nil))
}
