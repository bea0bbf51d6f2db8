package service

import (
	"os"
	"path/filepath"
	"testing"

	"storefront/database"
	"storefront/database/model"
	"storefront/logger"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.InitLogger(logging.DEBUG)
	os.Exit(m.Run())
}

// setup creates a scratch database seeded with the default accounts and
// sample products.
func setup(t *testing.T) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, database.InitDB(dbPath))
	t.Cleanup(func() {
		_ = database.CloseDB()
	})
}

func registerCustomer(t *testing.T, email string) *model.User {
	t.Helper()
	svc := UserService{}
	user, err := svc.Register("customer", email, "secret1", "secret1", model.RoleCustomer, "")
	require.NoError(t, err)
	return user
}

func registerSeller(t *testing.T, email string, shopName string) *model.User {
	t.Helper()
	svc := UserService{}
	user, err := svc.Register("seller", email, "secret1", "secret1", model.RoleSeller, shopName)
	require.NoError(t, err)
	return user
}

func getProduct(t *testing.T, id int) *model.Product {
	t.Helper()
	product := &model.Product{}
	require.NoError(t, database.GetDB().First(product, id).Error)
	return product
}
