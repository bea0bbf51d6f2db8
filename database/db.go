// Package database manages the sqlite store: connection setup,
// migrations and initial seeding.
package database

import (
	"io/fs"
	"log"
	"os"
	"path"

	"storefront/config"
	"storefront/database/model"
	"storefront/util/crypto"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

const (
	defaultAdminEmail     = "admin@example.com"
	defaultAdminPassword  = "admin123"
	defaultSellerEmail    = "seller@example.com"
	defaultSellerPassword = "seller123"
)

func initModels() error {
	models := []any{
		&model.User{},
		&model.Product{},
		&model.Order{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			log.Printf("Error auto migrating model: %v", err)
			return err
		}
	}
	return nil
}

// initUsers creates the default admin and demo seller accounts when the
// users table is empty.
func initUsers() error {
	empty, err := isTableEmpty("users")
	if err != nil {
		log.Printf("Error checking if users table is empty: %v", err)
		return err
	}
	if !empty {
		return nil
	}

	adminHash, err := crypto.HashPasswordAsBcrypt(defaultAdminPassword)
	if err != nil {
		return err
	}
	sellerHash, err := crypto.HashPasswordAsBcrypt(defaultSellerPassword)
	if err != nil {
		return err
	}

	users := []model.User{
		{
			Username: "admin",
			Email:    defaultAdminEmail,
			Password: adminHash,
			Role:     model.RoleAdmin,
		},
		{
			Username: "seller1",
			Email:    defaultSellerEmail,
			Password: sellerHash,
			Role:     model.RoleSeller,
			ShopName: "Tech Store",
		},
	}
	return db.Create(&users).Error
}

// initProducts seeds the sample catalog when the products table is empty.
func initProducts() error {
	empty, err := isTableEmpty("products")
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}

	products := []model.Product{
		{Name: "iPhone 15", Price: 1200, Image: "https://via.placeholder.com/150", Stock: 10, Description: "Latest iPhone model"},
		{Name: "Samsung S24", Price: 1100, Image: "https://via.placeholder.com/150", Stock: 15, Description: "Samsung flagship phone"},
		{Name: "MacBook Air", Price: 1500, Image: "https://via.placeholder.com/150", Stock: 5, Description: "Apple laptop"},
		{Name: "Sony Headphones", Price: 200, Image: "https://via.placeholder.com/150", Stock: 20, Description: "High quality headphones"},
	}
	return db.Create(&products).Error
}

func isTableEmpty(tableName string) (bool, error) {
	var count int64
	err := db.Table(tableName).Count(&count).Error
	return count == 0, err
}

func InitDB(dbPath string) error {
	dir := path.Dir(dbPath)
	err := os.MkdirAll(dir, fs.ModePerm)
	if err != nil {
		return err
	}

	var gormLogger logger.Interface

	if config.IsDebug() {
		gormLogger = logger.Default
	} else {
		gormLogger = logger.Discard
	}

	c := &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	}

	dsn := dbPath + "?cache=shared&_journal_mode=WAL&_synchronous=NORMAL"
	db, err = gorm.Open(sqlite.Open(dsn), c)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	_, err = sqlDB.Exec("PRAGMA foreign_keys = ON;")
	if err != nil {
		return err
	}

	if err := initModels(); err != nil {
		return err
	}
	if err := initUsers(); err != nil {
		return err
	}
	return initProducts()
}

func CloseDB() error {
	if db != nil {
		if err := Checkpoint(); err != nil {
			log.Printf("error executing checkpoint: %v", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}

func GetDB() *gorm.DB {
	return db
}

func IsNotFound(err error) bool {
	return err == gorm.ErrRecordNotFound
}

// Checkpoint flushes the sqlite WAL into the main database file.
func Checkpoint() error {
	return db.Exec("PRAGMA wal_checkpoint;").Error
}
