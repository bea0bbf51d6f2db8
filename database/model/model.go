// Package model defines the persisted entities of the storefront:
// users, products and orders.
package model

import "time"

// Role is the access tier of a user. The stored value for customers is
// "user" for compatibility with existing databases.
type Role string

const (
	RoleCustomer Role = "user"
	RoleSeller   Role = "seller"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleSeller, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	Id        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Username  string    `json:"username" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"` // bcrypt hash
	Role      Role      `json:"role" gorm:"not null;default:user"`
	ShopName  string    `json:"shopName"` // sellers only
	CreatedAt time.Time `json:"createdAt"`
}

type Product struct {
	Id          int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"not null"`
	Price       float64   `json:"price" gorm:"not null"`
	Image       string    `json:"image"`
	SellerId    *int      `json:"sellerId" gorm:"index"` // nil means admin-owned
	Stock       int       `json:"stock" gorm:"not null;default:0"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Order struct {
	Id        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	RefId     string    `json:"refId" gorm:"uniqueIndex"`
	UserId    int       `json:"userId" gorm:"index;not null"`
	ProductId int       `json:"productId" gorm:"index;not null"`
	Quantity  int       `json:"quantity" gorm:"not null;default:1"`
	CreatedAt time.Time `json:"createdAt"`
}
