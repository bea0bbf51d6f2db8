// Package entity defines the read models rendered by the web layer.
package entity

import "time"

// Flash is a one-shot user-facing message carried in the session.
type Flash struct {
	Category string // success, danger, info
	Message  string
}

// ProductView is a catalog row joined with its seller, for the customer
// home page and the admin dashboard.
type ProductView struct {
	Id          int
	Name        string
	Price       float64
	Image       string
	Stock       int
	Description string
	SellerName  string
	ShopName    string
}

// OrderView is a customer's order joined with product details.
type OrderView struct {
	Id          int
	RefId       string
	ProductName string
	Price       float64
	Image       string
	Quantity    int
	CreatedAt   time.Time
}

// SellerOrderView is an order against a seller's product, joined with
// the buyer. Also used for the admin order listings.
type SellerOrderView struct {
	Id          int
	RefId       string
	Buyer       string
	ProductName string
	Price       float64
	Quantity    int
	CreatedAt   time.Time
}
