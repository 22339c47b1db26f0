package models

import "gorm.io/gorm"

// MarketplaceItem is a piece of used equipment put up for sale.
// IsSold only ever moves from false to true; there is no restock.
type MarketplaceItem struct {
	gorm.Model
	Title       string  `json:"title" gorm:"not null"`
	Description string  `json:"description"`
	Price       float64 `json:"price" gorm:"not null"`
	ImageURL    string  `json:"image_url"`
	SellerID    uint    `json:"seller_id" gorm:"index;not null"`
	IsSold      bool    `json:"is_sold" gorm:"default:false"`

	Seller *User `json:"-" gorm:"foreignKey:SellerID"`
}
