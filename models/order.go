package models

import "time"

// Order is a persisted checkout. The schema keeps only the first food id
// and first drink id from the cart; TotalCost still covers every line item.
type Order struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	TotalCost  int       `json:"total_cost"`
	FoodID     *uint     `json:"food_id"`
	Food       *Food     `gorm:"foreignKey:FoodID;constraint:OnDelete:CASCADE" json:"food,omitempty"`
	DrinkID    *uint     `json:"drink_id"`
	Drink      *Drink    `gorm:"foreignKey:DrinkID;constraint:OnDelete:CASCADE" json:"drink,omitempty"`
	DeliveryID *uint     `json:"delivery_id"`
	Delivery   *Delivery `gorm:"foreignKey:DeliveryID;constraint:OnDelete:CASCADE" json:"delivery,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// Payment records how an order was paid. Created in the same checkout pass
// as its order.
type Payment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Method     string    `json:"method"`
	CustomerID uint      `json:"customer_id"`
	Customer   *Customer `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"customer,omitempty"`
	OrderID    uint      `json:"order_id"`
	Order      *Order    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"order,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName specifies the table name for the Payment model
func (Payment) TableName() string {
	return "payment"
}
