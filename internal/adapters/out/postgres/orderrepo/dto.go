// Package orderrepo maps placed orders to the relational schema: the menu
// price table, one row per ordered item and one tracking row per order.
package orderrepo

import (
	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/core/domain/model/order"
)

// FoodItemDTO is a menu entry with its unit price.
type FoodItemDTO struct {
	ItemID int64   `gorm:"column:item_id;primaryKey;autoIncrement"`
	Name   string  `gorm:"size:255;not null;uniqueIndex"`
	Price  float64 `gorm:"type:decimal(10,2);not null"`
}

// TableName specifies the database table name for menu entries.
func (FoodItemDTO) TableName() string {
	return "food_items"
}

// OrderItemDTO is one line of a placed order. An order is the set of rows
// sharing an order id.
type OrderItemDTO struct {
	OrderID    int64   `gorm:"column:order_id;primaryKey;autoIncrement:false"`
	ItemID     int64   `gorm:"column:item_id;primaryKey;autoIncrement:false"`
	Quantity   int     `gorm:"not null"`
	TotalPrice float64 `gorm:"type:decimal(10,2);not null"`
}

// TableName specifies the database table name for order lines.
func (OrderItemDTO) TableName() string {
	return "orders"
}

// OrderTrackingDTO holds the delivery status of an order.
type OrderTrackingDTO struct {
	OrderID int64  `gorm:"column:order_id;primaryKey;autoIncrement:false"`
	Status  string `gorm:"size:255;not null"`
}

// TableName specifies the database table name for tracking rows.
func (OrderTrackingDTO) TableName() string {
	return "order_tracking"
}

func lineToDTO(orderID kernel.OrderID, item FoodItemDTO, line order.Line) OrderItemDTO {
	return OrderItemDTO{
		OrderID:    orderID.Int64(),
		ItemID:     item.ItemID,
		Quantity:   line.Quantity(),
		TotalPrice: item.Price * float64(line.Quantity()),
	}
}

func trackingToDTO(orderID kernel.OrderID, status order.Status) OrderTrackingDTO {
	return OrderTrackingDTO{
		OrderID: orderID.Int64(),
		Status:  status.String(),
	}
}
