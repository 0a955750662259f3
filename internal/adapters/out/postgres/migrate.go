package postgres

import (
	"context"
	"fmt"

	"orderbot/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultMenu is the price list seeded into an empty food_items table.
var DefaultMenu = []orderrepo.FoodItemDTO{
	{Name: "Pav Bhaji", Price: 6.00},
	{Name: "Chole Bhature", Price: 7.00},
	{Name: "Pizza", Price: 8.00},
	{Name: "Mango Lassi", Price: 5.00},
	{Name: "Masala Dosa", Price: 6.00},
	{Name: "Vegetable Biryani", Price: 9.00},
	{Name: "Vada Pav", Price: 4.00},
	{Name: "Rava Dosa", Price: 7.00},
	{Name: "Samosa", Price: 5.00},
}

// Migrate creates or updates the order tables.
func Migrate(ctx context.Context, db *gorm.DB) error {
	err := db.WithContext(ctx).AutoMigrate(
		&orderrepo.FoodItemDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.OrderTrackingDTO{},
	)
	if err != nil {
		return fmt.Errorf("migrate order schema: %w", err)
	}
	return nil
}

// SeedMenu inserts menu items that are not present yet. Existing prices are
// left untouched.
func SeedMenu(ctx context.Context, db *gorm.DB, items []orderrepo.FoodItemDTO) error {
	if len(items) == 0 {
		return nil
	}

	rows := make([]orderrepo.FoodItemDTO, len(items))
	copy(rows, items)

	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&rows).Error
	if err != nil {
		return fmt.Errorf("seed menu: %w", err)
	}
	return nil
}
