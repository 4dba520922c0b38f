package database

import (
	"github.com/yeremiapane/food-order-app/models"
	"github.com/yeremiapane/food-order-app/utils"
	"gorm.io/gorm"
)

// Migrate creates or updates the food order table. The table name follows the
// configured collection so the relational and document backends share it.
func Migrate(db *gorm.DB, table string) error {
	if err := db.Table(table).AutoMigrate(&models.FoodOrder{}); err != nil {
		return err
	}
	if utils.InfoLogger != nil {
		utils.InfoLogger.Printf("AutoMigrate completed for table %s.", table)
	}
	return nil
}
