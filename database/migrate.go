package database

import (
	"gorm.io/gorm"

	"github.com/emanuelalzate12-bit/Proyecto/models"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Game{}, &models.Friend{})
}
