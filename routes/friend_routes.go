package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/emanuelalzate12-bit/Proyecto/controllers"
)

func SetupFriendRoutes(r *gin.Engine, db *gorm.DB) {
	friendController := controllers.NewFriendController(db)
	grp := r.Group("/api/friends")
	{
		grp.GET("", friendController.List)
		grp.POST("", friendController.Create)
		grp.PUT("/:id", friendController.UpdateName)
		grp.DELETE("/:id", friendController.Delete)
	}
}
