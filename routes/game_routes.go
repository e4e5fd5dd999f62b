package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/emanuelalzate12-bit/Proyecto/controllers"
	"github.com/emanuelalzate12-bit/Proyecto/storage"
)

func SetupGameRoutes(r *gin.Engine, db *gorm.DB, media *storage.MediaStore) {
	gameController := controllers.NewGameController(db, media)
	grp := r.Group("/api/games")
	{
		grp.GET("", gameController.List)
		grp.GET("/favorites", gameController.ListFavorites)
		grp.POST("", gameController.Create)
		grp.PUT("/:id", gameController.UpdateName)
		grp.PUT("/:id/favorite", gameController.SetFavorite)
		grp.DELETE("/:id", gameController.Delete)
	}
}
