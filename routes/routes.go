package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/emanuelalzate12-bit/Proyecto/controllers"
	"github.com/emanuelalzate12-bit/Proyecto/middleware"
	"github.com/emanuelalzate12-bit/Proyecto/storage"
)

// SetupRouter crea el gin.Engine, registra todos los middleware y rutas
// y devuelve el router listo para arrancar.
func SetupRouter(db *gorm.DB, media *storage.MediaStore) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.RecoveryMiddleware())

	// CORS middleware antes de las rutas
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"http://localhost:3000", "http://localhost:5173", "http://127.0.0.1:5500"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
	}))

	// Imágenes subidas, solo lectura
	r.Static(storage.PublicPrefix, media.Dir())

	uploadController := controllers.NewUploadController(media)
	r.POST("/api/upload", uploadController.UploadImage)

	SetupGameRoutes(r, db, media)
	SetupFriendRoutes(r, db)

	return r
}
