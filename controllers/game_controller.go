package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/emanuelalzate12-bit/Proyecto/models"
	"github.com/emanuelalzate12-bit/Proyecto/storage"
)

type GameController struct {
	db    *gorm.DB
	media *storage.MediaStore
}

func NewGameController(db *gorm.DB, media *storage.MediaStore) *GameController {
	return &GameController{db: db, media: media}
}

// GET /api/games
func (gc *GameController) List(c *gin.Context) {
	games := make([]models.Game, 0)
	if err := gc.db.Order("nombre asc").Find(&games).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Juegos obtenidos correctamente", "data": games})
}

// GET /api/games/favorites
func (gc *GameController) ListFavorites(c *gin.Context) {
	games := make([]models.Game, 0)
	if err := gc.db.Where("favorito = ?", true).Order("nombre asc").Find(&games).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Juegos favoritos obtenidos correctamente", "data": games})
}

// POST /api/games
// El juego se crea con la imagen ya subida via POST /api/upload
func (gc *GameController) Create(c *gin.Context) {
	var req struct {
		Nombre    string `json:"nombre"`
		ImagenURL string `json:"imagen_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cuerpo de la petición inválido"})
		return
	}

	nombre := strings.TrimSpace(req.Nombre)
	imagenURL := strings.TrimSpace(req.ImagenURL)
	if nombre == "" || imagenURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "El nombre y la imagen son obligatorios"})
		return
	}

	game := models.Game{Nombre: nombre, ImagenURL: imagenURL, Favorito: false}
	if err := gc.db.Create(&game).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Juego agregado correctamente",
		"id":         game.ID,
		"nombre":     game.Nombre,
		"imagen_url": game.ImagenURL,
	})
}

// PUT /api/games/:id
func (gc *GameController) UpdateName(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID inválido"})
		return
	}

	var req struct {
		Nombre string `json:"nombre"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cuerpo de la petición inválido"})
		return
	}
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "El nombre es obligatorio"})
		return
	}

	res := gc.db.Model(&models.Game{}).Where("id = ?", id).Update("nombre", nombre)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Juego no encontrado"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Juego actualizado correctamente"})
}

// PUT /api/games/:id/favorite
func (gc *GameController) SetFavorite(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID inválido"})
		return
	}

	// Puntero para distinguir "favorito": false de un campo ausente
	var req struct {
		Favorito *bool `json:"favorito" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "El campo favorito es obligatorio"})
		return
	}

	res := gc.db.Model(&models.Game{}).Where("id = ?", id).Update("favorito", *req.Favorito)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Juego no encontrado"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Favorito actualizado correctamente", "changes": res.RowsAffected})
}

// DELETE /api/games/:id
// Primero se busca la fila para conocer imagen_url; si no existe no se
// toca el filesystem. El borrado del archivo es best-effort.
func (gc *GameController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID inválido"})
		return
	}

	var game models.Game
	if err := gc.db.First(&game, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Juego no encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	if err := gc.db.Delete(&models.Game{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	gc.media.Delete(game.ImagenURL)

	c.JSON(http.StatusOK, gin.H{"message": "Juego eliminado correctamente"})
}
