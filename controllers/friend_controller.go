package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/emanuelalzate12-bit/Proyecto/models"
)

type FriendController struct {
	db *gorm.DB
}

func NewFriendController(db *gorm.DB) *FriendController {
	return &FriendController{db: db}
}

// GET /api/friends
func (fc *FriendController) List(c *gin.Context) {
	friends := make([]models.Friend, 0)
	if err := fc.db.Order("nombre asc").Find(&friends).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Amigos obtenidos correctamente", "data": friends})
}

// POST /api/friends
func (fc *FriendController) Create(c *gin.Context) {
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

	friend := models.Friend{Nombre: nombre}
	if err := fc.db.Create(&friend).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Amigo agregado correctamente",
		"id":      friend.ID,
		"nombre":  friend.Nombre,
	})
}

// PUT /api/friends/:id
func (fc *FriendController) UpdateName(c *gin.Context) {
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

	res := fc.db.Model(&models.Friend{}).Where("id = ?", id).Update("nombre", nombre)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Amigo no encontrado"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Amigo actualizado correctamente"})
}

// DELETE /api/friends/:id
func (fc *FriendController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID inválido"})
		return
	}

	res := fc.db.Delete(&models.Friend{}, id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Amigo no encontrado"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Amigo eliminado correctamente"})
}
