package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emanuelalzate12-bit/Proyecto/storage"
)

type UploadController struct {
	media *storage.MediaStore
}

func NewUploadController(media *storage.MediaStore) *UploadController {
	return &UploadController{media: media}
}

// POST /api/upload
// multipart/form-data, campo "image". Solo guarda el archivo y devuelve
// la URL generada; la fila del juego se crea después con POST /api/games.
func (uc *UploadController) UploadImage(c *gin.Context) {
	const maxUploadSize = 10 << 20 // 10 MB
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "La imagen es obligatoria"})
		return
	}

	imageURL, err := uc.media.Save(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "No se pudo guardar la imagen"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"imageUrl": imageURL})
}
