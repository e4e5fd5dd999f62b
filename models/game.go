package models

// Game is a catalog entry. ImagenURL points at a file under the uploads
// directory and is set once at creation; there is no replace-image flow.
type Game struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Nombre    string `json:"nombre" gorm:"not null"`
	ImagenURL string `json:"imagen_url" gorm:"column:imagen_url;not null"`
	Favorito  bool   `json:"favorito" gorm:"not null;default:false"`
}

func (Game) TableName() string {
	return "games"
}
