package models

type Friend struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Nombre string `json:"nombre" gorm:"not null"`
}

func (Friend) TableName() string {
	return "friends"
}
