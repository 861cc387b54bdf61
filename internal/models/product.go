package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product representa un producto del catálogo. El campo ProductID es el
// identificador estable del catálogo; el ObjectID es solo interno de Mongo.
type Product struct {
	ID          primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	ProductID   string             `json:"id" bson:"id" binding:"required"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64            `json:"price" bson:"price"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
	Images      []string           `json:"images,omitempty" bson:"images,omitempty"`
	Tags        []string           `json:"tags,omitempty" bson:"tags,omitempty"`
	Color       string             `json:"color,omitempty" bson:"color,omitempty"`
	Style       string             `json:"style,omitempty" bson:"style,omitempty"`
	Category    string             `json:"category,omitempty" bson:"category,omitempty"`
	Gender      string             `json:"gender,omitempty" bson:"gender,omitempty"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// FirstImage devuelve la imagen a mostrar: la primera de Images si existe,
// si no el campo Image heredado.
func (p *Product) FirstImage() string {
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return p.Image
}
