package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartLine es una línea del carrito con el snapshot del producto
// tal como estaba al agregarlo.
type CartLine struct {
	LineID   string  `json:"id" bson:"line_id"`
	Product  Product `json:"product" bson:"product"`
	Quantity int     `json:"quantity" bson:"quantity"`
}

// Cart es el carrito de una sesión, persistido en la colección carts
type Cart struct {
	ID        primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	CartID    string             `json:"-" bson:"cart_id"`
	UserID    string             `json:"-" bson:"user_id,omitempty"`
	Lines     []CartLine         `json:"lines" bson:"lines"`
	CreatedAt time.Time          `json:"-" bson:"created_at"`
	UpdatedAt time.Time          `json:"-" bson:"updated_at"`
}
