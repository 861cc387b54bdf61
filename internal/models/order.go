package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Shipping son los datos de envío del pedido
type Shipping struct {
	Name    string `json:"name" bson:"name"`
	Address string `json:"address" bson:"address"`
	City    string `json:"city" bson:"city"`
	Pincode string `json:"pincode" bson:"pincode"`
	Phone   string `json:"phone,omitempty" bson:"phone,omitempty"`
}

// OrderItem es una línea del pedido. Price es el precio efectivo por unidad
// que se cobró, ya con el descuento de temporada aplicado.
type OrderItem struct {
	ProductID string  `json:"productId" bson:"product_id"`
	Name      string  `json:"name" bson:"name"`
	Quantity  int     `json:"quantity" bson:"quantity"`
	Price     float64 `json:"price" bson:"price"`
}

// Order es un pedido confirmado
type Order struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID        string             `json:"-" bson:"user_id"`
	Shipping      Shipping           `json:"shipping" bson:"shipping"`
	PaymentMethod string             `json:"paymentMethod" bson:"payment_method"`
	Items         []OrderItem        `json:"items" bson:"items"`
	Total         float64            `json:"total" bson:"total"`
	FreeGifts     []Gift             `json:"freeGifts,omitempty" bson:"free_gifts,omitempty"`
	Status        string             `json:"status" bson:"status"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}
