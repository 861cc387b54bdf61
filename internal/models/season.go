package models

// SeasonKey identifica el periodo promocional activo
type SeasonKey string

const (
	SeasonChristmas SeasonKey = "christmas"
	SeasonNewYear   SeasonKey = "newyear"
	SeasonWinter    SeasonKey = "winter"
	SeasonSummer    SeasonKey = "summer"
	SeasonDefault   SeasonKey = "default"
)

// Season es la temporada activa con sus textos de banner
type Season struct {
	Key      SeasonKey `json:"key"`
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle"`
}

// DecoratedProduct es un producto con su precio de oferta calculado.
// Nunca se persiste: se recalcula en cada petición.
type DecoratedProduct struct {
	Product
	SalePrice       float64 `json:"salePrice"`
	DiscountPercent int     `json:"discountPercent"`
	Offer           string  `json:"offer"`
}

// Gift es un regalo incluido con el pedido
type Gift struct {
	Name  string `json:"name" bson:"name"`
	Image string `json:"image" bson:"image"`
}
