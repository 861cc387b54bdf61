package season

import (
	"math"
	"strings"
	"time"

	"shop-storefront/internal/models"
)

// Las reglas de temporada se evalúan en orden: gana la primera que coincide.
// Las ventanas se solapan a propósito: newyear cubre Nov–Feb completo y por
// eso captura Dic 27–31 y Ene 1–5 antes de que la regla winter las vea.
type rule struct {
	match  func(m time.Month, d int) bool
	season models.Season
}

var rules = []rule{
	{
		match: func(m time.Month, d int) bool { return m == time.December && d >= 20 && d <= 26 },
		season: models.Season{
			Key:      models.SeasonChristmas,
			Title:    "Christmas Sale",
			Subtitle: "Flat 30% off on party outfits + free gift wrapping. Orders over ₹2500 get free mini speaker.",
		},
	},
	{
		match: func(m time.Month, d int) bool {
			return m == time.November || m == time.December || m == time.January || m == time.February
		},
		season: models.Season{
			Key:      models.SeasonNewYear,
			Title:    "New Year Mega Sale",
			Subtitle: "Ring in the new year with 25–35% off. Orders above ₹3001 get bonus wireless earbuds.",
		},
	},
	{
		match: func(m time.Month, d int) bool {
			return (m == time.December && d >= 27) || (m == time.January && d <= 5)
		},
		season: models.Season{
			Key:      models.SeasonWinter,
			Title:    "Winter Warmers",
			Subtitle: "Stay cozy with 20% off jackets & warm bottoms. Extra 10% off items above ₹1000.",
		},
	},
	{
		match: func(m time.Month, d int) bool { return m == time.April || m == time.May || m == time.June },
		season: models.Season{
			Key:      models.SeasonSummer,
			Title:    "Summer Vibes",
			Subtitle: "Cool shirts and dresses with 15–25% off. Lightweight styles get “Buy 2 get 1 free”.",
		},
	},
}

var defaultSeason = models.Season{
	Key:      models.SeasonDefault,
	Title:    "Today’s Picks",
	Subtitle: "Hand-picked outfits with special prices just for today.",
}

// Resolve determina la temporada activa para una fecha dada. La fecha se
// inyecta siempre desde el caller para que el motor sea determinista.
func Resolve(now time.Time) models.Season {
	m, d := now.Month(), now.Day()
	for _, r := range rules {
		if r.match(m, d) {
			return r.season
		}
	}
	return defaultSeason
}

// Categorías y tag que habilitan la oferta de cada temporada. La temporada
// default no tiene lista: entran los productos con precio >= 300.
var eligibleCategories = map[models.SeasonKey][]string{
	models.SeasonWinter:    {"jacket", "coat", "sweater", "hoodie", "pants"},
	models.SeasonSummer:    {"shirt", "tshirt", "polo", "dress", "shorts"},
	models.SeasonChristmas: {"dress", "jacket", "shoes", "shirt"},
	models.SeasonNewYear:   {"dress", "jacket", "shoes", "shirt"},
}

var eligibleTags = map[models.SeasonKey]string{
	models.SeasonWinter:    "winter",
	models.SeasonSummer:    "summer",
	models.SeasonChristmas: "party",
	models.SeasonNewYear:   "party",
}

const defaultSeasonMinPrice = 300

// Eligible indica si el producto participa en la oferta de la temporada.
// Categoría y tags se comparan en minúsculas.
func Eligible(p models.Product, key models.SeasonKey) bool {
	cats, ok := eligibleCategories[key]
	if !ok {
		return p.Price >= defaultSeasonMinPrice
	}

	cat := strings.ToLower(p.Category)
	for _, c := range cats {
		if cat == c {
			return true
		}
	}

	want := eligibleTags[key]
	for _, t := range p.Tags {
		if strings.ToLower(t) == want {
			return true
		}
	}
	return false
}

const (
	surchargeThreshold = 1000
	surcharge          = 0.10
	maxDiscount        = 0.45
)

var baseDiscounts = map[models.SeasonKey]float64{
	models.SeasonChristmas: 0.30,
	models.SeasonNewYear:   0.30,
	models.SeasonSummer:    0.15,
}

var offers = map[models.SeasonKey]string{
	models.SeasonWinter:    "Offer: Buy 2 jackets / winter bottoms, get 1 woolen cap free.",
	models.SeasonSummer:    "Offer: Buy 2 summer tops, get 1 basic tee free.",
	models.SeasonChristmas: "Offer: Orders above ₹2500 get a free mini Bluetooth speaker.",
	models.SeasonNewYear:   "Offer: Orders above ₹3000 get free wireless earbuds.",
}

const defaultOffer = "Limited time price – while stocks last."

// Decorate calcula el precio de oferta del producto para la temporada.
// Devuelve nil si el producto no tiene precio. El redondeo del precio es
// half away from zero (math.Round), que coincide con el half-up clásico
// para los precios positivos del catálogo.
func Decorate(p models.Product, key models.SeasonKey) *models.DecoratedProduct {
	if p.Price == 0 {
		return nil
	}

	discount := 0.20
	if d, ok := baseDiscounts[key]; ok {
		discount = d
	}
	if p.Price >= surchargeThreshold {
		discount += surcharge
	}
	if discount > maxDiscount {
		discount = maxDiscount
	}

	offer, ok := offers[key]
	if !ok {
		offer = defaultOffer
	}

	return &models.DecoratedProduct{
		Product:         p,
		SalePrice:       math.Round(p.Price * (1 - discount)),
		DiscountPercent: int(math.Round(discount * 100)),
		Offer:           offer,
	}
}

// EffectivePrice es el precio que realmente se muestra y se cobra: el precio
// de oferta si el producto es elegible, o el precio de lista si no.
func EffectivePrice(p models.Product, key models.SeasonKey) float64 {
	if Eligible(p, key) {
		if dec := Decorate(p, key); dec != nil && dec.SalePrice > 0 {
			return dec.SalePrice
		}
	}
	return p.Price
}

// Umbrales de regalo por temporada. Solo puede aplicar la regla de la
// temporada activa; el umbral de newyear es >= 3001 tal como está publicado.
type giftRule struct {
	season models.SeasonKey
	min    float64
	gift   models.Gift
}

var giftRules = []giftRule{
	{models.SeasonWinter, 1500, models.Gift{Name: "Woolen cap", Image: "/images/image copy 47.png"}},
	{models.SeasonSummer, 1500, models.Gift{Name: "Basic cotton T-shirt", Image: "/images/image copy 49.png"}},
	{models.SeasonChristmas, 2500, models.Gift{Name: "Mini Bluetooth speaker", Image: "/images/speaker.png"}},
	{models.SeasonNewYear, 3001, models.Gift{Name: "Wireless earbuds", Image: "/images/earbuds.png"}},
}

// GiftsForTotal devuelve los regalos ganados por un total de pedido
// en la temporada indicada.
func GiftsForTotal(total float64, key models.SeasonKey) []models.Gift {
	gifts := []models.Gift{}
	for _, r := range giftRules {
		if r.season == key && total >= r.min {
			gifts = append(gifts, r.gift)
		}
	}
	return gifts
}
