package season

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop-storefront/internal/models"
)

func date(m time.Month, d int) time.Time {
	return time.Date(2025, m, d, 12, 0, 0, 0, time.UTC)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want models.SeasonKey
	}{
		{"christmas start", date(time.December, 20), models.SeasonChristmas},
		{"christmas mid", date(time.December, 22), models.SeasonChristmas},
		{"christmas end", date(time.December, 26), models.SeasonChristmas},
		{"december before christmas", date(time.December, 19), models.SeasonNewYear},
		{"november", date(time.November, 10), models.SeasonNewYear},
		{"january", date(time.January, 15), models.SeasonNewYear},
		{"february", date(time.February, 28), models.SeasonNewYear},
		// la ventana winter (Dic 27–31, Ene 1–5) cae entera dentro de los
		// meses de newyear, que se evalúa antes
		{"late december shadowed", date(time.December, 28), models.SeasonNewYear},
		{"early january shadowed", date(time.January, 3), models.SeasonNewYear},
		{"april", date(time.April, 1), models.SeasonSummer},
		{"may", date(time.May, 10), models.SeasonSummer},
		{"june", date(time.June, 30), models.SeasonSummer},
		{"july", date(time.July, 1), models.SeasonDefault},
		{"march", date(time.March, 15), models.SeasonDefault},
		{"october", date(time.October, 31), models.SeasonDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.date).Key)
		})
	}
}

func TestResolveTitles(t *testing.T) {
	assert.Equal(t, "Christmas Sale", Resolve(date(time.December, 22)).Title)
	assert.Equal(t, "New Year Mega Sale", Resolve(date(time.January, 15)).Title)
	assert.Equal(t, "Summer Vibes", Resolve(date(time.May, 1)).Title)
	assert.Equal(t, "Today’s Picks", Resolve(date(time.August, 1)).Title)
}

func TestEligible(t *testing.T) {
	tests := []struct {
		name    string
		product models.Product
		key     models.SeasonKey
		want    bool
	}{
		{"winter jacket", models.Product{Category: "jacket"}, models.SeasonWinter, true},
		{"winter pants", models.Product{Category: "pants"}, models.SeasonWinter, true},
		{"winter shirt excluded", models.Product{Category: "shirt"}, models.SeasonWinter, false},
		{"winter by tag", models.Product{Category: "shirt", Tags: []string{"Winter"}}, models.SeasonWinter, true},
		{"winter category case insensitive", models.Product{Category: "Jacket"}, models.SeasonWinter, true},
		{"summer tshirt", models.Product{Category: "tshirt"}, models.SeasonSummer, true},
		{"summer shoes excluded", models.Product{Category: "shoes", Price: 500}, models.SeasonSummer, false},
		{"summer by tag", models.Product{Category: "shoes", Tags: []string{"summer"}}, models.SeasonSummer, true},
		{"christmas dress", models.Product{Category: "dress", Price: 2000}, models.SeasonChristmas, true},
		{"christmas by party tag", models.Product{Category: "hoodie", Tags: []string{"party"}}, models.SeasonChristmas, true},
		{"newyear shoes", models.Product{Category: "shoes"}, models.SeasonNewYear, true},
		{"newyear coat excluded", models.Product{Category: "coat"}, models.SeasonNewYear, false},
		{"default price at threshold", models.Product{Category: "coat", Price: 300}, models.SeasonDefault, true},
		{"default price below threshold", models.Product{Category: "coat", Price: 299}, models.SeasonDefault, false},
		{"no category no tags", models.Product{}, models.SeasonWinter, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Eligible(tt.product, tt.key))
		})
	}
}

func TestDecorate(t *testing.T) {
	t.Run("nil when price is zero", func(t *testing.T) {
		assert.Nil(t, Decorate(models.Product{Category: "dress"}, models.SeasonChristmas))
	})

	tests := []struct {
		name        string
		price       float64
		key         models.SeasonKey
		wantSale    float64
		wantPercent int
	}{
		// 0.30 base + 0.10 por superar 1000
		{"christmas dress 2000", 2000, models.SeasonChristmas, 1200, 40},
		{"newyear 1000 hits surcharge", 1000, models.SeasonNewYear, 600, 40},
		{"christmas below surcharge", 800, models.SeasonChristmas, 560, 30},
		{"summer cheap", 749, models.SeasonSummer, 637, 15},
		{"summer expensive", 1299, models.SeasonSummer, 974, 25},
		{"winter base", 800, models.SeasonWinter, 640, 20},
		{"winter with surcharge", 1200, models.SeasonWinter, 840, 30},
		{"default season", 500, models.SeasonDefault, 400, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec := Decorate(models.Product{Price: tt.price}, tt.key)
			require.NotNil(t, dec)
			assert.Equal(t, tt.wantSale, dec.SalePrice)
			assert.Equal(t, tt.wantPercent, dec.DiscountPercent)
			assert.NotEmpty(t, dec.Offer)
		})
	}
}

func TestDecorateBounds(t *testing.T) {
	keys := []models.SeasonKey{
		models.SeasonChristmas, models.SeasonNewYear, models.SeasonWinter,
		models.SeasonSummer, models.SeasonDefault,
	}
	prices := []float64{1, 299, 300, 999, 1000, 1500, 2500, 9999}

	for _, key := range keys {
		for _, price := range prices {
			t.Run(fmt.Sprintf("%s_%v", key, price), func(t *testing.T) {
				dec := Decorate(models.Product{Price: price}, key)
				require.NotNil(t, dec)
				assert.GreaterOrEqual(t, dec.DiscountPercent, 0)
				assert.LessOrEqual(t, dec.DiscountPercent, 45)
				assert.LessOrEqual(t, dec.SalePrice, price)
			})
		}
	}
}

func TestDecorateOfferCopy(t *testing.T) {
	dec := Decorate(models.Product{Price: 2000}, models.SeasonChristmas)
	require.NotNil(t, dec)
	assert.Equal(t, "Offer: Orders above ₹2500 get a free mini Bluetooth speaker.", dec.Offer)

	dec = Decorate(models.Product{Price: 500}, models.SeasonDefault)
	require.NotNil(t, dec)
	assert.Equal(t, "Limited time price – while stocks last.", dec.Offer)
}

func TestEffectivePrice(t *testing.T) {
	tests := []struct {
		name    string
		product models.Product
		key     models.SeasonKey
		want    float64
	}{
		{"eligible gets sale price", models.Product{Category: "dress", Price: 2000}, models.SeasonChristmas, 1200},
		{"not eligible keeps list price", models.Product{Category: "shoes", Price: 500}, models.SeasonSummer, 500},
		{"missing price stays zero", models.Product{Category: "dress"}, models.SeasonChristmas, 0},
		{"default below threshold", models.Product{Price: 250}, models.SeasonDefault, 250},
		{"default above threshold", models.Product{Price: 500}, models.SeasonDefault, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EffectivePrice(tt.product, tt.key))
		})
	}
}

func TestGiftsForTotal(t *testing.T) {
	tests := []struct {
		name  string
		total float64
		key   models.SeasonKey
		want  []string
	}{
		{"christmas over threshold", 2600, models.SeasonChristmas, []string{"Mini Bluetooth speaker"}},
		{"christmas at threshold", 2500, models.SeasonChristmas, []string{"Mini Bluetooth speaker"}},
		{"christmas below threshold", 2499, models.SeasonChristmas, nil},
		// el umbral de newyear es 3001, no 3000
		{"newyear at 3000", 3000, models.SeasonNewYear, nil},
		{"newyear at 3001", 3001, models.SeasonNewYear, []string{"Wireless earbuds"}},
		{"winter at threshold", 1500, models.SeasonWinter, []string{"Woolen cap"}},
		{"summer at threshold", 1500, models.SeasonSummer, []string{"Basic cotton T-shirt"}},
		{"default never gifts", 99999, models.SeasonDefault, nil},
		{"other seasons never stack", 99999, models.SeasonChristmas, []string{"Mini Bluetooth speaker"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gifts := GiftsForTotal(tt.total, tt.key)
			names := make([]string, 0, len(gifts))
			for _, g := range gifts {
				names = append(names, g.Name)
			}
			if tt.want == nil {
				assert.Empty(t, names)
			} else {
				assert.Equal(t, tt.want, names)
			}
		})
	}
}

// Escenario completo: 22 de diciembre, vestido de 2000 en el carrito por 2600
// de total de pedido
func TestChristmasScenario(t *testing.T) {
	active := Resolve(date(time.December, 22))
	require.Equal(t, models.SeasonChristmas, active.Key)
	require.Equal(t, "Christmas Sale", active.Title)

	dress := models.Product{ProductID: "d1", Category: "dress", Price: 2000}
	require.True(t, Eligible(dress, active.Key))

	dec := Decorate(dress, active.Key)
	require.NotNil(t, dec)
	assert.Equal(t, float64(1200), dec.SalePrice)
	assert.Equal(t, 40, dec.DiscountPercent)

	gifts := GiftsForTotal(2600, active.Key)
	require.Len(t, gifts, 1)
	assert.Equal(t, "Mini Bluetooth speaker", gifts[0].Name)
}
