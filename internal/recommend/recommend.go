package recommend

import (
	"math"
	"sort"

	"shop-storefront/internal/models"
)

// DefaultLimit es el tamaño de la lista de recomendados
const DefaultLimit = 6

// colorMatches lista los colores que combinan con cada color base. La tabla
// es direccional: la búsqueda siempre usa el color del producto de referencia
// como clave.
var colorMatches = map[string][]string{
	"black":  {"white", "grey", "red", "blue", "gold", "silver"},
	"white":  {"black", "blue", "red", "beige", "grey"},
	"blue":   {"white", "beige", "grey", "black"},
	"navy":   {"beige", "white", "grey"},
	"beige":  {"navy", "blue", "black", "white", "green"},
	"brown":  {"white", "beige", "blue"},
	"grey":   {"black", "white", "blue", "red"},
	"red":    {"black", "white", "blue"},
	"pink":   {"white", "grey", "blue"},
	"green":  {"beige", "white", "black"},
	"gold":   {"black", "white", "red"},
	"silver": {"black", "white", "blue"},
}

// complementary lista las categorías que se llevan bien con cada categoría
// base. También direccional: solo se consulta la fila de la referencia.
var complementary = map[string][]string{
	"shirt":  {"pants", "jacket", "shoes"},
	"polo":   {"pants", "shoes"},
	"jacket": {"shirt", "pants", "shoes"},
	"pants":  {"shirt", "jacket", "shoes"},
	"dress":  {"jacket", "shoes"},
	"shoes":  {"pants", "shirt", "jacket"},
}

var defaultComplements = []string{"shirt", "pants", "jacket", "shoes"}

// Scored es un producto candidato con su puntaje de afinidad
type Scored struct {
	models.Product
	Score float64 `json:"score"`
}

// Similarity calcula la afinidad entre dos productos: Jaccard sobre tags
// más bonificaciones por color y estilo. El puntaje no se normaliza y puede
// superar 1.0.
func Similarity(a, b models.Product) float64 {
	setA := make(map[string]struct{}, len(a.Tags))
	for _, t := range a.Tags {
		setA[t] = struct{}{}
	}

	intersection := 0
	union := len(setA)
	seenB := make(map[string]struct{}, len(b.Tags))
	for _, t := range b.Tags {
		if _, dup := seenB[t]; dup {
			continue
		}
		seenB[t] = struct{}{}
		if _, ok := setA[t]; ok {
			intersection++
		} else {
			union++
		}
	}
	// unión vacía cuenta como 1 para no dividir por cero
	if union == 0 {
		union = 1
	}
	score := float64(intersection) / float64(union)

	if a.Color != "" && b.Color != "" && a.Color == b.Color {
		score += 0.12
	}
	if a.Color != "" && b.Color != "" && contains(colorMatches[a.Color], b.Color) {
		score += 0.15
	}
	if a.Style != "" && b.Style != "" && a.Style == b.Style {
		score += 0.08
	}
	return score
}

// IsComplementary indica si otherCat complementa a baseCat. Una categoría
// desconocida cae a la fila default.
func IsComplementary(baseCat, otherCat string) bool {
	comp, ok := complementary[baseCat]
	if !ok {
		comp = defaultComplements
	}
	return contains(comp, otherCat)
}

// Recommend rankea el catálogo por afinidad con el producto de referencia y
// devuelve el top-N. Si la referencia no existe devuelve una lista vacía.
// Se excluye la referencia misma y los candidatos del género opuesto estricto
// (men/women); unisex o sin género nunca se filtra.
func Recommend(catalog []models.Product, refID string, limit int) []Scored {
	if limit <= 0 {
		limit = DefaultLimit
	}

	var ref *models.Product
	for i := range catalog {
		if catalog[i].ProductID == refID {
			ref = &catalog[i]
			break
		}
	}
	if ref == nil {
		return []Scored{}
	}

	scored := make([]Scored, 0, len(catalog))
	for _, p := range catalog {
		if p.ProductID == ref.ProductID {
			continue
		}
		if crossGender(ref.Gender, p.Gender) {
			continue
		}
		s := Similarity(*ref, p)
		if IsComplementary(ref.Category, p.Category) {
			s += 0.18
		}
		scored = append(scored, Scored{Product: p, Score: s})
	}

	// orden estable: a igual puntaje se conserva el orden del catálogo.
	// El orden se decide con el puntaje sin redondear.
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })

	if len(scored) > limit {
		scored = scored[:limit]
	}
	for i := range scored {
		scored[i].Score = math.Round(scored[i].Score*1000) / 1000
	}
	return scored
}

func crossGender(a, b string) bool {
	return (a == "men" && b == "women") || (a == "women" && b == "men")
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
