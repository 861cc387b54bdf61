package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"shop-storefront/internal/models"
)

type ProductRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(collection *mongo.Collection) *ProductRepository {
	return &ProductRepository{
		collection: collection,
	}
}

// CatalogFilter agrupa los filtros de búsqueda del catálogo
type CatalogFilter struct {
	Query    string
	Gender   string
	Category string
	MinPrice float64
}

// FindByProductID busca por el id estable del catálogo (no por ObjectID)
func (r *ProductRepository) FindByProductID(ctx context.Context, id string) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var product models.Product
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("product not found")
		}
		return nil, err
	}

	return &product, nil
}

// FindAll lista el catálogo aplicando los filtros de búsqueda
func (r *ProductRepository) FindAll(ctx context.Context, f CatalogFilter) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{}

	// gender filtra por el género pedido más unisex; "all" no filtra
	if f.Gender != "" && f.Gender != "all" {
		filter["gender"] = bson.M{"$in": []string{f.Gender, "unisex"}}
	}

	if f.Category != "" {
		filter["category"] = f.Category
	}

	if f.Query != "" {
		filter["$or"] = []bson.M{
			{"name": bson.M{"$regex": f.Query, "$options": "i"}},
			{"description": bson.M{"$regex": f.Query, "$options": "i"}},
			{"tags": bson.M{"$regex": f.Query, "$options": "i"}},
		}
	}

	if f.MinPrice > 0 {
		filter["price"] = bson.M{"$gte": f.MinPrice}
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	if err = cursor.All(ctx, &products); err != nil {
		return nil, err
	}

	return products, nil
}

// Snapshot devuelve el catálogo completo, para el motor de recomendaciones
// y el listado de ofertas
func (r *ProductRepository) Snapshot(ctx context.Context) ([]models.Product, error) {
	return r.FindAll(ctx, CatalogFilter{})
}

// Seed vacía la colección y la vuelve a poblar desde el archivo JSON.
// El catálogo se re-siembra completo en cada arranque.
func (r *ProductRepository) Seed(ctx context.Context, path string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	var products []models.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return 0, err
	}

	if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return 0, err
	}

	if len(products) == 0 {
		return 0, nil
	}

	now := time.Now()
	docs := make([]interface{}, 0, len(products))
	for i := range products {
		products[i].CreatedAt = now
		products[i].UpdatedAt = now
		docs = append(docs, products[i])
	}

	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return 0, err
	}

	return len(docs), nil
}
