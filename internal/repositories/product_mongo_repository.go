package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"katalog/internal/models"
)

// MongoProductRepository is a MongoDB implementation of ProductRepository
// backed by a single "products" collection.
type MongoProductRepository struct {
	collection *mongo.Collection
}

// NewMongoProductRepository creates a new instance of MongoProductRepository.
func NewMongoProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{
		collection: db.Collection("products"),
	}
}

// GetAll retrieves all products from the collection.
func (r *MongoProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *MongoProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed ID is a caller fault, not an absent record.
		return nil, fmt.Errorf("invalid product id %q: %w", id, err)
	}

	var product models.Product
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&product); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// Create inserts a new product. The store assigns the identifier, which is
// written back into the passed record.
func (r *MongoProductRepository) Create(ctx context.Context, product *models.Product) error {
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	if _, err := r.collection.InsertOne(ctx, product); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update replaces the mutable fields of an existing product and returns the
// post-update document. The identifier is immutable.
func (r *MongoProductRepository) Update(ctx context.Context, id string, product *models.Product) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid product id %q: %w", id, err)
	}

	update := bson.M{"$set": bson.M{
		"name":  product.Name,
		"price": product.Price,
		"image": product.Image,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Product
	if err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update product %s: %w", id, err)
	}
	return &updated, nil
}

// Delete removes a product by its ID.
func (r *MongoProductRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid product id %q: %w", id, err)
	}

	if err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": oid}).Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	return nil
}
