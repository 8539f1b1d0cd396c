package models

import (
	"bytes"
	"encoding/json"
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product represents a product document in the store.
type Product struct {
	ID    primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name  string             `json:"name" bson:"name"`
	Price float64            `json:"price" bson:"price"`
	Image string             `json:"image" bson:"image"`
}

// ProductInput is the untyped inbound record for create and update requests.
// Price stays raw until validation so that a non-numeric value becomes a field
// error instead of a body-parse failure. Numeric JSON strings like "10" count
// as numbers.
type ProductInput struct {
	Name  string          `json:"name"`
	Price json.RawMessage `json:"price"`
	Image string          `json:"image"`
}

// PriceValue interprets the raw price as a number. The second return value is
// false when the value is absent, null or not numeric.
func (in *ProductInput) PriceValue() (float64, bool) {
	if len(in.Price) == 0 || bytes.Equal(in.Price, []byte("null")) {
		// A JSON null would decode into a float64 as a no-op; it is not a number.
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(in.Price, &f); err == nil {
		return f, true
	}
	var s string
	if err := json.Unmarshal(in.Price, &s); err == nil {
		if parsed, err := strconv.ParseFloat(s, 64); err == nil {
			return parsed, true
		}
	}
	return 0, false
}

// Record builds the Product to persist from a validated input.
func (in *ProductInput) Record() Product {
	price, _ := in.PriceValue()
	return Product{
		Name:  in.Name,
		Price: price,
		Image: in.Image,
	}
}
