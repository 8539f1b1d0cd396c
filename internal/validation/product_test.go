package validation_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"katalog/internal/models"
	"katalog/internal/validation"
)

func input(name string, price json.RawMessage, image string) *models.ProductInput {
	return &models.ProductInput{Name: name, Price: price, Image: image}
}

func TestCheckProduct_Valid(t *testing.T) {
	cases := []struct {
		name string
		in   *models.ProductInput
	}{
		{"plain record", input("Widget", json.RawMessage(`10`), "http://x.com/i.png")},
		{"zero price", input("Widget", json.RawMessage(`0`), "http://x.com/i.png")},
		{"numeric string price", input("Widget", json.RawMessage(`"19.99"`), "https://cdn.example.com/img/widget.png")},
		{"minimum name length", input("Ab", json.RawMessage(`1`), "http://x.com/i.png")},
		{"maximum name length", input(strings.Repeat("a", 100), json.RawMessage(`1`), "http://x.com/i.png")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Empty(t, validation.CheckProduct(tc.in))
		})
	}
}

func TestCheckProduct_MissingName(t *testing.T) {
	// Regardless of the other fields' validity, an absent name yields exactly
	// one error item, the required-field one.
	errs := validation.CheckProduct(input("", json.RawMessage(`10`), "http://x.com/i.png"))

	assert.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].Field)
	assert.Equal(t, validation.MsgNameRequired, errs[0].Message)

	errs = validation.CheckProduct(input("", json.RawMessage(`"abc"`), "not a url"))
	assert.Contains(t, errs, validation.FieldError{Field: "name", Message: validation.MsgNameRequired})
	assert.NotContains(t, errs, validation.FieldError{Field: "name", Message: validation.MsgNameLength})
}

func TestCheckProduct_NameLength(t *testing.T) {
	// Length 1 < 2: length error only, no other field produces errors.
	errs := validation.CheckProduct(input("A", json.RawMessage(`10`), "http://x.com/i.png"))
	assert.Equal(t, []validation.FieldError{{Field: "name", Message: validation.MsgNameLength}}, errs)

	errs = validation.CheckProduct(input(strings.Repeat("a", 101), json.RawMessage(`10`), "http://x.com/i.png"))
	assert.Equal(t, []validation.FieldError{{Field: "name", Message: validation.MsgNameLength}}, errs)
}

func TestCheckProduct_Price(t *testing.T) {
	errs := validation.CheckProduct(input("Widget", json.RawMessage(`-5`), "http://x.com/i.png"))
	assert.Equal(t, []validation.FieldError{{Field: "price", Message: validation.MsgPricePositive}}, errs)

	errs = validation.CheckProduct(input("Widget", json.RawMessage(`"abc"`), "http://x.com/i.png"))
	assert.Equal(t, []validation.FieldError{{Field: "price", Message: validation.MsgPriceNumber}}, errs)

	// Absent price cannot be interpreted as a number.
	errs = validation.CheckProduct(input("Widget", nil, "http://x.com/i.png"))
	assert.Equal(t, []validation.FieldError{{Field: "price", Message: validation.MsgPriceNumber}}, errs)

	// Neither can an explicit JSON null; it must not slip through as 0.
	errs = validation.CheckProduct(input("Widget", json.RawMessage(`null`), "http://x.com/i.png"))
	assert.Equal(t, []validation.FieldError{{Field: "price", Message: validation.MsgPriceNumber}}, errs)
}

func TestCheckProduct_Image(t *testing.T) {
	errs := validation.CheckProduct(input("Widget", json.RawMessage(`10`), "not a url"))
	assert.Equal(t, []validation.FieldError{{Field: "image", Message: validation.MsgImageURL}}, errs)

	errs = validation.CheckProduct(input("Widget", json.RawMessage(`10`), ""))
	assert.Equal(t, []validation.FieldError{{Field: "image", Message: validation.MsgImageURL}}, errs)
}

func TestCheckProduct_AllRulesEvaluated(t *testing.T) {
	// Every field's failures are collected in rule declaration order; no rule
	// short-circuits another field.
	errs := validation.CheckProduct(input("A", json.RawMessage(`-1`), "nope"))

	assert.Equal(t, []validation.FieldError{
		{Field: "name", Message: validation.MsgNameLength},
		{Field: "price", Message: validation.MsgPricePositive},
		{Field: "image", Message: validation.MsgImageURL},
	}, errs)
}

func TestCheckProduct_InputUnchanged(t *testing.T) {
	in := input("Widget", json.RawMessage(`"10"`), "http://x.com/i.png")
	validation.CheckProduct(in)

	// No coercion: the raw representation is forwarded as received.
	assert.Equal(t, json.RawMessage(`"10"`), in.Price)
	price, ok := in.PriceValue()
	assert.True(t, ok)
	assert.Equal(t, 10.0, price)
}
