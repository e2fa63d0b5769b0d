package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func f64(v float64) *float64 { return &v }

type createInput struct {
	Name        string   `json:"name" validate:"required,max=255"`
	Description string   `json:"description" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Stock       *int     `json:"stockQuantity" validate:"required,integer,gte=0"`
}

func intp(v int) *int { return &v }

func TestStructValid(t *testing.T) {
	errs := Struct(&createInput{
		Name:        "Widget",
		Description: "A widget",
		Category:    "tools",
		Price:       f64(9.99),
		Stock:       intp(3),
	})
	assert.False(t, HasErrors(errs), "unexpected errors: %v", errs)
}

func TestStructRequired(t *testing.T) {
	errs := Struct(&createInput{})
	assert.True(t, HasErrors(errs))
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "price")
	assert.Contains(t, errs, "stockQuantity")
}

func TestRequiredAcceptsZeroBehindPointer(t *testing.T) {
	// A present price of 0 and stock of 0 are valid; only a missing
	// pointer counts as absent.
	errs := Struct(&createInput{
		Name:        "Freebie",
		Description: "Free",
		Category:    "promo",
		Price:       f64(0),
		Stock:       intp(0),
	})
	assert.False(t, HasErrors(errs), "unexpected errors: %v", errs)
}

func TestBoundsRules(t *testing.T) {
	errs := Struct(&createInput{
		Name:        "Widget",
		Description: "A widget",
		Category:    "tools",
		Price:       f64(-1),
		Stock:       intp(5),
	})
	assert.Contains(t, errs, "price")

	type limited struct {
		Nick string `json:"nick" validate:"nullable,min=3,max=5"`
	}
	assert.False(t, HasErrors(Struct(&limited{})), "nullable empty skips rules")
	assert.Contains(t, Struct(&limited{Nick: "ab"}), "nick")
	assert.Contains(t, Struct(&limited{Nick: "abcdef"}), "nick")
	assert.False(t, HasErrors(Struct(&limited{Nick: "abcd"})))
}

func TestFirstFailingRuleWins(t *testing.T) {
	type in struct {
		Age *int `json:"age" validate:"required,gte=18,lte=120"`
	}
	errs := Struct(&in{Age: intp(10)})
	assert.Equal(t, "The age must be greater than or equal to 18.", errs["age"])
}
