package query

import "strings"

// Direction is a normalised sort direction.
type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// sortColumns is the closed allow-list of sortable API fields mapped to
// their table columns. Anything outside this map never reaches the query,
// which is what keeps dynamic field injection out of the ORDER BY clause.
var sortColumns = map[string]string{
	"price":         "price",
	"name":          "name",
	"stockQuantity": FieldStock,
}

// SortFields returns the allow-listed field names in stable order.
func SortFields() []string {
	return []string{"price", "name", "stockQuantity"}
}

// Sort is a validated (field, direction) pair. The zero value means
// "no ordering requested".
type Sort struct {
	Field     string
	Column    string
	Direction Direction
}

// ResolveSort validates field against the allow-list and normalises
// direction to upper case. Empty inputs fall back to price ascending.
func ResolveSort(field, direction string) (Sort, error) {
	if field == "" {
		field = "price"
	}
	column, ok := sortColumns[field]
	if !ok {
		return Sort{}, newValidationError("Invalid field: %s. Valid fields are: %s",
			field, strings.Join(SortFields(), ", "))
	}

	if direction == "" {
		direction = string(Asc)
	}
	dir := Direction(strings.ToUpper(direction))
	if dir != Asc && dir != Desc {
		return Sort{}, newValidationError("Invalid order: %s. Valid orders are: ASC, DESC", direction)
	}

	return Sort{Field: field, Column: column, Direction: dir}, nil
}

// OrderBy returns the ORDER BY clause body, e.g. "price ASC".
func (s Sort) OrderBy() string {
	return s.Column + " " + string(s.Direction)
}

// IsZero reports whether no ordering was requested.
func (s Sort) IsZero() bool {
	return s.Column == ""
}
