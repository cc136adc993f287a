package model

import (
	"fmt"
	"time"
)

// Category is a spending category. Names are unique by convention only;
// nothing enforces uniqueness. Expenses and budgets reference categories
// by ID and additionally embed a snapshot taken at write time.
type Category struct {
	CreatedAt time.Time
	ID        string
	Name      string
	Color     string // hex color used by list views and charts
	Icon      string // icon tag understood by the presentation layer
}

// Validate checks the fields a form layer must reject before handing the
// category to the store. The store itself performs no validation.
func (c *Category) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("category name is required")
	}
	return nil
}
