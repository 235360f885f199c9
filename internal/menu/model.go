package menu

import "vanta-be/internal/cart"

type Category string

const (
	CategoryCoffee    Category = "coffee"
	CategoryTea       Category = "tea"
	CategorySpirits   Category = "spirits"
	CategoryPastry    Category = "pastry"
	CategoryBreakfast Category = "breakfast"
)

// Categories lists the menu sections in display order.
var Categories = []Category{CategoryCoffee, CategoryTea, CategorySpirits, CategoryPastry, CategoryBreakfast}

// Item is one menu entry. Sized items carry a price per size and add to the
// cart as "<category>-<index>-<size>"; unsized items use Price and
// "<category>-<index>".
type Item struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Category    Category              `json:"category"`
	Price       float64               `json:"price,omitempty"`
	Sizes       map[cart.Size]float64 `json:"sizes,omitempty"`
	Badge       string                `json:"badge,omitempty"`
	Special     bool                  `json:"special,omitempty"`
}

func (i Item) Sized() bool {
	return len(i.Sizes) > 0
}

// Plan is a subscription tier offered on the storefront.
type Plan struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Subtitle      string   `json:"subtitle"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"original_price"`
	Coffee        string   `json:"coffee"`
	Description   string   `json:"description"`
	Features      []string `json:"features"`
}
