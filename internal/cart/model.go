package cart

type Size string

const (
	SizeNone   Size = ""
	SizeMedium Size = "M"
	SizeLarge  Size = "L"
)

func (s Size) Valid() bool {
	return s == SizeNone || s == SizeMedium || s == SizeLarge
}

// LineItem is one product+size combination in a cart. ID is unique per
// combination, e.g. "coffee-0-M".
type LineItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Size     Size    `json:"size,omitempty"`
	Quantity int     `json:"quantity"`
	Category string  `json:"category"`
}

// Acknowledger receives the user-facing confirmation for an added item.
type Acknowledger func(message string)
