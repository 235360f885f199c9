package cart

// Summary is the read view of a cart returned to the storefront.
type Summary struct {
	Items     []LineItem `json:"items"`
	ItemCount int        `json:"item_count"`
	Total     float64    `json:"total"`
	Toast     string     `json:"toast,omitempty"`
}

func ToSummary(c *Cart) Summary {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]LineItem, len(c.items))
	copy(items, c.items)

	return Summary{
		Items:     items,
		ItemCount: itemCount(c.items),
		Total:     total(c.items),
		Toast:     c.toast,
	}
}
