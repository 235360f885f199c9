package cart

import (
	"fmt"
	"math"
	"sync"
	"time"
)

// Cart is the mutable line-item collection of one browsing session. It is
// never persisted. Totals are derived on every read.
type Cart struct {
	mu       sync.Mutex
	items    []LineItem
	ack      Acknowledger
	toast    string
	lastUsed time.Time
	now      func() time.Time
}

func New(ack Acknowledger) *Cart {
	c := &Cart{ack: ack, now: time.Now}
	c.lastUsed = c.now()
	return c
}

// AddItem increments the quantity of an existing line with the same ID, or
// appends item with quantity 1. The quantity carried by item is ignored.
func (c *Cart) AddItem(item LineItem) {
	c.mu.Lock()
	c.touch()

	found := false
	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		item.Quantity = 1
		c.items = append(c.items, item)
	}

	msg := fmt.Sprintf("%s added to cart", item.Name)
	c.toast = msg
	ack := c.ack
	c.mu.Unlock()

	if ack != nil {
		ack(msg)
	}
}

// RemoveItem drops the line with the given ID. Absent IDs are ignored.
func (c *Cart) RemoveItem(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.touch()
	c.remove(id)
}

// UpdateQuantity sets the quantity of a line. Zero or negative n removes it.
func (c *Cart) UpdateQuantity(id string, n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.touch()

	if n <= 0 {
		c.remove(id)
		return
	}
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Quantity = n
			return
		}
	}
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.touch()
	c.items = nil
}

// Snapshot returns a copy of the lines and their total, read under one lock
// so the two always agree.
func (c *Cart) Snapshot() ([]LineItem, float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out, total(out)
}

// ClearSnapshot removes the quantities recorded in items, as returned by
// Snapshot. Lines added or topped up since the snapshot keep the difference.
func (c *Cart) ClearSnapshot(items []LineItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.touch()

	for _, taken := range items {
		for i := range c.items {
			if c.items[i].ID != taken.ID {
				continue
			}
			c.items[i].Quantity -= taken.Quantity
			if c.items[i].Quantity <= 0 {
				c.remove(taken.ID)
			}
			break
		}
	}
}

// Items returns a copy of the current lines; later cart mutations do not
// affect it.
func (c *Cart) Items() []LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return itemCount(c.items)
}

// Total is the sum of price × quantity, rounded to cents.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return total(c.items)
}

func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items) == 0
}

// LastToast returns the most recent add-to-cart acknowledgment.
func (c *Cart) LastToast() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.toast
}

func (c *Cart) idleSince() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastUsed
}

func (c *Cart) touch() {
	c.lastUsed = c.now()
}

func (c *Cart) remove(id string) {
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

func itemCount(items []LineItem) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}

func total(items []LineItem) float64 {
	var cents int64
	for _, it := range items {
		cents += ToCents(it.Price) * int64(it.Quantity)
	}
	return FromCents(cents)
}

func ToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func FromCents(cents int64) float64 {
	return float64(cents) / 100
}

// RoundMoney rounds amount to 2 decimal places.
func RoundMoney(amount float64) float64 {
	return FromCents(ToCents(amount))
}
