package menu

import (
	"fmt"

	"vanta-be/internal/cart"
)

type entry struct {
	name, desc     string
	priceM, priceL float64
	price          float64
	badge          string
	special        bool
}

var sections = map[Category][]entry{
	CategoryCoffee: {
		{name: "Ethiopian Yirgacheffe", desc: "Floral, bergamot, honey sweetness", priceM: 6.50, priceL: 8.00},
		{name: "Panama Geisha", desc: "Jasmine, tropical fruit, silky body", priceM: 12.00, priceL: 15.00},
		{name: "Kenya AA Nyeri", desc: "Blackcurrant, tomato acidity, wine-like", priceM: 7.00, priceL: 8.50},
		{name: "Colombia Huila", desc: "Caramel, red apple, balanced", priceM: 5.50, priceL: 7.00},
		{name: "Guatemala Antigua", desc: "Chocolate, spice, smoky finish", priceM: 6.00, priceL: 7.50},
		{name: "Costa Rica Tarrazú", desc: "Bright citrus, brown sugar, clean", priceM: 6.50, priceL: 8.00},
		{name: "Sumatra Mandheling", desc: "Earthy, cedar, dark chocolate", priceM: 5.50, priceL: 7.00},
		{name: "Yemen Mocha", desc: "Dried fruit, wine, complex spice", priceM: 14.00, priceL: 17.00},
		{name: "Jamaica Blue Mountain", desc: "Mild, sweet, no bitterness", priceM: 18.00, priceL: 22.00},
		{name: "Whiskey Barrel Aged", desc: "Oak, vanilla, bourbon essence", priceM: 9.00, priceL: 11.00, special: true},
		{name: "Nitro Cold Brew", desc: "Creamy, smooth, cascading pour", priceM: 6.00, priceL: 7.50},
		{name: "Oat Milk Latte", desc: "Velvety, naturally sweet, eco", priceM: 5.50, priceL: 7.00},
	},
	CategoryTea: {
		{name: "Kyoto Matcha", desc: "Ceremonial grade, umami, vibrant", priceM: 7.00, priceL: 9.00, badge: "Imported"},
		{name: "Darjeeling First Flush", desc: "Muscatel, floral, champagne of teas", priceM: 6.00, priceL: 7.50, badge: "Rare Find"},
		{name: "Taiwanese Oolong", desc: "Orchid, creamy, roasted notes", priceM: 6.50, priceL: 8.00},
		{name: "Earl Grey Supreme", desc: "Bergamot, lavender, refined", priceM: 5.00, priceL: 6.50},
		{name: "Moroccan Mint", desc: "Fresh spearmint, gunpowder green", priceM: 5.00, priceL: 6.50},
		{name: "Chai Masala", desc: "Cardamom, cinnamon, ginger, bold", priceM: 5.50, priceL: 7.00, badge: "House Blend"},
	},
	CategorySpirits: {
		{name: "Whiskey Barrel Espresso Martini", desc: "Our aged coffee, vodka, Kahlúa", price: 16.00, special: true},
		{name: "Irish Coffee", desc: "Jameson, brown sugar, fresh cream", price: 14.00},
		{name: "Bourbon Cold Brew", desc: "Maker's Mark, vanilla, nitro", price: 15.00},
		{name: "Amaretto Latte", desc: "Disaronno, espresso, steamed milk", price: 13.00},
		{name: "Coffee Old Fashioned", desc: "Rye whiskey, coffee bitters, orange", price: 15.00},
		{name: "Kahlúa Affogato", desc: "Vanilla gelato, espresso, Kahlúa", price: 12.00},
	},
	CategoryPastry: {
		{name: "Pain au Chocolat", desc: "Flaky, Valrhona dark chocolate", price: 5.50, badge: "Best Seller"},
		{name: "Almond Croissant", desc: "Twice-baked, frangipane, toasted", price: 6.00},
		{name: "Pistachio Financier", desc: "Browned butter, Sicilian pistachio", price: 5.00, badge: "Chef's Pick"},
		{name: "Cardamom Knot", desc: "Swedish-style, aromatic, glazed", price: 5.50},
		{name: "Canelé Bordelais", desc: "Caramelized crust, rum custard", price: 4.50, badge: "Made Daily"},
	},
	CategoryBreakfast: {
		{name: "Avocado Toast", desc: "Sourdough, poached egg, dukkah", price: 14.00, badge: "Most Popular"},
		{name: "Shakshuka", desc: "Spiced tomato, feta, herbs, bread", price: 15.00},
		{name: "Granola Bowl", desc: "House granola, Greek yogurt, berries", price: 12.00, badge: "Healthy"},
		{name: "Eggs Benedict", desc: "Smoked salmon, hollandaise, chives", price: 18.00, badge: "Premium"},
		{name: "French Toast", desc: "Brioche, maple, mascarpone, berries", price: 14.00},
	},
}

// Catalog is the read-only storefront menu. Prices are resolved server side
// so a client cannot choose what it pays.
type Catalog struct {
	items []Item
	byID  map[string]Item
}

// NewCatalog builds the house menu.
func NewCatalog() *Catalog {
	c := &Catalog{byID: make(map[string]Item)}
	for _, cat := range Categories {
		for idx, e := range sections[cat] {
			item := Item{
				ID:          fmt.Sprintf("%s-%d", cat, idx),
				Name:        e.name,
				Description: e.desc,
				Category:    cat,
				Badge:       e.badge,
				Special:     e.special,
			}
			if e.priceM > 0 {
				item.Sizes = map[cart.Size]float64{
					cart.SizeMedium: e.priceM,
					cart.SizeLarge:  e.priceL,
				}
			} else {
				item.Price = e.price
			}
			c.items = append(c.items, item)
			c.byID[item.ID] = item
		}
	}
	return c
}

// Items returns every item in display order.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Catalog) ByCategory(cat Category) []Item {
	var out []Item
	for _, it := range c.items {
		if it.Category == cat {
			out = append(out, it)
		}
	}
	return out
}

func (c *Catalog) Find(id string) (Item, error) {
	it, ok := c.byID[id]
	if !ok {
		return Item{}, ErrItemNotFound
	}
	return it, nil
}

// LineItem resolves a menu item and size into the cart line it adds.
// Sized items require M or L; unsized items reject any size.
func (c *Catalog) LineItem(itemID string, size cart.Size) (cart.LineItem, error) {
	it, err := c.Find(itemID)
	if err != nil {
		return cart.LineItem{}, err
	}

	line := cart.LineItem{
		ID:       it.ID,
		Name:     it.Name,
		Category: string(it.Category),
		Quantity: 1,
	}

	if !it.Sized() {
		if size != cart.SizeNone {
			return cart.LineItem{}, ErrInvalidSize
		}
		line.Price = it.Price
		return line, nil
	}

	price, ok := it.Sizes[size]
	if !ok {
		return cart.LineItem{}, ErrInvalidSize
	}
	line.ID = fmt.Sprintf("%s-%s", it.ID, size)
	line.Price = price
	line.Size = size
	return line, nil
}
