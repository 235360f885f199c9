package menu

var plans = []Plan{
	{
		ID:            "explorer",
		Name:          "Explorer",
		Subtitle:      "The Gateway",
		Price:         29,
		OriginalPrice: 39,
		Coffee:        "250g",
		Description:   "Perfect for coffee curious minds",
		Features:      []string{"Tasting notes card", "Origin story included", "Cancel anytime"},
	},
	{
		ID:            "connoisseur",
		Name:          "Connoisseur",
		Subtitle:      "Most Popular",
		Price:         54,
		OriginalPrice: 72,
		Coffee:        "680g",
		Description:   "For those who demand excellence",
		Features:      []string{"Brewing guide", "Members-only releases", "Whiskey Barrel Aged included", "Priority shipping"},
	},
	{
		ID:            "collector",
		Name:          "Collector",
		Subtitle:      "The Obsession",
		Price:         89,
		OriginalPrice: 120,
		Coffee:        "1kg+",
		Description:   "The ultimate pursuit of perfection",
		Features:      []string{"All Limited Editions", "Whiskey Barrel priority", "Private Discord", "Origin trip raffle"},
	},
}

func Plans() []Plan {
	out := make([]Plan, len(plans))
	copy(out, plans)
	return out
}

func FindPlan(id string) (Plan, error) {
	for _, p := range plans {
		if p.ID == id {
			return p, nil
		}
	}
	return Plan{}, ErrPlanNotFound
}
