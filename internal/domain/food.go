package domain

type FoodItem struct {
	ID      int64
	Name    string
	Cuisine string
	Price   int64
}

type FoodOrder struct {
	FoodItemID int64 `json:"foodItemId"`
	Quantity   int   `json:"quantity"`
}

// Cuisines returns the distinct cuisine labels of the catalog in first-seen
// order.
func Cuisines(items []FoodItem) []string {
	seen := make(map[string]struct{}, len(items))
	var cuisines []string
	for _, item := range items {
		if _, ok := seen[item.Cuisine]; ok {
			continue
		}
		seen[item.Cuisine] = struct{}{}
		cuisines = append(cuisines, item.Cuisine)
	}
	return cuisines
}
