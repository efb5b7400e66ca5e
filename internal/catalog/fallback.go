package catalog

// Built-in menu served whenever the sheet cannot be fetched or fails
// schema validation. The conversation never blocks on the sheet being up.

func fallbackCategories() []Category {
	return []Category{
		{Name: "Uncles Favorite Fries", Description: "Tongue grabbing fries", Kind: "Basic Fries"},
		{Name: "Uncles Wing Thing", Description: "Tongue grabbing wings", Kind: "Basic Wings"},
		{Name: "Uncles Loaded Fries", Description: "One of Wun Fries", Kind: "Loaded fries"},
		{Name: "Uncles Deals", Description: "Uncles Pro Deals", Kind: "Special Deals"},
		{Name: "Add Ons", Description: "add-ons for your order", Kind: "Limited Add Ons"},
	}
}

func fallbackItems() []MenuItem {
	return []MenuItem{
		{ParentCategory: "Uncles Favorite Fries", ItemName: "Regular Fries", Price: 2000, Options: "Basic Fries", Kind: "item"},
		{ParentCategory: "Uncles Favorite Fries", ItemName: "Red Hot Fries", Price: 2500, Options: "Spicy", Kind: "item"},
		{ParentCategory: "Uncles Wing Thing", ItemName: "4pc Chilli Wings", Price: 5500, Options: "Spicy Wings", Kind: "item"},
		{ParentCategory: "Uncles Wing Thing", ItemName: "4 Crunch Craft Wings", Price: 5000, Options: "Crunchy Wings", Kind: "item"},
		{ParentCategory: "Uncles Loaded Fries", ItemName: "Regular Mince Meat Miracle", Price: 6000, Options: "Minced Meat", Kind: "item"},
		{ParentCategory: "Uncles Loaded Fries", ItemName: "Regular Beef Suya", Price: 6000, Options: "Beef suya", Kind: "item"},
		{ParentCategory: "Uncles Loaded Fries", ItemName: "Cheesy Beef Suya", Price: 7000, Options: "Cheesy Beef", Kind: "item"},
		{ParentCategory: "Uncles Loaded Fries", ItemName: "Cheesed Minced Meat Miracle", Price: 7000, Options: "Cheesy Minced Meat", Kind: "item"},
		{ParentCategory: "Uncles Deals", ItemName: "Regular Fries+Crunch Craft", Price: 6500, Options: "Fries and Crunch craft", Kind: "item"},
		{ParentCategory: "Uncles Deals", ItemName: "Regular Fries+Chilli Wings", Price: 7000, Options: "Fries and Spicy Wings", Kind: "item"},
		{ParentCategory: "Uncles Deals", ItemName: "Red Hot Fries+Chilli Wings", Price: 8000, Options: "spicy fries and spicy wings", Kind: "item"},
		{ParentCategory: "Uncles Deals", ItemName: "Red Hot Fries+Crunch Craft", Price: 7500, Options: "spicy fries and crunch craft", Kind: "item"},
		{ParentCategory: "Add Ons", ItemName: "Extra Cheese", Price: 1000, Options: "extra cheese on the food", Kind: "item"},
		{ParentCategory: "Add Ons", ItemName: "Extra Fries", Price: 1000, Options: "extra fries on the food", Kind: "item"},
	}
}
