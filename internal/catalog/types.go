package catalog

// Category is one row of the category sheet.
type Category struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Kind        string `json:"kind"`
}

// MenuItem is one row of the item sheet. Price is in whole naira;
// it is parsed from the sheet cell once, at fetch time.
type MenuItem struct {
	ParentCategory string `json:"parentCategory"`
	ItemName       string `json:"itemName"`
	Price          int    `json:"price"`
	Options        string `json:"options"`
	Kind           string `json:"kind"`
}
