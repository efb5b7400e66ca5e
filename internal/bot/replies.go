package bot

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Replies holds every fixed message the engine sends. A YAML file can
// override any of them; the zero file (or no file) means the defaults.
type Replies struct {
	Welcome         string `yaml:"welcome"`
	Help            string `yaml:"help"`
	Cancelled       string `yaml:"cancelled"`
	InvalidCategory string `yaml:"invalid_category"`
	InvalidItem     string `yaml:"invalid_item"`
	AddressPrompt   string `yaml:"address_prompt"`
	Added           string `yaml:"added"` // fmt string, one %s for the item name
	CartEmpty       string `yaml:"cart_empty"`
	CartHeader      string `yaml:"cart_header"`
	MenuHeader      string `yaml:"menu_header"`
	MenuFooter      string `yaml:"menu_footer"`
	ItemsFooter     string `yaml:"items_footer"`
}

func defaultReplies() Replies {
	return Replies{
		Welcome:         "👋 Welcome to UncleFries!\nType *menu* to see our offerings.",
		Help:            "🤔 I didn't catch that.\nType *menu* to browse, *cart* to view your order, *checkout* to pay or *cancel* to start over.",
		Cancelled:       "❌ Order cancelled. Type *menu* to start again.",
		InvalidCategory: "❌ Invalid category. Reply with the number of a category from the list.",
		InvalidItem:     "❌ Invalid choice. Reply with the number of an item, or *back* for the main menu.",
		AddressPrompt:   "📍 Send me your delivery address:",
		Added:           "✅ Added *%s* to your cart.\nType *checkout* to order or pick another item.",
		CartEmpty:       "🛒 Your cart is empty. Type *menu* to browse.",
		CartHeader:      "🛒 *YOUR ORDER* 🛒\n\n",
		MenuHeader:      "🍟 *WELCOME TO UNCLE'S FRIES!* 🍗\n\n*Please choose a category:*\n\n",
		MenuFooter:      "📍 *Reply with the number of your choice*\n🛒 *Type 'cart' to view your order*\n❌ *Type 'cancel' to start over*",
		ItemsFooter:     "📍 *Reply with item number to add to cart*\n🔙 *Type 'back' to return to main menu*",
	}
}

// LoadReplies reads overrides from path when it is non-empty. Fields left
// blank in the file keep their defaults.
func LoadReplies(path string) (*Replies, error) {
	r := defaultReplies()
	if path == "" {
		return &r, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var override Replies
	if err := yaml.Unmarshal(b, &override); err != nil {
		return nil, err
	}
	merge(&r, override)
	return &r, nil
}

func merge(dst *Replies, src Replies) {
	set := func(d *string, s string) {
		if s != "" {
			*d = s
		}
	}
	set(&dst.Welcome, src.Welcome)
	set(&dst.Help, src.Help)
	set(&dst.Cancelled, src.Cancelled)
	set(&dst.InvalidCategory, src.InvalidCategory)
	set(&dst.InvalidItem, src.InvalidItem)
	set(&dst.AddressPrompt, src.AddressPrompt)
	set(&dst.Added, src.Added)
	set(&dst.CartEmpty, src.CartEmpty)
	set(&dst.CartHeader, src.CartHeader)
	set(&dst.MenuHeader, src.MenuHeader)
	set(&dst.MenuFooter, src.MenuFooter)
	set(&dst.ItemsFooter, src.ItemsFooter)
}
