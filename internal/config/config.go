package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	AllowedOrigin string
	// Catalog (Google Sheets values API)
	SheetID         string
	SheetAPIKey     string
	SheetBaseURL    string
	CategoriesSheet string
	ItemsSheet      string
	// Payment gateway (Paystack)
	PaystackSecret  string
	PaystackBaseURL string
	CallbackBaseURL string
	// Messaging gateway
	GatewayURL   string
	GatewayToken string
	// Admin recipient for order/payment notifications (optional)
	AdminRecipient string
	// Database (optional order journal)
	DatabaseURL string
	// Optional LLM-phrased help fallback
	OpenAIAPIKey string
	Model        string
	// Reply templates (optional overrides)
	RepliesFile string
}

func Load() Config {
	_ = godotenv.Load()
	cfg := Config{
		Port:            getEnvDefault("PORT", "8080"),
		AllowedOrigin:   getEnvDefault("ALLOWED_ORIGIN", "*"),
		SheetID:         os.Getenv("SHEET_ID"),
		SheetAPIKey:     os.Getenv("SHEET_API_KEY"),
		SheetBaseURL:    getEnvDefault("SHEET_BASE_URL", "https://sheets.googleapis.com/v4/spreadsheets"),
		CategoriesSheet: getEnvDefault("CATEGORIES_SHEET", "Sheet1"),
		ItemsSheet:      getEnvDefault("ITEMS_SHEET", "Sheet2"),
		PaystackSecret:  os.Getenv("PAYSTACK_SECRET"),
		PaystackBaseURL: getEnvDefault("PAYSTACK_BASE_URL", "https://api.paystack.co"),
		CallbackBaseURL: getEnvDefault("CALLBACK_BASE_URL", "http://localhost:8080"),
		GatewayURL:      os.Getenv("WA_GATEWAY_URL"),
		GatewayToken:    os.Getenv("WA_GATEWAY_TOKEN"),
		AdminRecipient:  os.Getenv("ADMIN_RECIPIENT"),
		DatabaseURL:     os.Getenv("DB_URL"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		Model:           getEnvDefault("OPENAI_MODEL", "gpt-4o-mini"),
		RepliesFile:     os.Getenv("REPLIES_FILE"),
	}
	if cfg.SheetID == "" {
		log.Println("warning: SHEET_ID is not set; catalog will serve fallback data only")
	}
	if cfg.PaystackSecret == "" {
		log.Println("warning: PAYSTACK_SECRET is not set; checkout and webhook verification will fail until provided")
	}
	return cfg
}

func getEnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
