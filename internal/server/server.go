package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"unclefries-order-backend/internal/bot"
	"unclefries-order-backend/internal/catalog"
	"unclefries-order-backend/internal/channel"
	"unclefries-order-backend/internal/checkout"
	"unclefries-order-backend/internal/config"
	"unclefries-order-backend/internal/db"
	"unclefries-order-backend/internal/payment"
	"unclefries-order-backend/internal/store"
	"unclefries-order-backend/internal/types"
)

type Server struct {
	router     *chi.Mux
	cfg        config.Config
	engine     *bot.Engine
	catalog    catalog.Source
	channel    channel.Sender
	replies    *bot.Replies
	database   *db.DB
	orderStore *store.OrderStore
}

func NewServer(cfg config.Config) (*Server, error) {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{cfg.AllowedOrigin},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Paystack-Signature"},
		MaxAge:         300,
	}))

	replies, err := bot.LoadReplies(cfg.RepliesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load replies: %w", err)
	}

	// Initialize database if DB_URL is provided
	var database *db.DB
	var orderStore *store.OrderStore
	if cfg.DatabaseURL != "" {
		database, err = db.New(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		log.Println("database connection established")
		orderStore = store.NewOrderStore(database)
	} else {
		log.Println("warning: DB_URL not provided, orders will not be journaled")
	}

	ch := channel.NewHTTPGateway(cfg.GatewayURL, cfg.GatewayToken)
	source := catalog.NewSheetsClient(cfg.SheetBaseURL, cfg.SheetID, cfg.SheetAPIKey, cfg.CategoriesSheet, cfg.ItemsSheet)
	gateway := payment.NewClient(cfg.PaystackBaseURL, cfg.PaystackSecret)
	orchestrator := checkout.NewOrchestrator(gateway, ch, orderStore, cfg.AdminRecipient,
		strings.TrimRight(cfg.CallbackBaseURL, "/")+"/api/paystack/webhook")
	assist := bot.NewAssistant(cfg.OpenAIAPIKey, cfg.Model)
	engine := bot.New(ch, source, store.NewSessionRegistry(), orchestrator, replies, assist)

	s := &Server{
		router:     r,
		cfg:        cfg,
		engine:     engine,
		catalog:    source,
		channel:    ch,
		replies:    replies,
		database:   database,
		orderStore: orderStore,
	}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.router.Get("/api/health", s.handleHealth)
	s.router.Post("/api/messages/inbound", s.handleInbound)
	s.router.Post("/api/paystack/webhook", s.handlePaystackWebhook)
	s.router.Get("/api/menu/preview", s.handleMenuPreview)
}

func (s *Server) Router() http.Handler { return s.router }

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{"status": "ok"}
	if s.database != nil {
		if err := s.database.HealthCheck(); err != nil {
			status["database"] = "unreachable"
		} else {
			status["database"] = "ok"
		}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(status)
}

// handleInbound receives one user message from the messaging provider and
// runs it through the conversation engine.
func (s *Server) handleInbound(w http.ResponseWriter, r *http.Request) {
	var msg types.InboundMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(msg.From) == "" {
		s.writeError(w, http.StatusBadRequest, "from is required")
		return
	}
	s.engine.HandleMessage(r.Context(), msg.From, msg.Text)
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(types.AckResponse{Status: "received"})
}

// handlePaystackWebhook verifies the event signature over the raw body and
// notifies the admin on charge.success. Invalid events are acknowledged and
// dropped so the gateway does not re-deliver them.
func (s *Server) handlePaystackWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusOK)
		return
	}
	signature := r.Header.Get("X-Paystack-Signature")
	if !payment.VerifySignature(s.cfg.PaystackSecret, body, signature) {
		log.Println("[webhook] signature mismatch, event ignored")
		w.WriteHeader(http.StatusOK)
		return
	}
	ev, err := payment.ParseEvent(body)
	if err != nil {
		log.Printf("[webhook] bad event body: %v", err)
		w.WriteHeader(http.StatusOK)
		return
	}
	if ev.Event == payment.EventChargeSuccess {
		naira := int(ev.Data.Amount / payment.KoboPerNaira)
		log.Printf("[webhook] payment confirmed: %s from %s", payment.FormatNaira(naira), ev.Data.Customer.Email)
		if s.orderStore != nil {
			if err := s.orderStore.MarkPaid(ev.Data.Reference, ev.Data.Amount); err != nil {
				log.Printf("[webhook] order journal update failed: %v", err)
			}
		}
		if s.cfg.AdminRecipient != "" {
			note := fmt.Sprintf("🚨 New Order Paid!\nAmount: %s\nCustomer: %s",
				payment.FormatNaira(naira), ev.Data.Customer.Email)
			if err := s.channel.Send(r.Context(), s.cfg.AdminRecipient, note); err != nil {
				log.Printf("[webhook] admin notification failed: %v", err)
			}
		}
	}
	w.WriteHeader(http.StatusOK)
}

// handleMenuPreview renders the live main menu, useful for smoke checks.
func (s *Server) handleMenuPreview(w http.ResponseWriter, r *http.Request) {
	cats := s.catalog.ListCategories(r.Context())
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(types.MenuPreview{MenuText: bot.RenderMainMenu(s.replies, cats)})
}

func (s *Server) writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(types.ErrorResponse{Error: msg})
}
