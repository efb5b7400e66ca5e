package checkout

import (
	"context"
	"fmt"
	"log"
	"strings"

	"unclefries-order-backend/internal/catalog"
	"unclefries-order-backend/internal/channel"
	"unclefries-order-backend/internal/payment"
	"unclefries-order-backend/internal/store"
)

// SessionCreator is the slice of the payment gateway the orchestrator needs.
type SessionCreator interface {
	CreateSession(ctx context.Context, amountKobo int, email, callbackURL string) (payment.CheckoutSession, error)
}

// Orchestrator turns a finalized cart and address into a hosted checkout
// session plus customer and admin notifications. It works on a read-only
// snapshot of the session: the engine applies the resulting transition.
type Orchestrator struct {
	gateway     SessionCreator
	channel     channel.Sender
	orders      *store.OrderStore // nil when no database is configured
	admin       string
	callbackURL string
}

func NewOrchestrator(gateway SessionCreator, ch channel.Sender, orders *store.OrderStore, admin, callbackURL string) *Orchestrator {
	return &Orchestrator{
		gateway:     gateway,
		channel:     ch,
		orders:      orders,
		admin:       admin,
		callbackURL: callbackURL,
	}
}

var emailSanitizer = strings.NewReplacer("@", "_", ".", "_")

// CustomerEmail derives the gateway-facing email from the opaque sender id.
func CustomerEmail(userID string) string {
	return fmt.Sprintf("cust_%s@unclefries.com", emailSanitizer.Replace(userID))
}

// Checkout creates a payment session for the cart total and sends the
// payment link to the customer and an order summary to the admin. On error
// the customer gets a retry message and the caller keeps its state so the
// user can retry by re-sending the address; no retry happens here.
func (o *Orchestrator) Checkout(ctx context.Context, userID, address string, cart []catalog.MenuItem) error {
	if len(cart) == 0 {
		return fmt.Errorf("cart is empty")
	}
	total := 0
	names := make([]string, 0, len(cart))
	for _, it := range cart {
		total += it.Price
		names = append(names, it.ItemName)
	}

	session, err := o.gateway.CreateSession(ctx, total*payment.KoboPerNaira, CustomerEmail(userID), o.callbackURL)
	if err != nil {
		log.Printf("[checkout] payment session for %s failed: %v", userID, err)
		if sendErr := o.channel.Send(ctx, userID, "❌ Payment link failed, please try again later."); sendErr != nil {
			log.Printf("[checkout] retry message to %s failed: %v", userID, sendErr)
		}
		return err
	}

	msg := fmt.Sprintf("💰 Total %s\nPay here: %s", payment.FormatNaira(total), session.AuthorizationURL)
	if err := o.channel.Send(ctx, userID, msg); err != nil {
		log.Printf("[checkout] payment link to %s failed: %v", userID, err)
	}

	if o.admin != "" {
		summary := fmt.Sprintf("📦 New order from %s\nItems: %s\nTotal: %s\nAddress: %s",
			userID, strings.Join(names, ", "), payment.FormatNaira(total), address)
		if err := o.channel.Send(ctx, o.admin, summary); err != nil {
			log.Printf("[checkout] admin summary failed: %v", err)
		}
	}

	if o.orders != nil {
		if err := o.orders.SaveOrder(session.Reference, userID, strings.Join(names, ", "), total, address); err != nil {
			log.Printf("[checkout] order journal write failed: %v", err)
		}
	}
	return nil
}
