package bot

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"unclefries-order-backend/internal/catalog"
	"unclefries-order-backend/internal/channel"
	"unclefries-order-backend/internal/store"
)

// Checkouter is the slice of the checkout orchestrator the engine calls.
type Checkouter interface {
	Checkout(ctx context.Context, userID, address string, cart []catalog.MenuItem) error
}

// Engine is the per-user conversation state machine. It is the only
// component that mutates sessions; each message holds the session lock for
// the whole transition, so one user's messages are handled strictly in
// order while different users proceed concurrently.
type Engine struct {
	channel  channel.Sender
	catalog  catalog.Source
	sessions *store.SessionRegistry
	checkout Checkouter
	replies  *Replies
	assist   *Assistant // nil disables the LLM-phrased fallback
}

func New(ch channel.Sender, src catalog.Source, sessions *store.SessionRegistry, co Checkouter, replies *Replies, assist *Assistant) *Engine {
	return &Engine{
		channel:  ch,
		catalog:  src,
		sessions: sessions,
		checkout: co,
		replies:  replies,
		assist:   assist,
	}
}

// HandleMessage runs one inbound message through the state machine.
func (e *Engine) HandleMessage(ctx context.Context, from, text string) {
	sess, created := e.sessions.GetOrCreate(from)
	if created {
		e.send(ctx, from, e.replies.Welcome)
		return
	}
	sess.Lock()
	defer sess.Unlock()

	cmd := strings.ToLower(strings.TrimSpace(text))

	// Commands take priority over step-specific parsing.
	switch cmd {
	case "cancel":
		sess.Reset()
		e.send(ctx, from, e.replies.Cancelled)
		return
	case "cart":
		e.send(ctx, from, renderCart(e.replies, sess.Cart))
		return
	case "menu", "hi":
		cats := e.catalog.ListCategories(ctx)
		sess.Categories = cats
		sess.CurrentCategory = ""
		sess.CurrentItems = nil
		sess.Step = store.StepCategorySelection
		e.send(ctx, from, RenderMainMenu(e.replies, cats))
		return
	case "checkout":
		if len(sess.Cart) > 0 {
			sess.Step = store.StepAddress
			e.send(ctx, from, e.replies.AddressPrompt)
			return
		}
	}

	// Checkout with an empty cart is deliberately unmatched, not an error:
	// it gets the help fallback and no transition.
	if cmd == "checkout" {
		e.fallback(ctx, from, text)
		return
	}

	switch sess.Step {
	case store.StepCategorySelection:
		if n, ok := parseChoice(cmd); ok && n >= 1 && n <= len(sess.Categories) {
			cat := sess.Categories[n-1]
			items := e.catalog.ListItems(ctx, cat.Name)
			sess.CurrentCategory = cat.Name
			sess.CurrentItems = items
			sess.Step = store.StepItemSelection
			e.send(ctx, from, renderCategoryMenu(e.replies, cat.Name, items))
			return
		}
		e.send(ctx, from, e.replies.InvalidCategory)
		return
	case store.StepItemSelection:
		if cmd == "back" {
			// Re-render the cached category list; item-level data is not
			// re-queried on the way back.
			sess.Step = store.StepCategorySelection
			e.send(ctx, from, RenderMainMenu(e.replies, sess.Categories))
			return
		}
		if n, ok := parseChoice(cmd); ok && n >= 1 && n <= len(sess.CurrentItems) {
			item := sess.CurrentItems[n-1]
			sess.AddToCart(item)
			e.send(ctx, from, fmt.Sprintf(e.replies.Added, item.ItemName))
			return
		}
		e.send(ctx, from, e.replies.InvalidItem)
		return
	case store.StepAddress:
		sess.Address = strings.TrimSpace(text)
		cart := append([]catalog.MenuItem(nil), sess.Cart...)
		if err := e.checkout.Checkout(ctx, from, sess.Address, cart); err != nil {
			// Orchestrator already told the customer to retry; cart and
			// address stay so re-sending the address retries.
			return
		}
		sess.Cart = nil
		sess.Step = store.StepPaid
		return
	}

	e.fallback(ctx, from, text)
}

// fallback answers anything unmatched without touching state.
func (e *Engine) fallback(ctx context.Context, from, text string) {
	if e.assist != nil {
		if reply, err := e.assist.HelpReply(ctx, text); err == nil && reply != "" {
			e.send(ctx, from, reply)
			return
		} else if err != nil {
			log.Printf("[bot] assist fallback failed: %v", err)
		}
	}
	e.send(ctx, from, e.replies.Help)
}

func (e *Engine) send(ctx context.Context, recipient, text string) {
	if err := e.channel.Send(ctx, recipient, text); err != nil {
		log.Printf("[bot] send to %s failed: %v", recipient, err)
	}
}

// parseChoice parses a strict base-10 selection; anything with residual
// characters is an invalid choice, never a crash.
func parseChoice(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
