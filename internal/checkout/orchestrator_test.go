package checkout

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"unclefries-order-backend/internal/catalog"
	"unclefries-order-backend/internal/payment"
)

type sentMessage struct {
	To   string
	Text string
}

type fakeSender struct {
	sent []sentMessage
}

func (f *fakeSender) Send(_ context.Context, recipient, text string) error {
	f.sent = append(f.sent, sentMessage{To: recipient, Text: text})
	return nil
}

type fakeGateway struct {
	gotAmount int
	gotEmail  string
	fail      bool
	calls     int
}

func (f *fakeGateway) CreateSession(_ context.Context, amountKobo int, email, callbackURL string) (payment.CheckoutSession, error) {
	f.calls++
	f.gotAmount = amountKobo
	f.gotEmail = email
	if f.fail {
		return payment.CheckoutSession{}, fmt.Errorf("gateway unreachable")
	}
	return payment.CheckoutSession{
		AuthorizationURL: "https://checkout.paystack.com/abc",
		Reference:        "ref_1",
	}, nil
}

func testCart() []catalog.MenuItem {
	return []catalog.MenuItem{
		{ItemName: "Regular Fries", Price: 2000},
		{ItemName: "4pc Chilli Wings", Price: 5500},
	}
}

func TestCheckoutSuccessNotifiesCustomerAndAdmin(t *testing.T) {
	sender := &fakeSender{}
	gw := &fakeGateway{}
	o := NewOrchestrator(gw, sender, nil, "admin@wa", "https://example.com/api/paystack/webhook")

	err := o.Checkout(context.Background(), "234user", "123 Main St", testCart())
	if err != nil {
		t.Fatalf("Checkout returned error: %v", err)
	}

	// 7500 naira cart converted once to kobo.
	if gw.gotAmount != 7500*payment.KoboPerNaira {
		t.Fatalf("gateway amount = %d, want %d", gw.gotAmount, 7500*payment.KoboPerNaira)
	}
	if gw.gotEmail != "cust_234user@unclefries.com" {
		t.Fatalf("gateway email = %q", gw.gotEmail)
	}

	if len(sender.sent) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(sender.sent))
	}
	link := sender.sent[0]
	if link.To != "234user" || !strings.Contains(link.Text, "https://checkout.paystack.com/abc") {
		t.Fatalf("payment link message wrong: %+v", link)
	}
	if !strings.Contains(link.Text, "₦7,500") {
		t.Fatalf("payment link message missing total: %q", link.Text)
	}
	admin := sender.sent[1]
	if admin.To != "admin@wa" {
		t.Fatalf("admin summary sent to %q", admin.To)
	}
	for _, want := range []string{"Regular Fries", "4pc Chilli Wings", "₦7,500", "123 Main St", "234user"} {
		if !strings.Contains(admin.Text, want) {
			t.Fatalf("admin summary missing %q: %q", want, admin.Text)
		}
	}
}

func TestCheckoutWithoutAdminSkipsSummary(t *testing.T) {
	sender := &fakeSender{}
	o := NewOrchestrator(&fakeGateway{}, sender, nil, "", "https://cb")

	if err := o.Checkout(context.Background(), "234user", "123 Main St", testCart()); err != nil {
		t.Fatalf("Checkout returned error: %v", err)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("expected only the customer message, got %d", len(sender.sent))
	}
	if sender.sent[0].To != "234user" {
		t.Fatalf("message went to %q", sender.sent[0].To)
	}
}

func TestCheckoutGatewayFailureSendsRetry(t *testing.T) {
	sender := &fakeSender{}
	gw := &fakeGateway{fail: true}
	o := NewOrchestrator(gw, sender, nil, "admin@wa", "https://cb")

	err := o.Checkout(context.Background(), "234user", "123 Main St", testCart())
	if err == nil {
		t.Fatal("expected error on gateway failure")
	}
	if len(sender.sent) != 1 {
		t.Fatalf("expected 1 retry message, got %d", len(sender.sent))
	}
	if sender.sent[0].To != "234user" || !strings.Contains(sender.sent[0].Text, "try again") {
		t.Fatalf("retry message wrong: %+v", sender.sent[0])
	}
	if gw.calls != 1 {
		t.Fatalf("gateway called %d times, want 1 (no internal retry)", gw.calls)
	}
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	sender := &fakeSender{}
	gw := &fakeGateway{}
	o := NewOrchestrator(gw, sender, nil, "admin@wa", "https://cb")

	if err := o.Checkout(context.Background(), "234user", "123 Main St", nil); err == nil {
		t.Fatal("expected error for empty cart")
	}
	if gw.calls != 0 {
		t.Fatal("gateway must not be called for an empty cart")
	}
	if len(sender.sent) != 0 {
		t.Fatal("no messages expected for an empty cart")
	}
}

func TestCustomerEmailSanitizesSender(t *testing.T) {
	got := CustomerEmail("234user@s.whatsapp.net")
	if got != "cust_234user_s_whatsapp_net@unclefries.com" {
		t.Fatalf("CustomerEmail = %q", got)
	}
}
