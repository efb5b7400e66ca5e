package store

import (
	"sync"
	"testing"

	"unclefries-order-backend/internal/catalog"
)

func TestGetOrCreateIsLazyAndOnce(t *testing.T) {
	r := NewSessionRegistry()

	s1, created := r.GetOrCreate("u1")
	if !created {
		t.Fatal("first contact should create the session")
	}
	if s1.Step != StepInit {
		t.Fatalf("new session step = %s, want init", s1.Step)
	}

	s2, created := r.GetOrCreate("u1")
	if created {
		t.Fatal("second contact must not re-create the session")
	}
	if s1 != s2 {
		t.Fatal("expected the same session instance")
	}
	if r.Len() != 1 {
		t.Fatalf("registry len = %d, want 1", r.Len())
	}
}

func TestGetOrCreateConcurrentSingleSession(t *testing.T) {
	r := NewSessionRegistry()
	var wg sync.WaitGroup
	var mu sync.Mutex
	createdCount := 0

	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, created := r.GetOrCreate("u1")
			if created {
				mu.Lock()
				createdCount++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if createdCount != 1 {
		t.Fatalf("session created %d times, want exactly once", createdCount)
	}
	if r.Len() != 1 {
		t.Fatalf("registry len = %d, want 1", r.Len())
	}
}

func TestCartTotalAndOrder(t *testing.T) {
	s := &Session{UserID: "u1", Step: StepInit}
	if s.CartTotal() != 0 {
		t.Fatalf("empty cart total = %d, want 0", s.CartTotal())
	}

	s.AddToCart(catalog.MenuItem{ItemName: "Regular Fries", Price: 2000})
	s.AddToCart(catalog.MenuItem{ItemName: "Chilli Wings", Price: 5500})
	s.AddToCart(catalog.MenuItem{ItemName: "Extra Cheese", Price: 1000})

	if len(s.Cart) != 3 {
		t.Fatalf("cart size = %d, want 3", len(s.Cart))
	}
	if s.Cart[0].ItemName != "Regular Fries" || s.Cart[2].ItemName != "Extra Cheese" {
		t.Fatalf("cart order not preserved: %+v", s.Cart)
	}
	if s.CartTotal() != 8500 {
		t.Fatalf("cart total = %d, want 8500", s.CartTotal())
	}
}

func TestResetClearsEverything(t *testing.T) {
	s := &Session{
		UserID:          "u1",
		Step:            StepAddress,
		Cart:            []catalog.MenuItem{{ItemName: "Regular Fries", Price: 2000}},
		Categories:      []catalog.Category{{Name: "Fries"}},
		CurrentCategory: "Fries",
		CurrentItems:    []catalog.MenuItem{{ItemName: "Regular Fries"}},
		Address:         "123 Main St",
	}
	s.Reset()

	if s.Step != StepInit {
		t.Fatalf("step after reset = %s, want init", s.Step)
	}
	if len(s.Cart) != 0 || s.Address != "" || s.CurrentCategory != "" {
		t.Fatalf("reset left state behind: %+v", s)
	}
	if s.Categories != nil || s.CurrentItems != nil {
		t.Fatal("reset should drop cached lists")
	}
}
