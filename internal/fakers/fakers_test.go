package fakers

import (
	"math"
	"strings"
	"sync"
	"testing"
)

func TestFake_Email_Unique(t *testing.T) {
	f := New(42)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		email := f.Email()
		if !strings.Contains(email, "@") {
			t.Fatalf("Email() = %q, missing @", email)
		}
		if seen[email] {
			t.Fatalf("Email() returned duplicate %q", email)
		}
		seen[email] = true
	}
}

func TestFake_Amount_Range(t *testing.T) {
	f := New(7)

	for i := 0; i < 1000; i++ {
		amount := f.Amount()
		if amount < MinAmount || amount > MaxAmount {
			t.Fatalf("Amount() = %v, want within [%v, %v]", amount, MinAmount, MaxAmount)
		}
		if cents := amount * 100; math.Abs(cents-math.Round(cents)) > 1e-6 {
			t.Fatalf("Amount() = %v, not rounded to cents", amount)
		}
	}
}

func TestFake_Category_Known(t *testing.T) {
	f := New(1)

	known := make(map[string]bool, len(Categories))
	for _, c := range Categories {
		known[c] = true
	}

	for i := 0; i < 100; i++ {
		if c := f.Category(); !known[c] {
			t.Fatalf("Category() = %q, not in Categories", c)
		}
	}
}

func TestFake_OperationStatus_Valid(t *testing.T) {
	f := New(3)

	for i := 0; i < 100; i++ {
		if s := f.OperationStatus(); !s.IsValid() {
			t.Fatalf("OperationStatus() = %q, not valid", s)
		}
	}
}

func TestFake_ConcurrentUse(t *testing.T) {
	f := New(0)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = f.Email()
				_ = f.PhoneNumber()
				_ = f.Amount()
			}
		}()
	}
	wg.Wait()
}
