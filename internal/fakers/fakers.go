// Package fakers generates random but well-formed request data.
package fakers

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/gatewayperf/gatewayperf/internal/model"
)

// Amount bounds for generated operations.
const (
	MinAmount = 1.0
	MaxAmount = 1000.0
)

// Categories are the purchase categories the gateway accepts.
var Categories = []string{
	"gas",
	"taxi",
	"tolls",
	"water",
	"beauty",
	"mobile",
	"travel",
	"parking",
	"catalog",
	"internet",
	"satellite",
	"education",
	"government",
	"healthcare",
	"restaurants",
	"electricity",
	"supermarkets",
}

// Fake produces random values. It is safe for concurrent use.
type Fake struct {
	mu    sync.Mutex
	faker *gofakeit.Faker
	now   func() time.Time
}

// New returns a Fake seeded with seed. A zero seed picks a random one.
func New(seed uint64) *Fake {
	return &Fake{
		faker: gofakeit.New(seed),
		now:   time.Now,
	}
}

// Default is the package-level generator used by request builders.
var Default = New(0)

// Email returns an address prefixed with the current time so repeated runs
// never collide on the gateway's unique email constraint.
func (f *Fake) Email() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fmt.Sprintf("%d.%s", f.now().UnixNano(), f.faker.Email())
}

// FirstName returns a random first name.
func (f *Fake) FirstName() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.faker.FirstName()
}

// LastName returns a random last name.
func (f *Fake) LastName() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.faker.LastName()
}

// MiddleName returns a random middle name.
func (f *Fake) MiddleName() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.faker.FirstName()
}

// PhoneNumber returns a random phone number in international form.
func (f *Fake) PhoneNumber() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return "+1" + f.faker.Phone()
}

// Amount returns a money amount in [MinAmount, MaxAmount] rounded to cents.
func (f *Fake) Amount() float64 {
	return f.Float(MinAmount, MaxAmount)
}

// Float returns a value in [min, max] rounded to two decimal places.
func (f *Fake) Float(min, max float64) float64 {
	f.mu.Lock()
	v := f.faker.Float64Range(min, max)
	f.mu.Unlock()
	return math.Round(v*100) / 100
}

// Integer returns a value in [min, max].
func (f *Fake) Integer(min, max int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.faker.IntRange(min, max)
}

// Category returns one of Categories.
func (f *Fake) Category() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.faker.RandomString(Categories)
}

// OperationStatus returns a random operation status.
func (f *Fake) OperationStatus() model.OperationStatus {
	return model.OperationStatuses[f.Integer(0, len(model.OperationStatuses)-1)]
}
