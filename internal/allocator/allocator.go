// Package allocator picks machines and issues access PINs.
package allocator

import (
	"math/rand"
	"strings"
	"sync"
)

const (
	DefaultMachinesCount = 25
	DefaultPINDigits     = 5
)

type Config struct {
	MachinesCount int
	PINDigits     int
}

// Allocator draws machine ids from the fixed fleet range [1, MachinesCount].
// It does not inspect machine state.
type Allocator struct {
	cfg Config

	mu  sync.Mutex
	rng *rand.Rand
}

func New(cfg Config, src rand.Source) *Allocator {
	if cfg.MachinesCount <= 0 {
		cfg.MachinesCount = DefaultMachinesCount
	}
	if cfg.PINDigits <= 0 {
		cfg.PINDigits = DefaultPINDigits
	}

	return &Allocator{
		cfg: cfg,
		rng: rand.New(src),
	}
}

func (a *Allocator) FirstAvailableMachineID() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.rng.Intn(a.cfg.MachinesCount) + 1
}

// GeneratePIN returns PINDigits independent decimal digits; leading zeros are kept.
func (a *Allocator) GeneratePIN() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	var b strings.Builder
	b.Grow(a.cfg.PINDigits)
	for i := 0; i < a.cfg.PINDigits; i++ {
		b.WriteByte(byte('0' + a.rng.Intn(10)))
	}

	return b.String()
}
