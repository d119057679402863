package services

import (
	"crypto/subtle"
	"strings"
	"sync"

	"github.com/dmitrijs2005/medianest/internal/common"
)

// DeletionGuard requires a PIN before a pending deletion is released.
//
// The PIN is a single static value held by the client, so anyone with the
// client configuration knows it. It is a confirmation step, not access
// control; real protection has to live in the store.
type DeletionGuard struct {
	pin string

	mu      sync.Mutex
	target  string
	pending bool
}

// NewDeletionGuard returns a guard for pin. An empty pin never matches, which
// disables deletion.
func NewDeletionGuard(pin string) *DeletionGuard {
	return &DeletionGuard{pin: strings.TrimSpace(pin)}
}

// RequestDeletion marks fileID as the pending deletion, replacing any
// previous one.
func (g *DeletionGuard) RequestDeletion(fileID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.target = fileID
	g.pending = true
}

// Pending reports the id waiting for confirmation.
func (g *DeletionGuard) Pending() (string, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.target, g.pending
}

// Cancel drops the pending deletion.
func (g *DeletionGuard) Cancel() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.target = ""
	g.pending = false
}

// VerifyPin compares the trimmed candidate with the configured PIN.
func (g *DeletionGuard) VerifyPin(candidate string) bool {
	if g.pin == "" {
		return false
	}
	c := strings.TrimSpace(candidate)
	return subtle.ConstantTimeCompare([]byte(c), []byte(g.pin)) == 1
}

// Confirm checks candidate. On a match it returns the pending id and clears
// it, authorizing exactly one deletion. On a mismatch it returns
// common.ErrGuardRejection and keeps the pending id so the user can retry.
func (g *DeletionGuard) Confirm(candidate string) (string, error) {
	if !g.VerifyPin(candidate) {
		return "", common.ErrGuardRejection
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.pending {
		return "", common.ErrNoPendingDeletion
	}
	target := g.target
	g.target = ""
	g.pending = false
	return target, nil
}
