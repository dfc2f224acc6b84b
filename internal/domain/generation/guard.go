package generation

import "sync"

// creditGuard serializes the balance pre-check and the final deduction
// per account. The two are separate short critical sections around a
// long provider-call phase; without per-account serialization, N
// concurrent requests from one account could each pass the pre-check
// against the same stored balance and deduct more than the account can
// afford. The balance read happens inside the critical section, so a
// request can never admit itself against a snapshot that a competitor's
// deduction has already invalidated.
type creditGuard struct {
	mu    sync.Mutex
	gates map[string]*accountGate
}

// accountGate is the per-account critical section. reserved tracks the
// cost of requests that passed the pre-check but have not settled yet;
// held counts callers currently inside a guard method, so an idle gate
// can be dropped from the map.
type accountGate struct {
	mu       sync.Mutex
	reserved float64
	held     int
}

func newCreditGuard() *creditGuard {
	return &creditGuard{gates: make(map[string]*accountGate)}
}

func (g *creditGuard) acquire(accountID string) *accountGate {
	g.mu.Lock()
	defer g.mu.Unlock()

	gate := g.gates[accountID]
	if gate == nil {
		gate = &accountGate{}
		g.gates[accountID] = gate
	}
	gate.held++
	return gate
}

// put must not be called while holding gate.mu.
func (g *creditGuard) put(accountID string, gate *accountGate) {
	g.mu.Lock()
	defer g.mu.Unlock()

	gate.held--
	gate.mu.Lock()
	idle := gate.held == 0 && gate.reserved == 0
	gate.mu.Unlock()
	if idle {
		delete(g.gates, accountID)
	}
}

// reserve reads the balance via the supplied callback and registers cost
// against the account, both inside the account's critical section. It
// returns the balance it read and whether the reservation was admitted.
// Settled deductions are always visible to the callback here because
// settle applies them under the same lock.
func (g *creditGuard) reserve(accountID string, cost float64, balance func() (float64, error)) (float64, bool, error) {
	gate := g.acquire(accountID)
	defer g.put(accountID, gate)

	gate.mu.Lock()
	defer gate.mu.Unlock()

	current, err := balance()
	if err != nil {
		return 0, false, err
	}
	if current-gate.reserved < cost {
		return current, false, nil
	}
	gate.reserved += cost
	return current, true, nil
}

// release drops a reservation after a failed attempt.
func (g *creditGuard) release(accountID string, cost float64) {
	gate := g.acquire(accountID)
	defer g.put(accountID, gate)

	gate.mu.Lock()
	defer gate.mu.Unlock()

	gate.reserved -= cost
	if gate.reserved < 0 {
		gate.reserved = 0
	}
}

// settle applies the deduction and drops the reservation as one step, so
// a concurrent balance read can never observe the deduction applied
// while the reservation still counts, or the reservation gone before the
// deduction landed. The reservation is consumed whether or not the
// deduction succeeds; a failed deduction fails the request.
func (g *creditGuard) settle(accountID string, cost float64, deduct func() error) error {
	gate := g.acquire(accountID)
	defer g.put(accountID, gate)

	gate.mu.Lock()
	defer gate.mu.Unlock()

	err := deduct()
	gate.reserved -= cost
	if gate.reserved < 0 {
		gate.reserved = 0
	}
	return err
}
