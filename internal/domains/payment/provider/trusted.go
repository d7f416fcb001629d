package provider

import "context"

// trusted accepts the submitted reference as proof of payment. Used for providers whose
// callbacks are authenticated before they reach the ledger.
type trusted struct {
	name string
}

func NewTrusted(name string) Provider {
	return trusted{name: name}
}

func (t trusted) Name() string {
	return t.name
}

func (t trusted) Verify(_ context.Context, reference string) (Verification, error) {
	return Verification{Paid: true, Reference: reference}, nil
}
