package identity

import "context"

// UnlockGate models the device-local unlock capability (biometrics on the
// client). The server never branches on platform flags; the capability is
// injected as one of the two variants below and consulted after the PIN has
// already verified.
type UnlockGate interface {
	// Unlock reports whether the device-local gate approves the attempt.
	Unlock(ctx context.Context, username string) error
}

// GateUnavailable is the server-side default: no device gate exists, every
// attempt passes.
type GateUnavailable struct{}

func (GateUnavailable) Unlock(context.Context, string) error { return nil }

// GateAvailable wraps an external pass/fail check.
type GateAvailable struct {
	Check func(ctx context.Context, username string) bool
}

func (g GateAvailable) Unlock(ctx context.Context, username string) error {
	if g.Check != nil && !g.Check(ctx, username) {
		return ErrUnlockDenied
	}
	return nil
}
