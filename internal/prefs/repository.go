// Package prefs stores small device-local preferences, such as whether the
// onboarding screens were already completed, in a SQLite database inside the
// data directory.
package prefs

import "context"

// KeyOnboardingCompleted marks the onboarding flow as finished. Set exactly
// once, when the last onboarding screen is acknowledged; read at startup.
const KeyOnboardingCompleted = "onboardingCompleted"

// Repository is a string key-value store. Get returns "" (and no error) for
// an absent key; Set upserts.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
