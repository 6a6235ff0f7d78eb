// Package app provides the interactive Plant Care terminal client.
//
// It wires configuration, the local preferences database, the backend
// session gateway and plant store, and a navigation loop over named
// routes. Typical flow: show onboarding on first launch, prompt for
// credentials, then drive the tabbed plant list until the user exits.
//
// Key features:
//   - Sign in / Sign up / Sign out
//   - List, add, edit, and delete plants
//   - Plant detail view with watering info
//   - Static care-tip content (explore / tip detail)
//   - One-time onboarding, replayable from the profile screen
//
// The navigation loop is started via App.Run(ctx), which blocks until the
// user exits. See App, Route, and dispatch for details.
package app
