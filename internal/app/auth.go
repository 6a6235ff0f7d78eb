package app

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/plantcare-app/plantcare/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// loginScreen prompts for credentials and signs in. A failed sign-in shows
// the backend's message verbatim and stays on the screen.
func (a *App) loginScreen(ctx context.Context) Route {
	fmt.Fprintln(a.out, "\n== Sign in ==")

	email, err := getSimpleText(a.reader, "Enter email ('register' to create an account, 'exit' to quit)", a.out)
	if err != nil {
		return to(routeExit)
	}
	switch email {
	case "register":
		return to(routeRegister)
	case "exit", "quit":
		return to(routeExit)
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		a.logger.Error(ctx, "error reading password", "error", err)
		return to(routeLogin)
	}
	defer common.WipeByteArray(password)

	cctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	err = a.gateway.SignIn(cctx, email, string(password))
	cancel()
	if err != nil {
		fmt.Fprintln(a.out, common.FormatUserMessage(err))
		a.logger.Warn(ctx, "sign-in failed", "email", email)
		return to(routeLogin)
	}

	return to(routeTabs)
}

// registerScreen collects name, email, and a repeated password, validates
// locally, and creates the account. Local validation failures never reach
// the backend.
func (a *App) registerScreen(ctx context.Context) Route {
	fmt.Fprintln(a.out, "\n== Create account ==")

	name, err := getSimpleText(a.reader, "Enter your name ('back' to return)", a.out)
	if err != nil {
		return to(routeExit)
	}
	if name == "back" {
		return to(routeLogin)
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return to(routeExit)
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		a.logger.Error(ctx, "error reading password", "error", err)
		return to(routeRegister)
	}
	defer common.WipeByteArray(password)

	repeat, err := getPassword("Repeat password", a.out)
	if err != nil {
		a.logger.Error(ctx, "error reading password", "error", err)
		return to(routeRegister)
	}
	defer common.WipeByteArray(repeat)

	if err := validateRegistration(name, email, password, repeat); err != nil {
		fmt.Fprintln(a.out, common.FormatUserMessage(err))
		return to(routeRegister)
	}

	cctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	err = a.gateway.SignUp(cctx, email, string(password), name)
	cancel()
	if err != nil {
		fmt.Fprintln(a.out, common.FormatUserMessage(err))
		return to(routeRegister)
	}

	fmt.Fprintln(a.out, "Account created. Check your email to confirm your address, then sign in.")
	return to(routeLogin)
}

func validateRegistration(name, email string, password, repeat []byte) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" ||
		len(password) == 0 || len(repeat) == 0 {
		return common.NewValidationError("all fields are required")
	}
	if !bytes.Equal(password, repeat) {
		return common.NewValidationError("passwords do not match")
	}
	return nil
}
