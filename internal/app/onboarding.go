package app

import (
	"context"
	"fmt"

	"github.com/plantcare-app/plantcare/internal/prefs"
)

var introScreens = []struct {
	title    string
	subtitle string
}{
	{
		title:    "Welcome to Plant Care!",
		subtitle: "Keeping track of your plants has never been this easy.",
	},
	{
		title:    "Water on time",
		subtitle: "Set a watering interval per plant and see at a glance when each one was last watered.",
	},
	{
		title:    "Learn as you grow",
		subtitle: "Browse care tips on watering, light, soil, and common pests in the explore tab.",
	},
}

// introScreen shows one of the three sequential onboarding screens.
// The final screen records completion before branching on session presence,
// so onboarding shows at most once regardless of the auth outcome.
func (a *App) introScreen(ctx context.Context, step int) Route {
	s := introScreens[step-1]
	fmt.Fprintf(a.out, "\n%s\n%s\n", s.title, s.subtitle)

	if _, err := getSimpleText(a.reader, "Press Enter to continue", a.out); err != nil {
		return to(routeExit)
	}

	switch step {
	case 1:
		return to(routeIntro2)
	case 2:
		return to(routeIntro3)
	}
	return a.completeOnboarding(ctx)
}

func (a *App) completeOnboarding(ctx context.Context) Route {
	done, err := a.prefs.Get(ctx, prefs.KeyOnboardingCompleted)
	if err != nil {
		a.logger.Warn(ctx, "error reading onboarding flag", "error", err)
	}
	if done != "true" {
		if err := a.prefs.Set(ctx, prefs.KeyOnboardingCompleted, "true"); err != nil {
			a.logger.Error(ctx, "error saving onboarding flag", "error", err)
		}
	}

	if _, err := a.currentUser(ctx); err != nil {
		return to(routeLogin)
	}
	return to(routeTabs)
}
