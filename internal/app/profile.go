package app

import (
	"context"
	"fmt"

	"github.com/plantcare-app/plantcare/internal/common"
)

// profileScreen shows the signed-in user and offers replaying onboarding
// and signing out.
func (a *App) profileScreen(ctx context.Context) Route {
	user, err := a.currentUser(ctx)
	if err != nil {
		fmt.Fprintln(a.out, common.FormatUserMessage(err))
		return to(routeLogin)
	}

	name := user.Name
	if name == "" {
		name = "User"
	}

	fmt.Fprintln(a.out, "\n== Profile ==")
	fmt.Fprintln(a.out, name)
	fmt.Fprintln(a.out, user.Email)
	fmt.Fprintln(a.out, "Welcome to Plant Care! Add your plants, keep their watering on schedule, and stay close to nature.")

	for {
		choice, err := getSimpleText(a.reader, "Commands: onboarding, signout, back", a.out)
		if err != nil {
			return to(routeExit)
		}
		switch choice {
		case "onboarding":
			return to(routeIntro1)
		case "signout", "logout":
			cctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
			err := a.gateway.SignOut(cctx)
			cancel()
			if err != nil {
				fmt.Fprintln(a.out, common.FormatUserMessage(err))
				continue
			}
			return to(routeLogin)
		case "b", "back", "":
			return to(routeTabs)
		case "exit", "quit":
			return to(routeExit)
		default:
			fmt.Fprintln(a.out, "Unknown command:", choice)
		}
	}
}
