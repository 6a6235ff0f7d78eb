package app

import (
	"context"
	"fmt"
	"strconv"

	"github.com/plantcare-app/plantcare/internal/common"
	"github.com/plantcare-app/plantcare/internal/plants"
)

// plantListScreen is the home tab. It reloads the full list on every
// activation; there is no caching across activations.
func (a *App) plantListScreen(ctx context.Context) Route {
	user, err := a.currentUser(ctx)
	if err != nil {
		fmt.Fprintln(a.out, common.FormatUserMessage(err))
		return to(routeLogin)
	}

	fmt.Fprintln(a.out, "\n== My Plants ==")
	fmt.Fprintln(a.out, "Loading plants...")

	cctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	records, err := a.store.ListForUser(cctx, user.ID)
	cancel()
	if err != nil {
		fmt.Fprintln(a.out, common.FormatUserMessage(err))
		a.logger.Error(ctx, "error loading plants", "error", err)

		choice, rerr := getSimpleText(a.reader, "(r)etry, (s)ign in again, or (e)xit", a.out)
		if rerr != nil {
			return to(routeExit)
		}
		switch choice {
		case "r", "retry":
			return to(routeTabs)
		case "s", "signin":
			return to(routeLogin)
		}
		return to(routeExit)
	}

	if len(records) == 0 {
		fmt.Fprintln(a.out, "You have no plants yet. Type 'add' to add your first plant.")
	} else {
		for i, rec := range records {
			fmt.Fprintf(a.out, "%2d. %s\n", i+1, describePlant(rec))
		}
	}

	for {
		choice, err := getSimpleText(a.reader, "Enter a plant number, or: add, explore, profile, exit", a.out)
		if err != nil {
			return to(routeExit)
		}
		switch choice {
		case "":
			continue
		case "add":
			return to(routeAddPlant)
		case "explore":
			return to(routeExplore)
		case "profile":
			return to(routeProfile)
		case "exit", "quit":
			return to(routeExit)
		}

		n, aerr := strconv.Atoi(choice)
		if aerr != nil || n < 1 || n > len(records) {
			fmt.Fprintln(a.out, "Unknown command:", choice)
			continue
		}
		return toWith(routePlantDetail, map[string]string{"id": records[n-1].ID})
	}
}

func describePlant(rec plants.PlantRecord) string {
	s := rec.Name
	if rec.Species != nil {
		s += fmt.Sprintf(" (%s)", *rec.Species)
	}
	if rec.LastWatered != nil {
		s += ", watered " + rec.LastWatered.String()
	}
	if rec.WateringIntervalDays != nil {
		s += fmt.Sprintf(", every %d days", *rec.WateringIntervalDays)
	}
	return s
}
