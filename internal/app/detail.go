package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/plantcare-app/plantcare/internal/common"
)

// plantDetailScreen shows a single plant's fields and offers editing.
func (a *App) plantDetailScreen(ctx context.Context, id string) Route {
	cctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	rec, err := a.store.GetByID(cctx, id)
	cancel()
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Fprintln(a.out, "Plant not found.")
		} else {
			fmt.Fprintln(a.out, common.FormatUserMessage(err))
		}
		return to(routeTabs)
	}

	fmt.Fprintf(a.out, "\n== %s ==\n", rec.Name)
	if rec.Species != nil {
		fmt.Fprintf(a.out, "Species: %s\n", *rec.Species)
	}
	if rec.LastWatered != nil {
		fmt.Fprintf(a.out, "Last watered: %s\n", rec.LastWatered.String())
	}
	if rec.WateringIntervalDays != nil {
		fmt.Fprintf(a.out, "Watering interval: every %d days\n", *rec.WateringIntervalDays)
	}
	fmt.Fprintf(a.out, "Added: %s\n", rec.CreatedAt.Format("2006-01-02"))

	for {
		choice, err := getSimpleText(a.reader, "(e)dit or (b)ack", a.out)
		if err != nil {
			return to(routeExit)
		}
		switch choice {
		case "e", "edit":
			return toWith(routeEditPlant, map[string]string{"id": id})
		case "b", "back", "":
			return to(routeTabs)
		default:
			fmt.Fprintln(a.out, "Unknown command:", choice)
		}
	}
}
