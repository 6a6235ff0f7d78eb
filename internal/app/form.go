package app

import (
	"context"
	"fmt"
	"strconv"

	"github.com/plantcare-app/plantcare/internal/common"
	"github.com/plantcare-app/plantcare/internal/plants"
)

// formPhase is the state of the shared add/edit form engine.
type formPhase int

const (
	formIdle formPhase = iota
	formValidating
	formSubmitting
)

func (a *App) addPlantScreen(ctx context.Context) Route {
	fmt.Fprintln(a.out, "\n== Add Plant ==")
	return a.runPlantForm(ctx, "", plants.FormInput{})
}

// editPlantScreen pre-populates the form from the stored record and offers
// delete behind an explicit confirmation.
func (a *App) editPlantScreen(ctx context.Context, id string) Route {
	cctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	rec, err := a.store.GetByID(cctx, id)
	cancel()
	if err != nil {
		fmt.Fprintln(a.out, common.FormatUserMessage(err))
		return to(routeTabs)
	}

	fmt.Fprintf(a.out, "\n== Edit %s ==\n", rec.Name)

	choice, err := getSimpleText(a.reader, "(e)dit fields, (d)elete plant, or (b)ack", a.out)
	if err != nil {
		return to(routeExit)
	}
	switch choice {
	case "d", "delete":
		return a.deletePlant(ctx, rec)
	case "b", "back":
		return to(routeTabs)
	}
	return a.runPlantForm(ctx, id, formInputFromRecord(rec))
}

// runPlantForm drives the form state machine: collect input, validate
// locally, then submit. Failures come back to the form with the previous
// input kept as defaults. An empty id creates, a non-empty id updates.
func (a *App) runPlantForm(ctx context.Context, id string, input plants.FormInput) Route {
	phase := formIdle
	var fields plants.Fields

	for {
		switch phase {
		case formIdle:
			in, err := a.collectPlantForm(input)
			if err != nil {
				return to(routeExit)
			}
			input = in
			phase = formValidating

		case formValidating:
			f, err := input.Validate()
			if err != nil {
				fmt.Fprintln(a.out, common.FormatUserMessage(err))
				phase = formIdle
				continue
			}
			fields = f
			phase = formSubmitting

		case formSubmitting:
			user, err := a.currentUser(ctx)
			if err != nil {
				fmt.Fprintln(a.out, common.FormatUserMessage(err))
				return to(routeLogin)
			}

			cctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
			if id == "" {
				_, err = a.store.Create(cctx, user.ID, fields)
			} else {
				err = a.store.Update(cctx, id, fields)
			}
			cancel()
			if err != nil {
				fmt.Fprintln(a.out, common.FormatUserMessage(err))
				a.logger.Error(ctx, "error saving plant", "id", id, "error", err)

				choice, cerr := getSimpleText(a.reader, "Press Enter to try again, or type 'back' to discard", a.out)
				if cerr != nil {
					return to(routeExit)
				}
				if choice == "back" {
					return to(routeTabs)
				}
				phase = formIdle
				continue
			}

			fmt.Fprintln(a.out, "Saved!")
			return to(routeTabs)
		}
	}
}

// collectPlantForm prompts for the form fields. Defaults are shown in
// brackets and kept on an empty answer; "-" clears a previous value.
func (a *App) collectPlantForm(prev plants.FormInput) (plants.FormInput, error) {
	name, err := a.promptWithDefault("Name", prev.Name)
	if err != nil {
		return prev, err
	}
	species, err := a.promptWithDefault("Species (optional)", prev.Species)
	if err != nil {
		return prev, err
	}
	lastWatered, err := a.promptWithDefault("Last watered, YYYY-MM-DD (optional)", prev.LastWatered)
	if err != nil {
		return prev, err
	}
	interval, err := a.promptWithDefault("Watering interval in days (optional)", prev.WateringInterval)
	if err != nil {
		return prev, err
	}

	return plants.FormInput{
		Name:             name,
		Species:          species,
		LastWatered:      lastWatered,
		WateringInterval: interval,
	}, nil
}

func (a *App) promptWithDefault(label, def string) (string, error) {
	prompt := label
	if def != "" {
		prompt = fmt.Sprintf("%s [%s]", label, def)
	}
	v, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	switch v {
	case "":
		return def, nil
	case "-":
		return "", nil
	}
	return v, nil
}

func formInputFromRecord(rec *plants.PlantRecord) plants.FormInput {
	in := plants.FormInput{Name: rec.Name}
	if rec.Species != nil {
		in.Species = *rec.Species
	}
	if rec.LastWatered != nil {
		in.LastWatered = rec.LastWatered.String()
	}
	if rec.WateringIntervalDays != nil {
		in.WateringInterval = strconv.Itoa(*rec.WateringIntervalDays)
	}
	return in
}

// deletePlant asks for confirmation before removing the record. Anything
// but an explicit yes cancels and returns to the edit screen.
func (a *App) deletePlant(ctx context.Context, rec *plants.PlantRecord) Route {
	confirm, err := getSimpleText(a.reader, fmt.Sprintf("Delete %q? This cannot be undone (yes/no)", rec.Name), a.out)
	if err != nil {
		return to(routeExit)
	}
	if confirm != "y" && confirm != "yes" {
		fmt.Fprintln(a.out, "Cancelled.")
		return toWith(routeEditPlant, map[string]string{"id": rec.ID})
	}

	cctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	err = a.store.Delete(cctx, rec.ID)
	cancel()
	if err != nil {
		fmt.Fprintln(a.out, common.FormatUserMessage(err))
		a.logger.Error(ctx, "error deleting plant", "id", rec.ID, "error", err)
		return toWith(routeEditPlant, map[string]string{"id": rec.ID})
	}

	fmt.Fprintln(a.out, "Plant deleted.")
	return to(routeTabs)
}
