package app

import (
	"context"
	"strings"
	"testing"

	"github.com/plantcare-app/plantcare/internal/plants"
)

func ptr[T any](v T) *T { return &v }

func TestAddPlant_EmptyNameNeverReachesStore(t *testing.T) {
	s := &fakeStore{}
	a, out := newTestApp(&fakeGateway{user: signedInUser()}, s, &fakePrefs{})

	// one full form round with an empty name, then EOF on the retry
	stubTextInputs(t, "", "", "", "")

	r := a.addPlantScreen(context.Background())
	if r.Name != routeExit {
		t.Fatalf("want %s, got %s", routeExit, r.Name)
	}
	if s.createCalls != 0 {
		t.Fatalf("Create called %d times on invalid form", s.createCalls)
	}
	if !strings.Contains(out.String(), "name is required") {
		t.Fatalf("validation message not shown: %q", out.String())
	}
}

func TestAddPlant_NonNumericIntervalNeverReachesStore(t *testing.T) {
	s := &fakeStore{}
	a, out := newTestApp(&fakeGateway{user: signedInUser()}, s, &fakePrefs{})

	stubTextInputs(t, "Ficus", "", "", "weekly")

	r := a.addPlantScreen(context.Background())
	if r.Name != routeExit {
		t.Fatalf("want %s, got %s", routeExit, r.Name)
	}
	if s.createCalls != 0 {
		t.Fatalf("Create called on invalid form")
	}
	if !strings.Contains(out.String(), "watering interval must be a number") {
		t.Fatalf("validation message not shown: %q", out.String())
	}
}

func TestAddPlant_Success(t *testing.T) {
	s := &fakeStore{}
	a, out := newTestApp(&fakeGateway{user: signedInUser()}, s, &fakePrefs{})

	stubTextInputs(t, "Ficus", "", "", "7")

	r := a.addPlantScreen(context.Background())
	if r.Name != routeTabs {
		t.Fatalf("want %s, got %s", routeTabs, r.Name)
	}
	if s.createCalls != 1 {
		t.Fatalf("Create calls = %d, want 1", s.createCalls)
	}
	if s.lastOwnerID != "11111111-1111-1111-1111-111111111111" {
		t.Fatalf("owner id = %q", s.lastOwnerID)
	}
	if s.lastFields.Species != nil || s.lastFields.LastWatered != nil {
		t.Fatalf("empty optionals should stay nil: %+v", s.lastFields)
	}
	if s.lastFields.WateringIntervalDays == nil || *s.lastFields.WateringIntervalDays != 7 {
		t.Fatalf("interval = %v, want 7", s.lastFields.WateringIntervalDays)
	}
	if !strings.Contains(out.String(), "Saved!") {
		t.Fatalf("success message not shown")
	}
}

func TestAddPlant_NoSessionGoesToLogin(t *testing.T) {
	s := &fakeStore{}
	a, out := newTestApp(&fakeGateway{}, s, &fakePrefs{})

	stubTextInputs(t, "Ficus", "", "", "")

	r := a.addPlantScreen(context.Background())
	if r.Name != routeLogin {
		t.Fatalf("want %s, got %s", routeLogin, r.Name)
	}
	if s.createCalls != 0 {
		t.Fatalf("Create called without a session")
	}
	if !strings.Contains(out.String(), "sign in") {
		t.Fatalf("re-login hint not shown: %q", out.String())
	}
}

func TestEditPlant_PrefilledUpdate(t *testing.T) {
	rec := plants.PlantRecord{
		ID:      "p1",
		Name:    "Ficus",
		Species: ptr("Ficus lyrata"),
	}
	s := &fakeStore{records: []plants.PlantRecord{rec}}
	a, _ := newTestApp(&fakeGateway{user: signedInUser()}, s, &fakePrefs{})

	// keep name and species, set a date, clear nothing
	stubTextInputs(t, "e", "", "", "2026-08-01", "14")

	r := a.editPlantScreen(context.Background(), "p1")
	if r.Name != routeTabs {
		t.Fatalf("want %s, got %s", routeTabs, r.Name)
	}
	if s.updateCalls != 1 {
		t.Fatalf("Update calls = %d, want 1", s.updateCalls)
	}
	if s.lastFields.Name != "Ficus" {
		t.Fatalf("name default not kept: %q", s.lastFields.Name)
	}
	if s.lastFields.Species == nil || *s.lastFields.Species != "Ficus lyrata" {
		t.Fatalf("species default not kept: %v", s.lastFields.Species)
	}
	if s.lastFields.LastWatered == nil || s.lastFields.LastWatered.String() != "2026-08-01" {
		t.Fatalf("last watered = %v", s.lastFields.LastWatered)
	}
}

func TestEditPlant_ClearOptionalField(t *testing.T) {
	rec := plants.PlantRecord{
		ID:                   "p1",
		Name:                 "Ficus",
		Species:              ptr("Ficus lyrata"),
		WateringIntervalDays: ptr(7),
	}
	s := &fakeStore{records: []plants.PlantRecord{rec}}
	a, _ := newTestApp(&fakeGateway{user: signedInUser()}, s, &fakePrefs{})

	stubTextInputs(t, "e", "", "-", "", "")

	r := a.editPlantScreen(context.Background(), "p1")
	if r.Name != routeTabs {
		t.Fatalf("want %s, got %s", routeTabs, r.Name)
	}
	if s.lastFields.Species != nil {
		t.Fatalf("species not cleared: %v", *s.lastFields.Species)
	}
	if s.lastFields.WateringIntervalDays == nil || *s.lastFields.WateringIntervalDays != 7 {
		t.Fatalf("interval default not kept: %v", s.lastFields.WateringIntervalDays)
	}
}

func TestDeletePlant_ConfirmationRequired(t *testing.T) {
	rec := plants.PlantRecord{ID: "p1", Name: "Ficus"}
	s := &fakeStore{records: []plants.PlantRecord{rec}}
	a, out := newTestApp(&fakeGateway{user: signedInUser()}, s, &fakePrefs{})

	stubTextInputs(t, "d", "no")

	r := a.editPlantScreen(context.Background(), "p1")
	if r.Name != routeEditPlant || r.Params["id"] != "p1" {
		t.Fatalf("cancelled delete should return to the edit screen, got %+v", r)
	}
	if s.deleteCalls != 0 {
		t.Fatalf("Delete called without confirmation")
	}
	if !strings.Contains(out.String(), "Cancelled.") {
		t.Fatalf("cancel message not shown")
	}
}

func TestDeletePlant_Confirmed(t *testing.T) {
	rec := plants.PlantRecord{ID: "p1", Name: "Ficus"}
	s := &fakeStore{records: []plants.PlantRecord{rec}}
	a, out := newTestApp(&fakeGateway{user: signedInUser()}, s, &fakePrefs{})

	stubTextInputs(t, "d", "yes")

	r := a.editPlantScreen(context.Background(), "p1")
	if r.Name != routeTabs {
		t.Fatalf("want %s, got %s", routeTabs, r.Name)
	}
	if s.deleteCalls != 1 || s.deletedID != "p1" {
		t.Fatalf("Delete calls = %d id = %q", s.deleteCalls, s.deletedID)
	}
	if !strings.Contains(out.String(), "Plant deleted.") {
		t.Fatalf("success message not shown")
	}
}

func TestFormInputFromRecord(t *testing.T) {
	watered, err := plants.ParseDate("2026-08-01")
	if err != nil {
		t.Fatal(err)
	}
	rec := &plants.PlantRecord{
		Name:                 "Ficus",
		Species:              ptr("Ficus lyrata"),
		LastWatered:          &watered,
		WateringIntervalDays: ptr(7),
	}

	in := formInputFromRecord(rec)
	if in.Name != "Ficus" || in.Species != "Ficus lyrata" ||
		in.LastWatered != "2026-08-01" || in.WateringInterval != "7" {
		t.Fatalf("unexpected form input: %+v", in)
	}
}
