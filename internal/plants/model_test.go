package plants

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_ParseAndString(t *testing.T) {
	d, err := ParseDate("2026-08-31")
	require.NoError(t, err)
	assert.Equal(t, 2026, d.Year)
	assert.Equal(t, time.August, d.Month)
	assert.Equal(t, 31, d.Day)
	assert.Equal(t, "2026-08-31", d.String())
}

func TestDate_ParseRejectsGarbage(t *testing.T) {
	for _, s := range []string{"31-08-2026", "2026-13-01", "yesterday", ""} {
		_, err := ParseDate(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestDate_UnmarshalDropsTimeComponent(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-08-20T00:00:00+00:00"`), &d))
	assert.Equal(t, "2026-08-20", d.String())
}

func TestPlantRecord_NullsRoundTrip(t *testing.T) {
	raw := `{"id":"a","user_id":"u","name":"Ficus","species":null,"last_watered":null,"watering_interval":null,"created_at":"2026-08-01T10:00:00Z"}`
	var rec PlantRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &rec))

	assert.Nil(t, rec.Species)
	assert.Nil(t, rec.LastWatered)
	assert.Nil(t, rec.WateringIntervalDays)
}

func TestFields_MarshalsNilAsNull(t *testing.T) {
	data, err := json.Marshal(Fields{Name: "Ficus"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Ficus","species":null,"last_watered":null,"watering_interval":null}`, string(data))
}

func TestFields_MarshalsValues(t *testing.T) {
	species := "Ficus lyrata"
	interval := 7
	date, err := ParseDate("2026-08-20")
	require.NoError(t, err)

	data, err := json.Marshal(Fields{
		Name:                 "Ficus",
		Species:              &species,
		LastWatered:          &date,
		WateringIntervalDays: &interval,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Ficus","species":"Ficus lyrata","last_watered":"2026-08-20","watering_interval":7}`, string(data))
}
