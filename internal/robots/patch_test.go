package robots

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatchApplyOnlyPresentFields(t *testing.T) {
	r := Robot{
		Name:        "scraper",
		Description: "scrapes things",
		Price:       10,
		Currency:    "USDC",
		Services:    []string{"scraping"},
		Endpoint:    "https://robots.example/scraper",
		Status:      StatusActive,
	}

	name := "harvester"
	p := Patch{Name: &name}
	p.Apply(&r)

	assert.Equal(t, "harvester", r.Name)
	assert.Equal(t, "scrapes things", r.Description)
	assert.Equal(t, 10.0, r.Price)
	assert.Equal(t, "USDC", r.Currency)
	assert.Equal(t, []string{"scraping"}, r.Services)
	assert.Equal(t, StatusActive, r.Status)
}

func TestPatchApplyFalsyValues(t *testing.T) {
	r := Robot{Description: "old", Services: []string{"a", "b"}}

	empty := ""
	none := []string{}
	p := Patch{Description: &empty, Services: &none}
	p.Apply(&r)

	assert.Equal(t, "", r.Description)
	assert.Empty(t, r.Services)
}

func TestPatchJSONAbsentVersusExplicit(t *testing.T) {
	var p Patch
	require.NoError(t, json.Unmarshal([]byte(`{"description": ""}`), &p))

	// Explicitly-sent empty string is a present field; everything else is absent
	require.NotNil(t, p.Description)
	assert.Equal(t, "", *p.Description)
	assert.Nil(t, p.Name)
	assert.Nil(t, p.Price)
	assert.Nil(t, p.Status)
}

func TestPatchValidatePrice(t *testing.T) {
	for _, price := range []float64{0, -1, -0.000001} {
		p := Patch{Price: &price}
		err := p.Validate()
		require.Error(t, err, "price %v", price)
		assert.True(t, IsValidation(err))
	}

	good := 0.000001
	p := Patch{Price: &good}
	assert.NoError(t, p.Validate())
}

func TestPatchValidateStatus(t *testing.T) {
	for _, status := range []string{StatusActive, StatusInactive, StatusMaintenance} {
		s := status
		p := Patch{Status: &s}
		assert.NoError(t, p.Validate(), "status %q", status)
	}

	bad := "retired"
	p := Patch{Status: &bad}
	err := p.Validate()
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestPatchEmpty(t *testing.T) {
	assert.True(t, (&Patch{}).Empty())

	name := "x"
	assert.False(t, (&Patch{Name: &name}).Empty())
}
