package autocomplete

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aleksanderv/transitquery/internal/schedule"
)

func TestLookupIsCaseAndDiacriticInsensitive(t *testing.T) {
	stops := []schedule.Stop{
		{Handle: 0, Name: "Kraków Główny"},
		{Handle: 1, Name: "Gdańsk Główny"},
	}
	idx := Build(stops)

	matches := idx.Lookup("krakow")
	require.Len(t, matches, 1)
	assert.Equal(t, "Kraków Główny", matches[0].Name)
	assert.Equal(t, []schedule.StopHandle{0}, matches[0].Stops)
}

func TestLookupGroupsSharedDisplayNames(t *testing.T) {
	stops := []schedule.Stop{
		{Handle: 0, Name: "Central Station"},
		{Handle: 1, Name: "Central Station"},
		{Handle: 2, Name: "Central Park"},
	}
	idx := Build(stops)

	matches := idx.Lookup("central s")
	require.Len(t, matches, 1)
	assert.ElementsMatch(t, []schedule.StopHandle{0, 1}, matches[0].Stops)
}

func TestLookupPrefixBoundary(t *testing.T) {
	stops := []schedule.Stop{
		{Handle: 0, Name: "Alpha"},
		{Handle: 1, Name: "Beta"},
	}
	idx := Build(stops)

	assert.Empty(t, idx.Lookup("Gamma"))
	assert.Len(t, idx.Lookup(""), 2)
}
