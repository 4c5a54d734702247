package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wanjiru/huduma-guide/internal/types"
)

func TestLoad(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Len(t, c.Services(), len(types.ServiceIDs))
	for _, id := range types.ServiceIDs {
		assert.True(t, c.Known(id), "catalog should know %s", id)
	}
}

func TestEntry_KnownService(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	entry := c.Entry(types.ServicePassport)
	assert.Equal(t, types.ServicePassport, entry.ID)
	assert.Equal(t, "Kenyan Passport", entry.DisplayName)
	assert.Equal(t, "Identity", entry.Category)
	assert.NotEmpty(t, entry.Cost.Breakdown)
	assert.NotEmpty(t, entry.Documents)
	assert.NotEmpty(t, entry.Steps)
	assert.Equal(t, "10-15 working days", entry.ProcessingTime.Standard)
	assert.NotEmpty(t, entry.ProcessingTime.Expedited)
}

func TestEntry_UnknownServiceFallsBackToDefault(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	entry := c.Entry("unknown-service-id")
	assert.Equal(t, DefaultServiceID, entry.ID)
	assert.Equal(t, "National ID (Huduma Namba)", entry.DisplayName)
	assert.False(t, c.Known("unknown-service-id"))
}

func TestEntry_ReturnsIndependentCopies(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	first := c.Entry(types.ServiceNationalID)
	first.Documents[0].Name = "mutated"
	first.Cost.Breakdown[0].Cost = "KES 0"
	first.Steps[0].Title = "mutated"
	first.Limitations[0] = "mutated"

	second := c.Entry(types.ServiceNationalID)
	assert.Equal(t, "Original Birth Certificate", second.Documents[0].Name)
	assert.Equal(t, "KES 500", second.Cost.Breakdown[0].Cost)
	assert.Equal(t, "Gather Documents", second.Steps[0].Title)
	assert.NotEqual(t, "mutated", second.Limitations[0])
}

func TestEntry_StepsAreOrdered(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	for _, entry := range c.Services() {
		for i, step := range entry.Steps {
			assert.Equal(t, i+1, step.Step, "%s step %d out of order", entry.ID, i)
		}
	}
}
