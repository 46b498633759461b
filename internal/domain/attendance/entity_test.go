package attendance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStatusMultiplier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status Status
		want   string
	}{
		{StatusFull, "1"},
		{StatusHalf, "0.5"},
		{StatusOneHalf, "1.5"},
		{StatusDouble, "2"},
		{StatusTriple, "3"},
		{StatusAbsent, "0"},
		{StatusPresent, "1"},
		{Status("P"), "1"}, // legacy spreadsheet alias
		{Status("VACATION"), "0"},
		{Status(""), "0"},
		{Status("full"), "0"}, // codes are case-sensitive
	}

	for _, tt := range tests {
		want := decimal.RequireFromString(tt.want)
		assert.True(t, want.Equal(tt.status.Multiplier()),
			"status %q: want %s, got %s", tt.status, want, tt.status.Multiplier())
	}
}

func TestStatusMapMissingWorker(t *testing.T) {
	t.Parallel()

	statuses := StatusMap{"w1": StatusFull}

	// A worker absent from the map credits zero shifts.
	assert.True(t, statuses["w2"].Multiplier().IsZero())
}
