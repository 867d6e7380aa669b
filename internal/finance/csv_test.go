package finance

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCashFlowCSV(t *testing.T) {
	in := solarInputs()
	in.ProjectLifetimeYears = 5
	b := Compose(in)
	series := Project(in, b)

	path := filepath.Join(t.TempDir(), "cashflow.csv")
	require.NoError(t, WriteCashFlowCSV(path, series.Rows))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 7) // header + years 0..5

	assert.Equal(t, []string{
		"year",
		"electricity_price_per_mwh",
		"revenue",
		"opex",
		"net",
		"cumulative_net",
		"discounted_net",
		"cumulative_discounted_net",
	}, records[0])

	for i, rec := range records[1:] {
		year, err := strconv.Atoi(rec[0])
		require.NoError(t, err)
		assert.Equal(t, i, year)

		net, err := strconv.ParseFloat(rec[4], 64)
		require.NoError(t, err)
		assert.InDelta(t, series.Rows[i].Net, net, 0.01)
	}
}
