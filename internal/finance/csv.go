package finance

import (
	"encoding/csv"
	"os"
	"strconv"

	"tea-engine/internal/model"
)

// WriteCashFlowCSV writes the per-year ledger to path. This is the primary
// artifact for "where does the money go" over the project life.
func WriteCashFlowCSV(path string, rows []model.YearRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"year",
		"electricity_price_per_mwh",
		"revenue",
		"opex",
		"net",
		"cumulative_net",
		"discounted_net",
		"cumulative_discounted_net",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		row := []string{
			strconv.Itoa(r.Year),
			fmtFloat(r.ElectricityPricePerMWh),
			fmtFloat(r.Revenue),
			fmtFloat(r.Opex),
			fmtFloat(r.Net),
			fmtFloat(r.CumulativeNet),
			fmtFloat(r.DiscountedNet),
			fmtFloat(r.CumulativeDiscountedNet),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
