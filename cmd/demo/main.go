package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"tea-engine/internal/catalog"
	"tea-engine/internal/finance"
	"tea-engine/internal/model"
	"tea-engine/internal/validate"
)

// Demo:
// - Resolve a technology preset from the catalog
// - Apply a couple of overrides to show how merging works
// - Run the engine and dump the full result as JSON
func main() {
	tech := pflag.String("tech", "solar", "Technology preset id")
	capacity := pflag.Float64("capacity", 100, "Project capacity in MW")
	price := pflag.Float64("price", 50, "Electricity price in $/MWh")
	pflag.Parse()

	cat := catalog.MustLoad()

	inputs, err := cat.Resolve(*tech, model.InputOverrides{
		ProjectName:            "demo project",
		CapacityMW:             capacity,
		ElectricityPricePerMWh: price,
	})
	if err != nil {
		panic(err)
	}
	if violations := validate.Inputs(inputs); len(violations) > 0 {
		panic(fmt.Sprintf("invalid inputs: %v", violations))
	}

	result, err := finance.New().Calculate(inputs)
	if err != nil {
		panic(err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		panic(err)
	}
}
