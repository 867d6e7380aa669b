package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"tea-engine/internal/analysis"
	"tea-engine/internal/catalog"
	"tea-engine/internal/config"
	"tea-engine/internal/finance"
	"tea-engine/internal/model"
	"tea-engine/internal/validate"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "calc":
		cmdCalc(os.Args[2:])
	case "technologies":
		cmdTechnologies()
	case "sensitivity":
		cmdSensitivity(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli calc --config scenario.yaml [--tech solar] [--out cashflows.csv]")
	fmt.Println("  cli technologies")
	fmt.Println("  cli sensitivity --config scenario.yaml --param capex_per_kw --variations -20,-10,0,10,20")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - calc prints LCOE/NPV/IRR/payback and optionally writes the yearly cash-flow CSV")
	fmt.Println("  - scenario YAML: technology preset name + per-project overrides")
}

func cmdCalc(args []string) {
	fs := pflag.NewFlagSet("calc", pflag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to scenario YAML")
	tech := fs.String("tech", "", "Technology preset id (overrides the scenario's)")
	outCSV := fs.String("out", "", "Optional path to write the yearly cash-flow CSV")
	_ = fs.Parse(args)

	scenario := &config.Scenario{}
	if *cfgPath != "" {
		var err error
		scenario, err = config.Load(*cfgPath)
		if err != nil {
			fatal(err)
		}
	}
	if *tech != "" {
		scenario.Technology = *tech
	}

	inputs := resolveScenario(scenario)
	result := calculate(inputs)
	printResult(inputs, result)

	if *outCSV != "" {
		if err := finance.WriteCashFlowCSV(*outCSV, result.Ledger); err != nil {
			fatal(fmt.Errorf("write %s: %w", *outCSV, err))
		}
		fmt.Printf("\nwrote cash-flow ledger: %s\n", *outCSV)
	}

	if scenario.Sensitivity != nil {
		sens, err := analysis.Sensitivity(finance.New(), inputs, scenario.Sensitivity.Parameter, scenario.Sensitivity.VariationsPct)
		if err != nil {
			fatal(err)
		}
		printSensitivity(sens)
	}
}

func cmdTechnologies() {
	cat := catalog.MustLoad()
	fmt.Printf("%-16s %-34s %10s %10s %8s %9s\n", "ID", "LABEL", "CAPEX/kW", "OPEX/kW-yr", "CF", "LIFETIME")
	for _, p := range cat.List() {
		fmt.Printf("%-16s %-34s %10.0f %10.0f %8.2f %7dy\n",
			p.ID, p.Label, p.CapexPerKW, p.OpexPerKWYear, p.CapacityFactor, p.LifetimeYears)
	}
}

func cmdSensitivity(args []string) {
	fs := pflag.NewFlagSet("sensitivity", pflag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to scenario YAML")
	param := fs.String("param", "", "Parameter to vary (see analysis.SupportedParameters)")
	variations := fs.Float64Slice("variations", []float64{-20, -10, 0, 10, 20}, "Percentage variations")
	_ = fs.Parse(args)

	if *cfgPath == "" || *param == "" {
		fs.Usage()
		os.Exit(2)
	}

	scenario, err := config.Load(*cfgPath)
	if err != nil {
		fatal(err)
	}
	inputs := resolveScenario(scenario)

	sens, err := analysis.Sensitivity(finance.New(), inputs, *param, *variations)
	if err != nil {
		fatal(err)
	}
	printSensitivity(sens)
}

func resolveScenario(s *config.Scenario) model.ProjectInputs {
	cat := catalog.MustLoad()
	inputs, err := cat.Resolve(s.Technology, s.Project)
	if err != nil {
		fatal(err)
	}
	if violations := validate.Inputs(inputs); len(violations) > 0 {
		fmt.Fprintln(os.Stderr, "invalid inputs:")
		for _, v := range violations {
			fmt.Fprintf(os.Stderr, "  - %s\n", v.Error())
		}
		os.Exit(1)
	}
	return inputs
}

func calculate(inputs model.ProjectInputs) *model.FinancialResult {
	result, err := finance.New().Calculate(inputs)
	if err != nil {
		fatal(err)
	}
	return result
}

func printResult(inputs model.ProjectInputs, r *model.FinancialResult) {
	name := inputs.ProjectName
	if name == "" {
		name = "unnamed project"
	}
	fmt.Printf("%s (%s, %.1f MW)\n\n", name, orGeneric(inputs.TechnologyID), inputs.CapacityMW)

	fmt.Printf("  LCOE:               %10.2f $/MWh\n", r.LCOE)
	fmt.Printf("  NPV:                %14.0f $\n", r.NPV)
	fmt.Printf("  IRR:                %s\n", fmtPct(r.IRR))
	fmt.Printf("  simple payback:     %s\n", fmtYears(r.SimplePaybackYears))
	fmt.Printf("  discounted payback: %s\n", fmtYears(r.DiscountedPaybackYears))
	fmt.Println()
	fmt.Printf("  total CAPEX:        %14.0f $\n", r.TotalCapex)
	fmt.Printf("  annual OPEX:        %14.0f $/yr\n", r.AnnualOpex)
	fmt.Printf("  annual production:  %14.0f MWh/yr\n", r.AnnualProductionMWh)
	fmt.Printf("  annual revenue:     %14.0f $/yr\n", r.AnnualRevenue)
}

func printSensitivity(s *analysis.SensitivityResult) {
	fmt.Printf("\nsensitivity: %s (base %g)\n", s.Parameter, s.BaseValue)
	fmt.Printf("%10s %14s %12s %16s\n", "VARIATION", "VALUE", "LCOE", "NPV")
	for _, p := range s.Points {
		fmt.Printf("%+9.0f%% %14.2f %12.2f %16.0f\n", p.VariationPct, p.ParameterValue, p.LCOE, p.NPV)
	}
	fmt.Printf("LCOE spread: %.2f $/MWh\n", s.LCOESpread)
}

func fmtPct(v *float64) string {
	if v == nil {
		return "not found (no sign change in search bracket)"
	}
	return fmt.Sprintf("%10.2f %%", *v*100)
}

func fmtYears(v *float64) string {
	if v == nil {
		return "not recovered within project life"
	}
	return fmt.Sprintf("%10.1f years", *v)
}

func orGeneric(tech string) string {
	if tech == "" {
		return "generic"
	}
	return tech
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
