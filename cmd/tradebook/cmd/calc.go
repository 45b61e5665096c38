package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/calc"
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate P&L and risk metrics for one trade",
	Long: `Run the trade calculator over a single set of prices.

Only --entry is required. Leave --exit unset for an open trade; the
profit target is then used to project the P&L.

Examples:
  tradebook calc --side LONG --entry 3404.9 --exit 3410.2 --contracts 2
  tradebook calc --side SHORT --entry 3404.9 --stop 3407.0 --target 3398.0`,
	RunE: runCalc,
}

var calcFlags struct {
	side       string
	contracts  float64
	entry      float64
	exit       float64
	stop       float64
	target     float64
	equity     float64
	high       float64
	low        float64
	fees       float64
	instrument string
	tickSize   float64
	tickValue  float64
	multiplier float64
}

func init() {
	rootCmd.AddCommand(calcCmd)

	f := calcCmd.Flags()
	f.StringVar(&calcFlags.side, "side", "LONG", "trade direction: LONG or SHORT")
	f.Float64Var(&calcFlags.contracts, "contracts", 1, "number of contracts")
	f.Float64Var(&calcFlags.entry, "entry", 0, "entry price (required)")
	f.Float64Var(&calcFlags.exit, "exit", 0, "exit price")
	f.Float64Var(&calcFlags.stop, "stop", 0, "stop loss price")
	f.Float64Var(&calcFlags.target, "target", 0, "profit target price")
	f.Float64Var(&calcFlags.equity, "equity", 0, "account equity for ROI")
	f.Float64Var(&calcFlags.high, "high", 0, "highest price seen in trade")
	f.Float64Var(&calcFlags.low, "low", 0, "lowest price seen in trade")
	f.Float64Var(&calcFlags.fees, "fees", 0, "fees per contract (overrides config)")
	f.StringVar(&calcFlags.instrument, "instrument", "", "instrument symbol (overrides config)")
	f.Float64Var(&calcFlags.tickSize, "tick-size", 0, "tick size override")
	f.Float64Var(&calcFlags.tickValue, "tick-value", 0, "tick value override")
	f.Float64Var(&calcFlags.multiplier, "multiplier", 0, "contract multiplier override")

	calcCmd.MarkFlagRequired("entry")
}

func runCalc(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fees := cfg.Trading.FeesPerContract
	if cmd.Flags().Changed("fees") {
		fees = calcFlags.fees
	}
	symbol := cfg.Trading.Instrument
	if calcFlags.instrument != "" {
		symbol = calcFlags.instrument
	}

	in := calc.Inputs{
		Side:             calc.Side(calcFlags.side),
		Contracts:        calcFlags.contracts,
		Entry:            calcFlags.entry,
		FeesPerContract:  fees,
		InstrumentSymbol: symbol,
	}
	if in.Side != calc.Long && in.Side != calc.Short {
		return fmt.Errorf("side must be LONG or SHORT, got %q", calcFlags.side)
	}

	// Flags left at their defaults stay nil so the calculator treats
	// them as absent rather than zero prices.
	setIfChanged := func(name string, dst **float64, v *float64) {
		if cmd.Flags().Changed(name) {
			*dst = v
		}
	}
	setIfChanged("exit", &in.Exit, &calcFlags.exit)
	setIfChanged("stop", &in.StopLoss, &calcFlags.stop)
	setIfChanged("target", &in.ProfitTarget, &calcFlags.target)
	setIfChanged("equity", &in.AccountEquity, &calcFlags.equity)
	setIfChanged("high", &in.HighestInTrade, &calcFlags.high)
	setIfChanged("low", &in.LowestInTrade, &calcFlags.low)
	setIfChanged("tick-size", &in.TickSize, &calcFlags.tickSize)
	setIfChanged("tick-value", &in.TickValue, &calcFlags.tickValue)
	setIfChanged("multiplier", &in.ContractMultiplier, &calcFlags.multiplier)

	if in.AccountEquity == nil && cfg.Trading.AccountEquity > 0 {
		e := cfg.Trading.AccountEquity
		in.AccountEquity = &e
	}

	for _, w := range calc.ValidateInputs(in) {
		fmt.Printf("%s: %s (%s)\n", w.Severity, w.Message, w.Field)
	}

	res, err := calc.Calculate(in)
	if err != nil {
		return err
	}

	printResults(res)
	return nil
}

func printResults(res calc.Results) {
	status := "CLOSED"
	if res.IsOpen {
		status = "OPEN (projected at target)"
	}
	fmt.Printf("Status:             %s\n", status)
	fmt.Printf("Points:             %s\n", calc.FormatPrice(res.Points, 2))
	fmt.Printf("Ticks/contract:     %s\n", calc.FormatTicks(res.TicksPerContract))
	fmt.Printf("Total ticks:        %s\n", calc.FormatTicks(res.TotalTicks))
	fmt.Printf("Gross P&L:          %s\n", calc.FormatCurrency(res.GrossPnl))
	fmt.Printf("Fees:               %s\n", calc.FormatCurrency(res.FeesTotal))
	fmt.Printf("Net P&L:            %s\n", calc.FormatCurrency(res.NetPnl))
	fmt.Printf("Position notional:  %s\n", calc.FormatCurrency(res.PositionNotional))

	if res.TradeRiskDollar != nil {
		fmt.Printf("Trade risk:         %s\n", calc.FormatCurrency(*res.TradeRiskDollar))
	}
	if res.PlannedRMultiple != nil {
		fmt.Printf("Planned R:          %.2fR\n", *res.PlannedRMultiple)
	}
	if res.RealizedRMultiple != nil {
		fmt.Printf("Realized R:         %.2fR\n", *res.RealizedRMultiple)
	}
	if res.RoiPercent != nil {
		fmt.Printf("ROI:                %.2f%%\n", *res.RoiPercent)
	}
	if res.PriceMFE != nil {
		fmt.Printf("MFE (price):        %s\n", calc.FormatPrice(*res.PriceMFE, 2))
	}
	if res.MFEDollar != nil {
		fmt.Printf("MFE (dollar):       %s\n", calc.FormatCurrency(*res.MFEDollar))
	}
	if res.PriceMAE != nil {
		fmt.Printf("MAE (price):        %s\n", calc.FormatPrice(*res.PriceMAE, 2))
	}
	if res.MAEDollar != nil {
		fmt.Printf("MAE (dollar):       %s\n", calc.FormatCurrency(*res.MAEDollar))
	}
}
