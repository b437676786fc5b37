package main

import (
	"context"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"options-tracker/src/eventmodels"
	"options-tracker/src/eventpubsub"
	"options-tracker/src/eventservices"
	"options-tracker/src/tracker"
	"options-tracker/src/utils"
)

type RunArgs struct {
	GoEnv       string
	Underlying  string
	DataDir     string
	FromDate    time.Time
	ToDate      time.Time
	RoundStrike bool
}

var runCmd = &cobra.Command{
	Use:   "backtester",
	Short: "Run the tracker pipeline once over a fixed date range and report trades",
	Run: func(cmd *cobra.Command, args []string) {
		goEnv, err := cmd.Flags().GetString("go-env")
		if err != nil {
			log.Fatalf("error getting go-env: %v", err)
		}

		underlying, err := cmd.Flags().GetString("underlying")
		if err != nil {
			log.Fatalf("error getting underlying: %v", err)
		}

		dataDir, err := cmd.Flags().GetString("data-dir")
		if err != nil {
			log.Fatalf("error getting data-dir: %v", err)
		}

		fromStr, err := cmd.Flags().GetString("from")
		if err != nil {
			log.Fatalf("error getting from: %v", err)
		}

		toStr, err := cmd.Flags().GetString("to")
		if err != nil {
			log.Fatalf("error getting to: %v", err)
		}

		fromDate, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			log.Fatalf("error parsing from date: %v", err)
		}

		toDate, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			log.Fatalf("error parsing to date: %v", err)
		}

		roundStrike, err := cmd.Flags().GetBool("round-strike")
		if err != nil {
			log.Fatalf("error getting round-strike: %v", err)
		}

		if err := Run(RunArgs{
			GoEnv:       goEnv,
			Underlying:  underlying,
			DataDir:     dataDir,
			FromDate:    fromDate,
			ToDate:      toDate,
			RoundStrike: roundStrike,
		}); err != nil {
			log.Fatalf("error running command: %v", err)
		}
	},
}

func Run(args RunArgs) error {
	projectDir, err := os.Getwd()
	if err != nil {
		log.Fatalf("error getting working directory: %v", err)
	}

	if err := utils.InitEnvironmentVariables(projectDir, args.GoEnv); err != nil {
		log.Warnf("continuing without .env file: %v", err)
	}

	apiKey, err := utils.GetEnv("POLYGON_API_KEY")
	if err != nil {
		log.Fatalf("error loading api key: %v", err)
	}

	eventpubsub.Init()

	feed := eventservices.NewPolygonMarketDataFeed(apiKey)

	optionsTracker, err := tracker.NewOptionsTracker(tracker.Config{
		Mode:        tracker.ModeBacktest,
		Underlying:  eventmodels.NewStockSymbol(args.Underlying),
		RoundStrike: args.RoundStrike,
		Notify:      false,
		DataDir:     args.DataDir,
	}, feed)
	if err != nil {
		return err
	}

	ctx := context.Background()

	if err := optionsTracker.Initialize(ctx, args.FromDate); err != nil {
		return err
	}

	if err := optionsTracker.RunCycle(ctx, args.FromDate, args.ToDate); err != nil {
		return err
	}

	printTrades(optionsTracker.Ledger())

	return printSummary(optionsTracker.Ledger())
}

func printTrades(ledger *tracker.TradeLedger) {
	trades := ledger.Trades()
	if len(trades) == 0 {
		log.Info("no trades recorded")
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Symbol", "Timeframe", "Entry", "Exit", "P&L"})

	for _, trade := range trades {
		table.Append([]string{
			trade.OptionSymbol.NoPrefix(),
			trade.Timeframe.String(),
			fmt.Sprintf("%.4f", trade.EntryPrice),
			fmt.Sprintf("%.4f", trade.ExitPrice),
			fmt.Sprintf("%.4f", trade.ProfitLoss),
		})
	}

	table.Render()
}

func printSummary(ledger *tracker.TradeLedger) error {
	summary, err := ledger.Summary()
	if err != nil {
		return fmt.Errorf("printSummary: %w", err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Trades", "Wins", "Losses", "Win Rate", "Total P&L", "Avg P&L", "Max Profit", "Max Loss"})
	table.Append([]string{
		fmt.Sprintf("%d", summary.TotalTrades),
		fmt.Sprintf("%d", summary.WinCount),
		fmt.Sprintf("%d", summary.LossCount),
		fmt.Sprintf("%.2f%%", summary.WinRate*100),
		fmt.Sprintf("%.4f", summary.TotalProfitLoss),
		fmt.Sprintf("%.4f", summary.AvgProfitLoss),
		fmt.Sprintf("%.4f", summary.MaxProfit),
		fmt.Sprintf("%.4f", summary.MaxLoss),
	})
	table.Render()

	return nil
}

func main() {
	runCmd.PersistentFlags().String("go-env", "development", "The go environment to run the command in.")
	runCmd.PersistentFlags().String("underlying", "SPY", "The underlying symbol to derive contracts from.")
	runCmd.PersistentFlags().String("data-dir", "data", "The directory to write candle and trade files to.")
	runCmd.PersistentFlags().String("from", "", "Start date of the backtest range (2006-01-02).")
	runCmd.PersistentFlags().String("to", "", "End date of the backtest range (2006-01-02).")
	runCmd.PersistentFlags().Bool("round-strike", false, "Round the daily open to the nearest whole strike.")

	runCmd.MarkPersistentFlagRequired("from")
	runCmd.MarkPersistentFlagRequired("to")

	runCmd.Execute()
}
