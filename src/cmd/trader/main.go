package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"options-tracker/src/eventmodels"
	"options-tracker/src/eventpubsub"
	"options-tracker/src/eventservices"
	"options-tracker/src/notifier"
	"options-tracker/src/tracker"
	"options-tracker/src/utils"
)

// The feed publishes a finished minute bar shortly after the boundary, so
// each cycle fires a few seconds past the minute.
const tickOffset = 5 * time.Second

type RunArgs struct {
	GoEnv       string
	Underlying  string
	DataDir     string
	RoundStrike bool
	Notify      bool
}

var runCmd = &cobra.Command{
	Use:   "trader",
	Short: "Track option contracts live, one pipeline cycle per minute",
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

		roundStrike, err := cmd.Flags().GetBool("round-strike")
		if err != nil {
			log.Fatalf("error getting round-strike: %v", err)
		}

		notify, err := cmd.Flags().GetBool("notify")
		if err != nil {
			log.Fatalf("error getting notify: %v", err)
		}

		if err := Run(RunArgs{
			GoEnv:       goEnv,
			Underlying:  underlying,
			DataDir:     dataDir,
			RoundStrike: roundStrike,
			Notify:      notify,
		}); err != nil {
			log.Fatalf("error running command: %v", err)
		}
	},
}

func nextTickTimer(now time.Time) *time.Timer {
	nextTick := now.Truncate(time.Minute).Add(time.Minute).Add(tickOffset)
	return time.NewTimer(nextTick.Sub(now))
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

	if args.Notify {
		slackNotifier := notifier.NewSlackNotifier(os.Getenv("SLACK_WEBHOOK_URL"))
		if err := eventpubsub.SubscribeTradeSignals(slackNotifier.HandleTradeSignal); err != nil {
			log.Fatalf("error subscribing notifier: %v", err)
		}
	}

	feed := eventservices.NewPolygonMarketDataFeed(apiKey)

	optionsTracker, err := tracker.NewOptionsTracker(tracker.Config{
		Mode:        tracker.ModeLive,
		Underlying:  eventmodels.NewStockSymbol(args.Underlying),
		RoundStrike: args.RoundStrike,
		Notify:      args.Notify,
		DataDir:     args.DataDir,
	}, feed)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	now := time.Now()
	if err := optionsTracker.Initialize(ctx, now); err != nil {
		return err
	}

	timer := nextTickTimer(now)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("shutting down")
			return nil
		case tick := <-timer.C:
			tradingDate, err := utils.TradingDate(tick)
			if err != nil {
				log.Errorf("error resolving trading date: %v", err)
				timer = nextTickTimer(time.Now())
				continue
			}

			from := tradingDate.AddDate(0, 0, -7)
			if err := optionsTracker.RunCycle(ctx, from, tradingDate); err != nil {
				log.Errorf("cycle failed: %v", err)
			}

			timer = nextTickTimer(time.Now())
		}
	}
}

func main() {
	runCmd.PersistentFlags().String("go-env", "development", "The go environment to run the command in.")
	runCmd.PersistentFlags().String("underlying", "SPY", "The underlying symbol to derive contracts from.")
	runCmd.PersistentFlags().String("data-dir", "data", "The directory to write candle and trade files to.")
	runCmd.PersistentFlags().Bool("round-strike", true, "Round the daily open to the nearest whole strike.")
	runCmd.PersistentFlags().Bool("notify", true, "Publish entry/exit notifications.")

	runCmd.Execute()
}
