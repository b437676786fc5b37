package notifier

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"options-tracker/src/eventmodels"
)

// SlackNotifier delivers entry/exit notifications to a Slack incoming
// webhook. An empty webhook URL disables delivery. Failures are logged and
// never abort the pipeline.
type SlackNotifier struct {
	webhookURL string
	client     http.Client
}

func NewSlackNotifier(webhookURL string) *SlackNotifier {
	if webhookURL == "" {
		log.Info("SlackNotifier: no webhook URL configured, notifications disabled")
	}

	return &SlackNotifier{
		webhookURL: webhookURL,
		client: http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (n *SlackNotifier) Enabled() bool {
	return n.webhookURL != ""
}

// HandleTradeSignal is the event-bus callback for trade signal events.
func (n *SlackNotifier) HandleTradeSignal(event eventmodels.TradeSignalEvent) {
	if !n.Enabled() {
		return
	}

	if err := n.Send(event); err != nil {
		log.Errorf("SlackNotifier: failed to deliver %s notification for %s: %v", event.Action, event.OptionSymbol, err)
	}
}

func (n *SlackNotifier) Send(event eventmodels.TradeSignalEvent) error {
	payload, err := json.Marshal(map[string]interface{}{
		"text": FormatTradeSignal(event),
	})
	if err != nil {
		return fmt.Errorf("Send: failed to marshal payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, n.webhookURL, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("Send: failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("Send: failed to post webhook: %w", err)
	}

	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return fmt.Errorf("Send: webhook returned http code %v", res.Status)
	}

	return nil
}

func checkmark(condition bool) string {
	if condition {
		return "yes"
	}

	return "no"
}

// FormatTradeSignal renders the notification text: contract description,
// timeframe, price, the per-condition signal snapshot, and realized P&L on
// exits.
func FormatTradeSignal(event eventmodels.TradeSignalEvent) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s (%s) at $%.4f\n", event.Action, event.OptionSymbol.Description(), event.Timeframe, event.Price)
	fmt.Fprintf(&b, "Contract: %s\n", event.OptionSymbol.NoPrefix())

	if event.Entry != nil {
		fmt.Fprintf(&b, "Entry signals: EMA(7) > VWMA(17): %s, ROC(8) > 0: %s, MACD > signal: %s\n",
			checkmark(event.Entry.EmaAboveVwma), checkmark(event.Entry.RocPositive), checkmark(event.Entry.MacdBullish))
	}

	if event.Exit != nil {
		fmt.Fprintf(&b, "Exit signals (%d/3): EMA(7) < VWMA(17): %s, ROC(8) < 0: %s, MACD < signal: %s\n",
			event.Exit.ConditionsMet(), checkmark(event.Exit.EmaBelowVwma), checkmark(event.Exit.RocNegative), checkmark(event.Exit.MacdBearish))
	}

	if event.Pnl != nil {
		status := "LOSS"
		if event.Pnl.ProfitLoss >= 0 {
			status = "PROFIT"
		}

		fmt.Fprintf(&b, "P&L: entry $%.4f, exit $%.4f, %s $%.4f\n", event.Pnl.EntryPrice, event.Pnl.ExitPrice, status, event.Pnl.ProfitLoss)
	}

	return b.String()
}
