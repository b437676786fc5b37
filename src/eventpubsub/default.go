package eventpubsub

import (
	"fmt"

	"github.com/asaskevich/EventBus"
	log "github.com/sirupsen/logrus"

	"options-tracker/src/eventmodels"
)

const TopicTradeSignal = "tracker:trade_signal"

var bus EventBus.Bus

func Init() {
	bus = EventBus.New()
}

// PublishTradeSignal emits an entry or exit event. Subscribers run inline,
// so delivery order matches signal order within a cycle.
func PublishTradeSignal(event eventmodels.TradeSignalEvent) {
	if bus == nil {
		return
	}

	bus.Publish(TopicTradeSignal, event)
}

func SubscribeTradeSignals(callbackFn func(eventmodels.TradeSignalEvent)) error {
	if bus == nil {
		return fmt.Errorf("SubscribeTradeSignals: event bus not initialized")
	}

	if err := bus.Subscribe(TopicTradeSignal, callbackFn); err != nil {
		return err
	}

	log.Infof("Subscribed to topic %s", TopicTradeSignal)
	return nil
}
