package app

import (
	"time"

	"github.com/zeusync/territory/internal/core/events/bus"
	"github.com/zeusync/territory/internal/core/observability/log"
)

// slowDelivery is the handler time after which a delivery is logged. Handlers
// run inside the simulation step, so anything slower stalls the frame.
const slowDelivery = 2 * time.Millisecond

// deliveryObserver enables bus metrics and reports failed or slow deliveries.
type deliveryObserver struct {
	logger log.Log
}

var _ bus.EventBusObserver = (*deliveryObserver)(nil)

func (o *deliveryObserver) OnPublish(string, bus.Event) {}

func (o *deliveryObserver) OnDelivered(eventType string, handlers int, err error, d time.Duration) {
	switch {
	case err != nil:
		o.logger.Warn("event delivery failed",
			log.String("event", eventType),
			log.Int("handlers", handlers),
			log.Error(err),
		)
	case d > slowDelivery:
		o.logger.Debug("slow event delivery",
			log.String("event", eventType),
			log.Int("handlers", handlers),
			log.Duration("took", d),
		)
	}
}
