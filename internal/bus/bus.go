package bus

import (
	"log/slog"

	"github.com/asaskevich/EventBus"
	"github.com/parisboutique/storefront/internal/models"
)

// Topic names kept from the storage format's custom events. Consumers that
// do not use the engine's Subscribe API listen on these instead.
const (
	TopicProductsUpdated      = "productsUpdated"
	TopicAdminProductsUpdated = "adminProductsUpdated"
)

// Bus broadcasts catalog notifications to topic subscribers. Delivery is
// synchronous and in-process.
type Bus struct {
	bus EventBus.Bus
}

func New() *Bus {
	return &Bus{bus: EventBus.New()}
}

// PublishUpdate fans the update out on both legacy topics.
func (b *Bus) PublishUpdate(update models.ProductUpdate) {
	b.bus.Publish(TopicProductsUpdated, update)
	b.bus.Publish(TopicAdminProductsUpdated, update)
}

func (b *Bus) Subscribe(topic string, fn func(models.ProductUpdate)) error {
	if err := b.bus.Subscribe(topic, fn); err != nil {
		slog.Error("Failed to subscribe to topic", slog.String("topic", topic), slog.String("error", err.Error()))
		return err
	}

	return nil
}

func (b *Bus) Unsubscribe(topic string, fn func(models.ProductUpdate)) error {
	return b.bus.Unsubscribe(topic, fn)
}
