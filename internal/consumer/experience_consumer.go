package consumer

import (
	"encoding/json"
	"log"
	"strings"

	"github.com/costeratours/experience-service/internal/catalog"
	"github.com/costeratours/experience-service/internal/models"
	amqp "github.com/rabbitmq/amqp091-go"
)

// ExperienceConsumer turns change-feed deliveries into catalog patches.
type ExperienceConsumer struct {
	catalog *catalog.Catalog
}

func NewExperienceConsumer(cat *catalog.Catalog) *ExperienceConsumer {
	return &ExperienceConsumer{catalog: cat}
}

// Start drains the delivery channel until it closes.
func (ec *ExperienceConsumer) Start(msgs <-chan amqp.Delivery) {
	go func() {
		for msg := range msgs {
			ec.handleMessage(msg)
		}
		log.Println("[ExperienceConsumer] channel closed, stopping consumer")
	}()
}

func (ec *ExperienceConsumer) handleMessage(msg amqp.Delivery) {
	var row models.Experience
	if err := json.Unmarshal(msg.Body, &row); err != nil {
		log.Printf("[ExperienceConsumer] failed to unmarshal: %v", err)
		msg.Nack(false, false)
		return
	}

	ev, ok := toChangeEvent(msg.RoutingKey, &row)
	if !ok {
		log.Printf("[ExperienceConsumer] unknown routing key: %s", msg.RoutingKey)
		msg.Nack(false, false)
		return
	}

	ec.catalog.Apply(ev)
	log.Printf("[ExperienceConsumer] applied %s for experience %s", ev.Type, row.ID)
	msg.Ack(false)
}

func toChangeEvent(routingKey string, row *models.Experience) (catalog.ChangeEvent, bool) {
	switch strings.TrimPrefix(routingKey, "experience.") {
	case "created":
		return catalog.ChangeEvent{Type: catalog.EventInsert, New: row}, true
	case "updated":
		return catalog.ChangeEvent{Type: catalog.EventUpdate, New: row}, true
	case "deleted":
		return catalog.ChangeEvent{Type: catalog.EventDelete, Old: row}, true
	}
	return catalog.ChangeEvent{}, false
}
