package queue

// Event subjects published by the services. RabbitMQ maps each subject to a
// fanout exchange, NATS uses it as-is.
const (
	SubjectSwapRecorded = "swap.recorded"
	SubjectSlotAssigned = "slot.assigned"
	SubjectSlotReleased = "slot.released"
	SubjectBillingPaid  = "billing.paid"
)

// MessageQueue defines the interface for a message queue adapter
type MessageQueue interface {
	Publish(subject string, data []byte) error
	Subscribe(subject string, handler func(data []byte) error) error
	Close() error
}
