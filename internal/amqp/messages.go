package amqp

import (
	"encoding/json"
	"time"
)

// Event kinds carried by TransactionEventMessage.
const (
	EventCreated = "created"
	EventUpdated = "updated"
	EventDeleted = "deleted"
)

// TransactionEventMessage is a lightweight notification that a ledger
// mutation happened. It carries only the id and owner; consumers fetch
// whatever record state they need from the ledger itself.
type TransactionEventMessage struct {
	Event      string    `json:"event"`
	ID         int64     `json:"id"`
	OwnerEmail string    `json:"owner_email"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewTransactionEventMessage creates an event message stamped with the
// current time.
func NewTransactionEventMessage(event string, id int64, ownerEmail string) *TransactionEventMessage {
	return &TransactionEventMessage{
		Event:      event,
		ID:         id,
		OwnerEmail: ownerEmail,
		Timestamp:  time.Now(),
	}
}

// ToJSON converts the message to JSON bytes.
func (m *TransactionEventMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// TransactionEventMessageFromJSON creates a message from JSON bytes.
func TransactionEventMessageFromJSON(data []byte) (*TransactionEventMessage, error) {
	var msg TransactionEventMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
