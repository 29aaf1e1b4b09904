package amqp

import (
	"encoding/json"
	"time"
)

// Record kinds carried by change messages.
const (
	KindIncome       = "income"
	KindExpense      = "expense"
	KindInvestment   = "investment"
	KindTimeEntry    = "time_entry"
	KindGoal         = "goal"
	KindContribution = "contribution"
	KindSettings     = "settings"
)

// Actions carried by change messages.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// RecordChangeMessage tells the worker that a record changed. It carries
// only the kind, action and id; the worker reloads whatever it needs from
// the database.
type RecordChangeMessage struct {
	Kind      string    `json:"kind"`
	Action    string    `json:"action"`
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

func NewRecordChangeMessage(kind, action string, id int64) *RecordChangeMessage {
	return &RecordChangeMessage{
		Kind:      kind,
		Action:    action,
		ID:        id,
		Timestamp: time.Now(),
	}
}

func (m *RecordChangeMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func RecordChangeMessageFromJSON(data []byte) (*RecordChangeMessage, error) {
	var msg RecordChangeMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	if msg.Kind == "" || msg.Action == "" {
		return nil, errMissingFields
	}
	return &msg, nil
}
