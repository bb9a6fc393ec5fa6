// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"mathventure/ent/transitionevent"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// TransitionEvent is the model entity for the TransitionEvent schema.
type TransitionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Links to SessionEvent
	SessionID string `json:"session_id,omitempty"`
	// Difficulty before the decision
	FromLevel int `json:"from_level,omitempty"`
	// Difficulty after the decision
	ToLevel int `json:"to_level,omitempty"`
	// INCREASE, DECREASE, or MAINTAIN
	Decision string `json:"decision,omitempty"`
	// Blended accuracy and speed score in [0, 1]
	PerformanceScore float64 `json:"performance_score,omitempty"`
	// Accuracy over the recent window
	RecentAccuracy float64 `json:"recent_accuracy,omitempty"`
	// Average answer time over the recent window
	RecentAvgTimeSecs float64 `json:"recent_avg_time_secs,omitempty"`
	// Human-readable explanation shown to the player
	Reason       string `json:"reason,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TransitionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case transitionevent.FieldPerformanceScore, transitionevent.FieldRecentAccuracy, transitionevent.FieldRecentAvgTimeSecs:
			values[i] = new(sql.NullFloat64)
		case transitionevent.FieldID, transitionevent.FieldSequence, transitionevent.FieldFromLevel, transitionevent.FieldToLevel:
			values[i] = new(sql.NullInt64)
		case transitionevent.FieldSessionID, transitionevent.FieldDecision, transitionevent.FieldReason:
			values[i] = new(sql.NullString)
		case transitionevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TransitionEvent fields.
func (_m *TransitionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case transitionevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case transitionevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case transitionevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case transitionevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case transitionevent.FieldFromLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field from_level", values[i])
			} else if value.Valid {
				_m.FromLevel = int(value.Int64)
			}
		case transitionevent.FieldToLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field to_level", values[i])
			} else if value.Valid {
				_m.ToLevel = int(value.Int64)
			}
		case transitionevent.FieldDecision:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field decision", values[i])
			} else if value.Valid {
				_m.Decision = value.String
			}
		case transitionevent.FieldPerformanceScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field performance_score", values[i])
			} else if value.Valid {
				_m.PerformanceScore = value.Float64
			}
		case transitionevent.FieldRecentAccuracy:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field recent_accuracy", values[i])
			} else if value.Valid {
				_m.RecentAccuracy = value.Float64
			}
		case transitionevent.FieldRecentAvgTimeSecs:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field recent_avg_time_secs", values[i])
			} else if value.Valid {
				_m.RecentAvgTimeSecs = value.Float64
			}
		case transitionevent.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TransitionEvent.
// This includes values selected through modifiers, order, etc.
func (_m *TransitionEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TransitionEvent.
// Note that you need to call TransitionEvent.Unwrap() before calling this method if this TransitionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TransitionEvent) Update() *TransitionEventUpdateOne {
	return NewTransitionEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TransitionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TransitionEvent) Unwrap() *TransitionEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TransitionEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TransitionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("TransitionEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("from_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.FromLevel))
	builder.WriteString(", ")
	builder.WriteString("to_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.ToLevel))
	builder.WriteString(", ")
	builder.WriteString("decision=")
	builder.WriteString(_m.Decision)
	builder.WriteString(", ")
	builder.WriteString("performance_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.PerformanceScore))
	builder.WriteString(", ")
	builder.WriteString("recent_accuracy=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecentAccuracy))
	builder.WriteString(", ")
	builder.WriteString("recent_avg_time_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecentAvgTimeSecs))
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteByte(')')
	return builder.String()
}

// TransitionEvents is a parsable slice of TransitionEvent.
type TransitionEvents []*TransitionEvent
