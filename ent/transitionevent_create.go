// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"mathventure/ent/transitionevent"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// TransitionEventCreate is the builder for creating a TransitionEvent entity.
type TransitionEventCreate struct {
	config
	mutation *TransitionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *TransitionEventCreate) SetSequence(v int64) *TransitionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *TransitionEventCreate) SetTimestamp(v time.Time) *TransitionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *TransitionEventCreate) SetNillableTimestamp(v *time.Time) *TransitionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *TransitionEventCreate) SetSessionID(v string) *TransitionEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetFromLevel sets the "from_level" field.
func (_c *TransitionEventCreate) SetFromLevel(v int) *TransitionEventCreate {
	_c.mutation.SetFromLevel(v)
	return _c
}

// SetToLevel sets the "to_level" field.
func (_c *TransitionEventCreate) SetToLevel(v int) *TransitionEventCreate {
	_c.mutation.SetToLevel(v)
	return _c
}

// SetDecision sets the "decision" field.
func (_c *TransitionEventCreate) SetDecision(v string) *TransitionEventCreate {
	_c.mutation.SetDecision(v)
	return _c
}

// SetPerformanceScore sets the "performance_score" field.
func (_c *TransitionEventCreate) SetPerformanceScore(v float64) *TransitionEventCreate {
	_c.mutation.SetPerformanceScore(v)
	return _c
}

// SetRecentAccuracy sets the "recent_accuracy" field.
func (_c *TransitionEventCreate) SetRecentAccuracy(v float64) *TransitionEventCreate {
	_c.mutation.SetRecentAccuracy(v)
	return _c
}

// SetRecentAvgTimeSecs sets the "recent_avg_time_secs" field.
func (_c *TransitionEventCreate) SetRecentAvgTimeSecs(v float64) *TransitionEventCreate {
	_c.mutation.SetRecentAvgTimeSecs(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *TransitionEventCreate) SetReason(v string) *TransitionEventCreate {
	_c.mutation.SetReason(v)
	return _c
}

// Mutation returns the TransitionEventMutation object of the builder.
func (_c *TransitionEventCreate) Mutation() *TransitionEventMutation {
	return _c.mutation
}

// Save creates the TransitionEvent in the database.
func (_c *TransitionEventCreate) Save(ctx context.Context) (*TransitionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TransitionEventCreate) SaveX(ctx context.Context) *TransitionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TransitionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TransitionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TransitionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := transitionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TransitionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "TransitionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "TransitionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "TransitionEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := transitionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TransitionEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FromLevel(); !ok {
		return &ValidationError{Name: "from_level", err: errors.New(`ent: missing required field "TransitionEvent.from_level"`)}
	}
	if _, ok := _c.mutation.ToLevel(); !ok {
		return &ValidationError{Name: "to_level", err: errors.New(`ent: missing required field "TransitionEvent.to_level"`)}
	}
	if _, ok := _c.mutation.Decision(); !ok {
		return &ValidationError{Name: "decision", err: errors.New(`ent: missing required field "TransitionEvent.decision"`)}
	}
	if v, ok := _c.mutation.Decision(); ok {
		if err := transitionevent.DecisionValidator(v); err != nil {
			return &ValidationError{Name: "decision", err: fmt.Errorf(`ent: validator failed for field "TransitionEvent.decision": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PerformanceScore(); !ok {
		return &ValidationError{Name: "performance_score", err: errors.New(`ent: missing required field "TransitionEvent.performance_score"`)}
	}
	if _, ok := _c.mutation.RecentAccuracy(); !ok {
		return &ValidationError{Name: "recent_accuracy", err: errors.New(`ent: missing required field "TransitionEvent.recent_accuracy"`)}
	}
	if _, ok := _c.mutation.RecentAvgTimeSecs(); !ok {
		return &ValidationError{Name: "recent_avg_time_secs", err: errors.New(`ent: missing required field "TransitionEvent.recent_avg_time_secs"`)}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "TransitionEvent.reason"`)}
	}
	if v, ok := _c.mutation.Reason(); ok {
		if err := transitionevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "TransitionEvent.reason": %w`, err)}
		}
	}
	return nil
}

func (_c *TransitionEventCreate) sqlSave(ctx context.Context) (*TransitionEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TransitionEventCreate) createSpec() (*TransitionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &TransitionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(transitionevent.Table, sqlgraph.NewFieldSpec(transitionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(transitionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(transitionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(transitionevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.FromLevel(); ok {
		_spec.SetField(transitionevent.FieldFromLevel, field.TypeInt, value)
		_node.FromLevel = value
	}
	if value, ok := _c.mutation.ToLevel(); ok {
		_spec.SetField(transitionevent.FieldToLevel, field.TypeInt, value)
		_node.ToLevel = value
	}
	if value, ok := _c.mutation.Decision(); ok {
		_spec.SetField(transitionevent.FieldDecision, field.TypeString, value)
		_node.Decision = value
	}
	if value, ok := _c.mutation.PerformanceScore(); ok {
		_spec.SetField(transitionevent.FieldPerformanceScore, field.TypeFloat64, value)
		_node.PerformanceScore = value
	}
	if value, ok := _c.mutation.RecentAccuracy(); ok {
		_spec.SetField(transitionevent.FieldRecentAccuracy, field.TypeFloat64, value)
		_node.RecentAccuracy = value
	}
	if value, ok := _c.mutation.RecentAvgTimeSecs(); ok {
		_spec.SetField(transitionevent.FieldRecentAvgTimeSecs, field.TypeFloat64, value)
		_node.RecentAvgTimeSecs = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(transitionevent.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	return _node, _spec
}

// TransitionEventCreateBulk is the builder for creating many TransitionEvent entities in bulk.
type TransitionEventCreateBulk struct {
	config
	err      error
	builders []*TransitionEventCreate
}

// Save creates the TransitionEvent entities in the database.
func (_c *TransitionEventCreateBulk) Save(ctx context.Context) ([]*TransitionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TransitionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TransitionEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TransitionEventCreateBulk) SaveX(ctx context.Context) []*TransitionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TransitionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TransitionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
