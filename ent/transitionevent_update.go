// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"mathventure/ent/predicate"
	"mathventure/ent/transitionevent"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// TransitionEventUpdate is the builder for updating TransitionEvent entities.
type TransitionEventUpdate struct {
	config
	hooks    []Hook
	mutation *TransitionEventMutation
}

// Where appends a list predicates to the TransitionEventUpdate builder.
func (_u *TransitionEventUpdate) Where(ps ...predicate.TransitionEvent) *TransitionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *TransitionEventUpdate) SetSessionID(v string) *TransitionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TransitionEventUpdate) SetNillableSessionID(v *string) *TransitionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetFromLevel sets the "from_level" field.
func (_u *TransitionEventUpdate) SetFromLevel(v int) *TransitionEventUpdate {
	_u.mutation.ResetFromLevel()
	_u.mutation.SetFromLevel(v)
	return _u
}

// SetNillableFromLevel sets the "from_level" field if the given value is not nil.
func (_u *TransitionEventUpdate) SetNillableFromLevel(v *int) *TransitionEventUpdate {
	if v != nil {
		_u.SetFromLevel(*v)
	}
	return _u
}

// AddFromLevel adds value to the "from_level" field.
func (_u *TransitionEventUpdate) AddFromLevel(v int) *TransitionEventUpdate {
	_u.mutation.AddFromLevel(v)
	return _u
}

// SetToLevel sets the "to_level" field.
func (_u *TransitionEventUpdate) SetToLevel(v int) *TransitionEventUpdate {
	_u.mutation.ResetToLevel()
	_u.mutation.SetToLevel(v)
	return _u
}

// SetNillableToLevel sets the "to_level" field if the given value is not nil.
func (_u *TransitionEventUpdate) SetNillableToLevel(v *int) *TransitionEventUpdate {
	if v != nil {
		_u.SetToLevel(*v)
	}
	return _u
}

// AddToLevel adds value to the "to_level" field.
func (_u *TransitionEventUpdate) AddToLevel(v int) *TransitionEventUpdate {
	_u.mutation.AddToLevel(v)
	return _u
}

// SetDecision sets the "decision" field.
func (_u *TransitionEventUpdate) SetDecision(v string) *TransitionEventUpdate {
	_u.mutation.SetDecision(v)
	return _u
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_u *TransitionEventUpdate) SetNillableDecision(v *string) *TransitionEventUpdate {
	if v != nil {
		_u.SetDecision(*v)
	}
	return _u
}

// SetPerformanceScore sets the "performance_score" field.
func (_u *TransitionEventUpdate) SetPerformanceScore(v float64) *TransitionEventUpdate {
	_u.mutation.ResetPerformanceScore()
	_u.mutation.SetPerformanceScore(v)
	return _u
}

// SetNillablePerformanceScore sets the "performance_score" field if the given value is not nil.
func (_u *TransitionEventUpdate) SetNillablePerformanceScore(v *float64) *TransitionEventUpdate {
	if v != nil {
		_u.SetPerformanceScore(*v)
	}
	return _u
}

// AddPerformanceScore adds value to the "performance_score" field.
func (_u *TransitionEventUpdate) AddPerformanceScore(v float64) *TransitionEventUpdate {
	_u.mutation.AddPerformanceScore(v)
	return _u
}

// SetRecentAccuracy sets the "recent_accuracy" field.
func (_u *TransitionEventUpdate) SetRecentAccuracy(v float64) *TransitionEventUpdate {
	_u.mutation.ResetRecentAccuracy()
	_u.mutation.SetRecentAccuracy(v)
	return _u
}

// SetNillableRecentAccuracy sets the "recent_accuracy" field if the given value is not nil.
func (_u *TransitionEventUpdate) SetNillableRecentAccuracy(v *float64) *TransitionEventUpdate {
	if v != nil {
		_u.SetRecentAccuracy(*v)
	}
	return _u
}

// AddRecentAccuracy adds value to the "recent_accuracy" field.
func (_u *TransitionEventUpdate) AddRecentAccuracy(v float64) *TransitionEventUpdate {
	_u.mutation.AddRecentAccuracy(v)
	return _u
}

// SetRecentAvgTimeSecs sets the "recent_avg_time_secs" field.
func (_u *TransitionEventUpdate) SetRecentAvgTimeSecs(v float64) *TransitionEventUpdate {
	_u.mutation.ResetRecentAvgTimeSecs()
	_u.mutation.SetRecentAvgTimeSecs(v)
	return _u
}

// SetNillableRecentAvgTimeSecs sets the "recent_avg_time_secs" field if the given value is not nil.
func (_u *TransitionEventUpdate) SetNillableRecentAvgTimeSecs(v *float64) *TransitionEventUpdate {
	if v != nil {
		_u.SetRecentAvgTimeSecs(*v)
	}
	return _u
}

// AddRecentAvgTimeSecs adds value to the "recent_avg_time_secs" field.
func (_u *TransitionEventUpdate) AddRecentAvgTimeSecs(v float64) *TransitionEventUpdate {
	_u.mutation.AddRecentAvgTimeSecs(v)
	return _u
}

// SetReason sets the "reason" field.
func (_u *TransitionEventUpdate) SetReason(v string) *TransitionEventUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *TransitionEventUpdate) SetNillableReason(v *string) *TransitionEventUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// Mutation returns the TransitionEventMutation object of the builder.
func (_u *TransitionEventUpdate) Mutation() *TransitionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TransitionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TransitionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TransitionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TransitionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TransitionEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := transitionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TransitionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Decision(); ok {
		if err := transitionevent.DecisionValidator(v); err != nil {
			return &ValidationError{Name: "decision", err: fmt.Errorf(`ent: validator failed for field "TransitionEvent.decision": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := transitionevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "TransitionEvent.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *TransitionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transitionevent.Table, transitionevent.Columns, sqlgraph.NewFieldSpec(transitionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(transitionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromLevel(); ok {
		_spec.SetField(transitionevent.FieldFromLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFromLevel(); ok {
		_spec.AddField(transitionevent.FieldFromLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ToLevel(); ok {
		_spec.SetField(transitionevent.FieldToLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedToLevel(); ok {
		_spec.AddField(transitionevent.FieldToLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Decision(); ok {
		_spec.SetField(transitionevent.FieldDecision, field.TypeString, value)
	}
	if value, ok := _u.mutation.PerformanceScore(); ok {
		_spec.SetField(transitionevent.FieldPerformanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPerformanceScore(); ok {
		_spec.AddField(transitionevent.FieldPerformanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RecentAccuracy(); ok {
		_spec.SetField(transitionevent.FieldRecentAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRecentAccuracy(); ok {
		_spec.AddField(transitionevent.FieldRecentAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RecentAvgTimeSecs(); ok {
		_spec.SetField(transitionevent.FieldRecentAvgTimeSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRecentAvgTimeSecs(); ok {
		_spec.AddField(transitionevent.FieldRecentAvgTimeSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(transitionevent.FieldReason, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transitionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TransitionEventUpdateOne is the builder for updating a single TransitionEvent entity.
type TransitionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TransitionEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *TransitionEventUpdateOne) SetSessionID(v string) *TransitionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TransitionEventUpdateOne) SetNillableSessionID(v *string) *TransitionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetFromLevel sets the "from_level" field.
func (_u *TransitionEventUpdateOne) SetFromLevel(v int) *TransitionEventUpdateOne {
	_u.mutation.ResetFromLevel()
	_u.mutation.SetFromLevel(v)
	return _u
}

// SetNillableFromLevel sets the "from_level" field if the given value is not nil.
func (_u *TransitionEventUpdateOne) SetNillableFromLevel(v *int) *TransitionEventUpdateOne {
	if v != nil {
		_u.SetFromLevel(*v)
	}
	return _u
}

// AddFromLevel adds value to the "from_level" field.
func (_u *TransitionEventUpdateOne) AddFromLevel(v int) *TransitionEventUpdateOne {
	_u.mutation.AddFromLevel(v)
	return _u
}

// SetToLevel sets the "to_level" field.
func (_u *TransitionEventUpdateOne) SetToLevel(v int) *TransitionEventUpdateOne {
	_u.mutation.ResetToLevel()
	_u.mutation.SetToLevel(v)
	return _u
}

// SetNillableToLevel sets the "to_level" field if the given value is not nil.
func (_u *TransitionEventUpdateOne) SetNillableToLevel(v *int) *TransitionEventUpdateOne {
	if v != nil {
		_u.SetToLevel(*v)
	}
	return _u
}

// AddToLevel adds value to the "to_level" field.
func (_u *TransitionEventUpdateOne) AddToLevel(v int) *TransitionEventUpdateOne {
	_u.mutation.AddToLevel(v)
	return _u
}

// SetDecision sets the "decision" field.
func (_u *TransitionEventUpdateOne) SetDecision(v string) *TransitionEventUpdateOne {
	_u.mutation.SetDecision(v)
	return _u
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_u *TransitionEventUpdateOne) SetNillableDecision(v *string) *TransitionEventUpdateOne {
	if v != nil {
		_u.SetDecision(*v)
	}
	return _u
}

// SetPerformanceScore sets the "performance_score" field.
func (_u *TransitionEventUpdateOne) SetPerformanceScore(v float64) *TransitionEventUpdateOne {
	_u.mutation.ResetPerformanceScore()
	_u.mutation.SetPerformanceScore(v)
	return _u
}

// SetNillablePerformanceScore sets the "performance_score" field if the given value is not nil.
func (_u *TransitionEventUpdateOne) SetNillablePerformanceScore(v *float64) *TransitionEventUpdateOne {
	if v != nil {
		_u.SetPerformanceScore(*v)
	}
	return _u
}

// AddPerformanceScore adds value to the "performance_score" field.
func (_u *TransitionEventUpdateOne) AddPerformanceScore(v float64) *TransitionEventUpdateOne {
	_u.mutation.AddPerformanceScore(v)
	return _u
}

// SetRecentAccuracy sets the "recent_accuracy" field.
func (_u *TransitionEventUpdateOne) SetRecentAccuracy(v float64) *TransitionEventUpdateOne {
	_u.mutation.ResetRecentAccuracy()
	_u.mutation.SetRecentAccuracy(v)
	return _u
}

// SetNillableRecentAccuracy sets the "recent_accuracy" field if the given value is not nil.
func (_u *TransitionEventUpdateOne) SetNillableRecentAccuracy(v *float64) *TransitionEventUpdateOne {
	if v != nil {
		_u.SetRecentAccuracy(*v)
	}
	return _u
}

// AddRecentAccuracy adds value to the "recent_accuracy" field.
func (_u *TransitionEventUpdateOne) AddRecentAccuracy(v float64) *TransitionEventUpdateOne {
	_u.mutation.AddRecentAccuracy(v)
	return _u
}

// SetRecentAvgTimeSecs sets the "recent_avg_time_secs" field.
func (_u *TransitionEventUpdateOne) SetRecentAvgTimeSecs(v float64) *TransitionEventUpdateOne {
	_u.mutation.ResetRecentAvgTimeSecs()
	_u.mutation.SetRecentAvgTimeSecs(v)
	return _u
}

// SetNillableRecentAvgTimeSecs sets the "recent_avg_time_secs" field if the given value is not nil.
func (_u *TransitionEventUpdateOne) SetNillableRecentAvgTimeSecs(v *float64) *TransitionEventUpdateOne {
	if v != nil {
		_u.SetRecentAvgTimeSecs(*v)
	}
	return _u
}

// AddRecentAvgTimeSecs adds value to the "recent_avg_time_secs" field.
func (_u *TransitionEventUpdateOne) AddRecentAvgTimeSecs(v float64) *TransitionEventUpdateOne {
	_u.mutation.AddRecentAvgTimeSecs(v)
	return _u
}

// SetReason sets the "reason" field.
func (_u *TransitionEventUpdateOne) SetReason(v string) *TransitionEventUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *TransitionEventUpdateOne) SetNillableReason(v *string) *TransitionEventUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// Mutation returns the TransitionEventMutation object of the builder.
func (_u *TransitionEventUpdateOne) Mutation() *TransitionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the TransitionEventUpdate builder.
func (_u *TransitionEventUpdateOne) Where(ps ...predicate.TransitionEvent) *TransitionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TransitionEventUpdateOne) Select(field string, fields ...string) *TransitionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TransitionEvent entity.
func (_u *TransitionEventUpdateOne) Save(ctx context.Context) (*TransitionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TransitionEventUpdateOne) SaveX(ctx context.Context) *TransitionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TransitionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TransitionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TransitionEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := transitionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TransitionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Decision(); ok {
		if err := transitionevent.DecisionValidator(v); err != nil {
			return &ValidationError{Name: "decision", err: fmt.Errorf(`ent: validator failed for field "TransitionEvent.decision": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := transitionevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "TransitionEvent.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *TransitionEventUpdateOne) sqlSave(ctx context.Context) (_node *TransitionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transitionevent.Table, transitionevent.Columns, sqlgraph.NewFieldSpec(transitionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TransitionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, transitionevent.FieldID)
		for _, f := range fields {
			if !transitionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != transitionevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(transitionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromLevel(); ok {
		_spec.SetField(transitionevent.FieldFromLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFromLevel(); ok {
		_spec.AddField(transitionevent.FieldFromLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ToLevel(); ok {
		_spec.SetField(transitionevent.FieldToLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedToLevel(); ok {
		_spec.AddField(transitionevent.FieldToLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Decision(); ok {
		_spec.SetField(transitionevent.FieldDecision, field.TypeString, value)
	}
	if value, ok := _u.mutation.PerformanceScore(); ok {
		_spec.SetField(transitionevent.FieldPerformanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPerformanceScore(); ok {
		_spec.AddField(transitionevent.FieldPerformanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RecentAccuracy(); ok {
		_spec.SetField(transitionevent.FieldRecentAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRecentAccuracy(); ok {
		_spec.AddField(transitionevent.FieldRecentAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RecentAvgTimeSecs(); ok {
		_spec.SetField(transitionevent.FieldRecentAvgTimeSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRecentAvgTimeSecs(); ok {
		_spec.AddField(transitionevent.FieldRecentAvgTimeSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(transitionevent.FieldReason, field.TypeString, value)
	}
	_node = &TransitionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transitionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
