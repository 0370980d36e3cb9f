// Package loadtest runs virtual users against the gateway and aggregates
// request statistics.
//
// A virtual user owns one TaskSet for its whole life. Tasks close over the
// state of that user only, so no data is shared between users.
package loadtest

import (
	"context"
	"errors"
	"math/rand/v2"
)

// ErrStopUser ends the virtual user whose task returned it.
var ErrStopUser = errors.New("stop user")

// ErrNoTasks is returned when a task set has nothing to run.
var ErrNoTasks = errors.New("task set has no tasks")

// Task is one unit of user behaviour.
type Task struct {
	Name string
	// Weight is the relative pick chance in a weighted set. Zero counts as one.
	Weight int
	Run    func(ctx context.Context) error
}

// TaskSet is the behaviour of one virtual user.
type TaskSet struct {
	// OnStart runs once before the first task.
	OnStart    func(ctx context.Context) error
	Tasks      []Task
	sequential bool
}

// Weighted returns a set that picks tasks at random, proportionally to weight.
func Weighted(tasks ...Task) *TaskSet {
	return &TaskSet{Tasks: tasks}
}

// Sequential returns a set that runs tasks in declaration order, then
// starts over.
func Sequential(tasks ...Task) *TaskSet {
	return &TaskSet{Tasks: tasks, sequential: true}
}

// WithOnStart sets the hook run before the first task.
func (ts *TaskSet) WithOnStart(fn func(ctx context.Context) error) *TaskSet {
	ts.OnStart = fn
	return ts
}

// picker yields the next task of a set. It is owned by a single user.
type picker struct {
	tasks      []Task
	sequential bool
	cursor     int
	total      int
}

func newPicker(ts *TaskSet) (*picker, error) {
	if ts == nil || len(ts.Tasks) == 0 {
		return nil, ErrNoTasks
	}
	p := &picker{tasks: ts.Tasks, sequential: ts.sequential}
	for _, t := range ts.Tasks {
		p.total += weight(t)
	}
	return p, nil
}

func weight(t Task) int {
	if t.Weight <= 0 {
		return 1
	}
	return t.Weight
}

func (p *picker) next() Task {
	if p.sequential {
		t := p.tasks[p.cursor]
		p.cursor = (p.cursor + 1) % len(p.tasks)
		return t
	}

	n := rand.IntN(p.total)
	for _, t := range p.tasks {
		n -= weight(t)
		if n < 0 {
			return t
		}
	}
	return p.tasks[len(p.tasks)-1]
}
