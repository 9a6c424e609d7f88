package scheduler

import (
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/go-veil/internal/ast"
	"github.com/cwbudde/go-veil/internal/interp/runtime"
)

// Scheduler owns the named-task registry and the worker pool used for
// blocking offload. One Scheduler belongs to exactly one evaluator
// instance; its registry must only be written to from Enroll/Offload, both
// of which take the registry lock, so concurrent tasks calling Await
// (which only reads the registry) never race with a sibling task's
// Enroll.
type Scheduler struct {
	mu    sync.Mutex
	tasks map[string]*Task
	pool  *WorkerPool
	log   io.Writer
}

// New builds a Scheduler whose worker pool has poolSize workers (defaulted
// to DefaultPoolSize when poolSize <= 0). Diagnostics ("[Async ...]",
// "[Await ...]") are written to log.
func New(poolSize int, log io.Writer) *Scheduler {
	return &Scheduler{
		tasks: make(map[string]*Task),
		pool:  NewWorkerPool(poolSize),
		log:   log,
	}
}

// Close shuts down the worker pool, waiting for in-flight offloaded jobs.
func (s *Scheduler) Close() { s.pool.Close() }

func (s *Scheduler) register(name string) *Task {
	if name == "" {
		name = "task_" + uuid.NewString()
	}
	t := &Task{Name: name, done: make(chan struct{})}
	s.mu.Lock()
	s.tasks[name] = t
	s.mu.Unlock()
	return t
}

func (s *Scheduler) lookup(name string) (*Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[name]
	return t, ok
}

// Enroll registers a named suspension and starts running fn on its own
// goroutine immediately, returning a handle. fn is the task body closure
// built by the evaluator (it has already captured its own environment
// clone).
func (s *Scheduler) Enroll(name string, fn func() (runtime.Value, error)) *Task {
	t := s.register(name)
	fmt.Fprintf(s.log, "[Async %s Start]\n", t.Name)
	go func() {
		defer close(t.done)
		t.result, t.err = fn()
		fmt.Fprintf(s.log, "[Async %s End]\n", t.Name)
	}()
	return t
}

// Offload registers a named suspension and runs fn on the bounded worker
// pool instead of its own goroutine, for callables that need the
// blocking-fiber escape hatch rather than full concurrency.
func (s *Scheduler) Offload(name string, fn func() (runtime.Value, error)) *Task {
	t := s.register(name)
	s.pool.Submit(func() {
		defer close(t.done)
		t.result, t.err = fn()
	})
	return t
}

// Await resolves an AwaitTarget: a single name, a flat list (joined,
// concurrent, result order matches the name order given regardless of
// completion order), or a list of nested targets (recursive, same
// ordering guarantee one level down).
func (s *Scheduler) Await(target ast.AwaitTarget) (runtime.Value, error) {
	switch {
	case target.Name != "":
		return s.awaitSingle(target.Name)
	case target.Flat != nil:
		return s.awaitFlat(target.Flat)
	case target.Nested != nil:
		return s.awaitNested(target.Nested)
	default:
		return nil, nil
	}
}

func (s *Scheduler) awaitSingle(name string) (runtime.Value, error) {
	t, ok := s.lookup(name)
	if !ok {
		fmt.Fprintf(s.log, "[Await %s] (no such task)\n", name)
		return nil, nil
	}
	fmt.Fprintf(s.log, "[Await %s] waiting...\n", name)
	v, err := t.Join()
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(s.log, "[Await %s] complete with value: %s\n", name, displayValue(v))
	return v, nil
}

func (s *Scheduler) awaitFlat(names []string) (runtime.Value, error) {
	results := make([]runtime.Value, len(names))
	var g errgroup.Group
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			v, err := s.awaitSingle(name)
			if err != nil {
				return err
			}
			results[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &runtime.SequenceValue{Elements: results}, nil
}

func (s *Scheduler) awaitNested(nested []ast.AwaitTarget) (runtime.Value, error) {
	results := make([]runtime.Value, len(nested))
	var g errgroup.Group
	for i, target := range nested {
		i, target := i, target
		g.Go(func() error {
			v, err := s.Await(target)
			if err != nil {
				return err
			}
			results[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &runtime.SequenceValue{Elements: results}, nil
}

func displayValue(v runtime.Value) string {
	if v == nil {
		return "null"
	}
	return v.String()
}
