package scheduler

import (
	"context"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

var (
	queuedWork = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "shoplist_scheduler_queued_work",
		Help: "Work waiting for a free worker",
	})
	runningWork = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "shoplist_scheduler_running_work",
		Help: "Work currently executing",
	})
)

type task struct {
	work   Work[any]
	result chan Result[any]
	ctx    context.Context
}

// Scheduler runs submitted work on a bounded pool of goroutines. Work beyond
// the pool size waits in submission order.
type Scheduler struct {
	submit   chan task
	finished chan struct{}
	stop     chan struct{}
	stopped  chan struct{}

	ctx    context.Context
	cancel context.CancelFunc

	// owned by the run loop
	idle    int
	pending []task

	running   sync.WaitGroup
	closeOnce sync.Once
}

func NewScheduler(nbWorkers int) *Scheduler {
	if nbWorkers < 1 {
		nbWorkers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		submit:   make(chan task),
		finished: make(chan struct{}, nbWorkers),
		stop:     make(chan struct{}),
		stopped:  make(chan struct{}),
		ctx:      ctx,
		cancel:   cancel,
		idle:     nbWorkers,
	}
	go s.run()
	return s
}

// AddWork queues w and returns a future holding its result.
func (s *Scheduler) AddWork(w Work[any]) *Future[Result[any]] {
	result := make(chan Result[any], 1)
	ctx, cancel := context.WithCancel(s.ctx)

	select {
	case <-s.ctx.Done():
		cancel()
		result <- Result[any]{Err: context.Canceled}
	case s.submit <- task{work: w, result: result, ctx: ctx}:
	}

	return NewFuture(result, cancel)
}

// Close cancels pending work and waits for running work to return.
func (s *Scheduler) Close() {
	s.closeOnce.Do(func() {
		s.cancel()
		close(s.stop)
		<-s.stopped
	})
}

func (s *Scheduler) run() {
	defer close(s.stopped)

	for {
		select {
		case t := <-s.submit:
			s.pending = append(s.pending, t)
			queuedWork.Inc()
		case <-s.finished:
			s.idle++
		case <-s.stop:
			for _, t := range s.pending {
				t.result <- Result[any]{Err: context.Canceled}
				queuedWork.Dec()
			}
			s.pending = nil
			s.running.Wait()
			return
		}
		s.dispatch()
	}
}

func (s *Scheduler) dispatch() {
	for s.idle > 0 && len(s.pending) > 0 {
		t := s.pending[0]
		s.pending = s.pending[1:]
		s.idle--
		queuedWork.Dec()

		s.running.Add(1)
		runningWork.Inc()
		go s.execute(t)
	}
}

func (s *Scheduler) execute(t task) {
	defer func() {
		if rec := recover(); rec != nil {
			zap.S().Named("scheduler").Errorw("work panicked", "panic", rec)
			t.result <- Result[any]{Err: fmt.Errorf("work panicked: %v", rec)}
		}
		runningWork.Dec()
		s.finished <- struct{}{}
		s.running.Done()
	}()

	v, err := t.work(t.ctx)
	t.result <- Result[any]{Data: v, Err: err}
}
