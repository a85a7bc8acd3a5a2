// Package scheduler implements a worker pool for executing async work with futures.
//
// The board engine submits every backend commit (item moves, section reorders,
// delayed checks) through a Scheduler, so drag events are handled without
// waiting on the network and a new drag can start while a previous commit is
// still in flight.
//
// # Architecture Overview
//
//	AddWork(fn) ──► submit ──► run() ──► pending (FIFO)
//	                             │
//	                  idle > 0 ──┤ dispatch()
//	                             ▼
//	                   go execute(task) ── result chan ──► Future
//	                             │
//	                  finished ◄─┘   (idle++)
//
// run() owns the pending queue and the idle counter. At most nbWorkers tasks
// execute at once. Queue depth and running work are exported as the
// shoplist_scheduler_queued_work and shoplist_scheduler_running_work gauges.
//
// # Futures
//
// AddWork returns immediately with a Future:
//
//   - C() receives exactly one Result{Data, Err}
//   - Wait(ctx) blocks for the result or ctx
//   - Stop() cancels the context handed to the work function
//
// A panic inside a work function is recovered and delivered as an error result.
//
// # Shutdown
//
// Close() is idempotent:
//
//  1. the main context is cancelled (every running work sees ctx.Done())
//  2. queued work that never started resolves with context.Canceled
//  3. Close blocks until in-flight work returns
//
// AddWork after Close resolves immediately with context.Canceled.
//
// # Usage Example
//
//	sched := scheduler.NewScheduler(2)
//	defer sched.Close()
//
//	future := sched.AddWork(func(ctx context.Context) (any, error) {
//	    return nil, backend.MoveItem(ctx, id, req)
//	})
//
//	result, err := future.Wait(ctx)
package scheduler
