// Package step is the animation engine shared by every algorithm in stepviz.
//
// An algorithm reports each observable operation (comparison, swap, visit,
// enqueue, relaxation, character probe, ...) by calling Tracer.Emit. The
// tracer then:
//
//  1. checks for cancellation (context, WithCancel poll, Controller.Cancel);
//  2. numbers the event, deep-copies its snapshot and hands it to the Handler;
//  3. suspends for Delay() through the configured Sleeper, and keeps waiting
//     while a Controller is paused;
//  4. checks for cancellation again.
//
// A cancelled run surfaces ErrCancelled from the next checkpoint and the
// algorithm returns immediately, leaving its partial state as is. Completed
// runs end with Finish, which emits a single KindDone event.
//
// Speed:
//
//	Delay = (101 − speed) × unit, speed ∈ [1,100]
//
// so speed 100 waits one unit and speed 1 waits a hundred. The unit defaults
// to 10ms; NoDelay skips suspension entirely, which is what tests use.
//
// A nil *Tracer is valid and silent: Emit only checks the context. This lets
// every algorithm double as a plain reference implementation.
//
// Snapshots:
//
//	Every state attached to an Event is copied at emission time, so a handler
//	may retain events and render them asynchronously without torn reads.
package step
