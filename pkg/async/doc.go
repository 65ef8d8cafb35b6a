// Package async provides a minimal future abstraction for fan-out work.
//
// Async starts a function in its own goroutine and returns a Future; Await
// blocks for the outcome. AwaitAll settles a batch of futures and returns
// every (value, error) pair in input order, which makes it suitable for
// workloads where individual failures must be collected rather than
// short-circuiting the whole batch:
//
//	futures := make([]*async.Future[string], 0, len(jobs))
//	for _, job := range jobs {
//		futures = append(futures, async.Async(ctx, job, process))
//	}
//	for _, res := range async.AwaitAll(futures...) {
//		if res.Err != nil {
//			// record the failure, keep going
//		}
//	}
//
// Futures are single-assignment: the spawned goroutine is the only writer
// and closes the done channel exactly once, so Await is safe from any
// number of goroutines.
package async
