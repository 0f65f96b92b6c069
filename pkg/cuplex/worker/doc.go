// Package worker runs tasks on the child end of a duplex pair and exposes the
// root end to the caller.
//
// Common usage:
// - Spawn: run one task, receive what it sends, send it values
// - Pool/PoolOf: merge several workers behind one root; Recv fans in from
//   all of them, Send broadcasts to all of them
// - Serve: a task that answers each received value until its context ends
//
// A worker always detaches when its task returns, so Join on the returned
// root waits for the whole pool and Recv reports cuplex.ErrNoChildren once
// every worker is done and nothing is left queued.
package worker
