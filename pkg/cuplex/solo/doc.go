// Package solo contains single-value, synchronous helpers that operate on
// the Result[T] messages received from a node. Workers use them to turn an
// incoming message into the reply they send back.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Switch: move from Result[In] to Result[Out]
// - Map: transform successful values
// - Try: call a function (Out, error) and convert error to failure
// - Tee: side-effect helper
// - Finally: reduce to a concrete value via success/error handlers
package solo
