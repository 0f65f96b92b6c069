// Package core contains node plumbing utilities: worker and logger
// configuration via context, and helpers that push many values into a node
// or drain results out of it. It does not define tree semantics; those live
// in package node, and packages worker and mutex build on both.
package core
