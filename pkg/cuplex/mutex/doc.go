// Package mutex provides counting locks built on a duplex pair: the child
// end holds tokens for the root end, Acquire receives one and the returned
// Release sends it back.
package mutex
