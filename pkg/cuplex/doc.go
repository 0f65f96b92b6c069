// Package cuplex contains the shared vocabulary of the cuplex tree channels:
// the Result[T] envelope that travels between nodes and the error kinds
// raised by nodes, workers, pools and mutexes.
//
// The channel node itself lives in package node; workers and pools in
// package worker; counting locks in package mutex.
package cuplex
