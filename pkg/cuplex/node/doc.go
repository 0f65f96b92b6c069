// Package node implements the tree channel: nodes that send to their parent,
// broadcast to their children, and receive from their own queue with
// rendezvous handshakes.
//
// A send only completes (its Future settles) once a receiver accepted the
// package. Roots fan a send out to every child; children send upward to the
// parent. Detach, Merge and Join manage the shape of the tree and let a root
// observe that its subtree is done.
//
// Key operations:
// - New/Duplex/Spawn: build roots, duplex pairs and children
// - Send/SendErr: dispatch a value or an error
// - Recv: take the oldest package, waiting while the node can still be fed
// - Detach/Merge/Join: leave, combine and await subtrees
package node
