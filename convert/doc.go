// Package convert implements the two halves of the value bridge: ToValue
// walks a host object graph into the canonical value model, and FromValue
// reconstructs host-native Go values from it.
//
// Both directions must run while the host graph lock (if any) is held; they
// are the only parts of the bridge that touch host objects. See the root
// package for the locking discipline.
package convert
