// Package gallery owns the in-memory gallery state.
//
// Store is the single mutator of State. Sync operations describe every change
// as a Transition and hand it to Store.Apply once the network exchange has
// resolved; the presentation layer only reads Snapshot copies. Nothing is
// persisted across restarts.
package gallery
