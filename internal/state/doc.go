// Package state tracks the session's dataset between the loader and the UI.
//
// # Overview
//
// The dataset is fetched by a Bubble Tea command that runs off the UI loop.
// Store is the hand-off point: the loader writes to it, the UI reads
// snapshots from it.
//
//	Loader (command goroutine):     UI (event loop):
//	┌──────────────────────┐        ┌──────────────────────┐
//	│ store.BeginLoad()    │        │                      │
//	│ source.Fetch()       │        │  spinner             │
//	│ dataset.Parse()      │        │                      │
//	│ store.Publish()      │───────→│  store.Snapshot()    │
//	└──────────────────────┘ (mutex)│  gate form on Ready()│
//	                                └──────────────────────┘
//
// # Lifecycle
//
//	pending ──BeginLoad──> loading ──Publish(ds, nil)──> ready
//	                          │
//	                          └──Publish(nil, err)──> failed ──BeginLoad──> loading
//
// Ready is terminal. Once a dataset is published, BeginLoad and Publish
// return ErrAlreadyLoaded and the snapshot never changes again. This keeps
// the dataset fixed for the whole session; a failed load can be retried.
//
// # Snapshots
//
// Snapshot returns a copy by value. The *dataset.Dataset pointer is shared
// because datasets are immutable; errors are re-wrapped so callers never hold
// the stored instance.
package state
