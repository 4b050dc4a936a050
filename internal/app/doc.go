// Package app is the composition root for certcheck.
//
// # Overview
//
// Run wires configuration, logging, the dataset loader and the UI together
// and blocks until the user quits.
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.LoadDotEnv()  Seed CERTCHECK_* from .env
//	       ├─────> config.Load()        TOML + environment + flag overrides
//	       ├─────> logging.New()        zap logger writing to the log file
//	       ├─────> dataset.NewSource()  File or HTTP source
//	       ├─────> NewLoader()          Fetch + parse, publishes to state.Store
//	       └─────> ui.Run()             Start TUI (blocks)
//
// The loader does not run here. The UI starts it as a Bubble Tea command on
// Init so the spinner is visible while the resource downloads, and offers a
// retry when it fails.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Config or .env file unreadable or invalid
//   - Log file cannot be created
//   - Dataset location empty or an invalid URL
//   - Terminal initialization failure
//
// Recoverable errors (shown in the UI, logged):
//   - Dataset missing, unreachable or unparsable
//   - Empty query, certificate not found
package app
