// Package ui provides the certificate lookup form for certcheck.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program with a single view: a header, a form with one
// text input, a result panel and a status footer. It is built from bubbles
// components (textinput, spinner, key) and styled with lipgloss.
//
// # Package Structure
//
//   - app.go: Model, Options, Init/Update/View and Run
//   - commands.go: Bubble Tea commands and the messages they produce
//   - form.go: Lookup state machine (idle, loading, valid, not found, dataset error)
//   - messages.go: User-facing text and the error-to-message mapping
//   - view.go: Rendering of header, form, result and footer
//   - help.go: Keyboard shortcut overlay
//   - keys.go: Key bindings
//   - theme.go: Color palettes and lipgloss styles
//
// # Event Flow
//
//  1. Init starts the dataset load as a command; the spinner runs meanwhile
//  2. datasetMsg carries the store snapshot back; the input gains focus when ready
//  3. enter validates the query and schedules lookupDueMsg after the lookup delay
//  4. lookupDueMsg runs the scan synchronously and records the outcome in the form
//  5. esc clears the input and result unless a lookup is pending
//
// A failed load keeps the form disabled and offers ctrl+r to retry. Once a
// dataset is loaded it is never replaced.
//
// # Keyboard Shortcuts
//
//   - enter: Validate certificate
//   - esc: Clear
//   - ctrl+r: Retry loading the database after a failure
//   - ctrl+t: Cycle theme (saved to preferences)
//   - f1: Toggle help
//   - ctrl+c: Quit
package ui
