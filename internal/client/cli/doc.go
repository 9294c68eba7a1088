// Package cli provides the interactive SciCon command-line client.
//
// It wires configuration, the local session store, the authenticated API
// client, and an interactive REPL. Typical flow: restore the previous
// session from disk, then execute user commands.
//
// Key features:
//   - Login / Register / Logout
//   - Dashboard (role-aware, guarded by a session check)
//   - Browse events and register attendance
//   - Submit papers and assign reviewers
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
