// Package cli provides the interactive journal command-line host.
//
// It wires configuration, logging, the encryption codec, the encrypted file
// store (with an optional S3 replica) and the journal service, then runs a
// REPL on standard input until the user exits or the process is signalled.
//
// Commands:
//   - add <text>          append an entry
//   - list [n]            newest first, optionally the n most recent
//   - date YYYY-MM-DD     entries of one calendar day (UTC)
//   - status              entry count and persistence health
//   - help, exit | quit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
