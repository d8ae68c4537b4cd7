/*
Package domain contains the core value types of the devconsole command engine.

It defines what a resolved command is, how its outcome is reported and how that
outcome is colored for display. The package is kept pure and free of I/O, so the
resolver, the output buffer and every frontend can share it.

# Key Entities

  - Kind: the classification of a registry entry (Property, List, Action) or NotFound.
  - ConsoleError: the five typed failures a command can produce.
  - Result: the outcome of one engine operation (Ok text or a ConsoleError).
  - Span: one colored fragment of console output; Palette holds the fixed colors.
  - LifecycleHooks: observability callbacks fired once per dispatched command.
*/
package domain
