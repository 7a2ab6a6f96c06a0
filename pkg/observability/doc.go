/*
Package observability provides observers for serial branches.

Every observer here implements serial.Observer and is attached with
serial.WithObserver. Observers run synchronously inside Step and never change
the decision being applied.

  - Hooks: plain callbacks split by action (step, transition, exit).
  - Logging: structured slog records for every decision.
  - Metrics: Prometheus counters for steps, transitions and exits.
  - Multi: fan-out to several observers.
*/
package observability
