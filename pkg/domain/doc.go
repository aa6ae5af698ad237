/*
Package domain contains the core domain models of the clinic simulator.

It defines the clinic entities (patients, appointments, ledger and chart
entries, messages, claims), the aggregate session State that holds them, the
closed Action vocabulary that the transition engine accepts, and the assessment
Grid derived from those transitions. This package is kept pure and free of
external dependencies like I/O or persistence.

# Key Entities

  - State: the root snapshot of a training session (all collections, selection, grid).
  - Action: a typed request to change State, identified by its Kind.
  - Grid: per-module, per-step completion booleans used to grade a session.
  - Placement: where an appointment lives (calendar, pinboard or waitlist).
*/
package domain
