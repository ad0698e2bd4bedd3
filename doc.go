// Package bankroll provides the core state and derivation engine for a
// personal sports-betting bankroll manager. It is designed to be local-first,
// single-user, and fully recomputable: every derived figure is a pure function
// of the recorded ledgers.
//
// The core functionalities include:
//   - Ledger Arithmetic: recording bets, deposits and withdrawals and deriving
//     the running bankroll, realized profit, ROI and win rate from the
//     chronological transaction ledger.
//   - Challenge Schedule Engine: building and replaying compounding-stake
//     challenges ("turn R$10 into R$1000 in 30 days at odds 1.10") with
//     day-by-day outcomes and martingale-style recovery.
//   - Aggregate Store: a copy-on-write snapshot of every named bankroll, its
//     ledgers and challenges, with the mutation operations the UI drives.
//   - Persistence & Migration: loading and saving the whole snapshot as a JSON
//     document in a durable slot, including migration of the older flat
//     single-bankroll layout, plus JSON import and export.
//
// This package serves as the foundational logic for the `gpro` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package bankroll
