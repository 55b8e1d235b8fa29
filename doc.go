// Package plancast is a deterministic financial projection engine.
//
// A plan is a set of entities (accounts, debts, holdings, possessions,
// recurring incomes and expenses) each carrying a small ledger of manual
// value records. A Simulation replays every entity over a bounded day
// axis, applying the transactions each entity emits, and answers
// aggregate queries (assets, debt, net worth) and per-entity value
// queries for any day in the projection window.
//
// The engine is single-threaded and eager: the whole projection is
// computed when the Simulation is constructed, and every query
// afterwards is a pure read.
package plancast
