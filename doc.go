// Package restock provides a comprehensive set of functions and types for
// computing per-item restocking requirements for a small business. It is
// designed to be local-first and forgiving with historical data, ensuring
// users keep full control over their supplies configuration file.
//
// The core functionalities include:
//   - Configuration Management: Owning the canonical in-memory state (weekday
//     sales estimates, supply items, display preference) and its load/save
//     lifecycle against a single human-readable JSON file.
//   - Schema Migration: Reading every on-disk shape the tool ever produced
//     (positional sales lists, 2/3/4-field item records, bare coefficients)
//     and normalizing it into the current model.
//   - Schema Validation: A strict store strategy that checks the document
//     against a declared JSON schema before trusting any of it.
//   - Recalculation Engine: A stateless, deterministic function mapping sales
//     estimates, selected days and an optional override total to a
//     required-quantity table.
//
// This package serves as the foundational logic for the `rsc` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package restock
