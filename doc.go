// Package gldtax computes the United States tax consequences of owning
// shares of a grantor-trust gold fund such as GLD. It is designed to be
// local-first and auditable: every number in a report can be traced back
// to a line of the two input files.
//
// The core functionalities include:
//   - Transaction Ledger: Recording share purchases and sales in a
//     chronological record read from a simple CSV file.
//   - Proceeds Ledger: Daily per-share data published by the trust (gold
//     ounces backing each share, ounces sold to pay expenses, and the
//     resulting investor proceeds).
//   - Lot Matching: Pairing each sale with the oldest purchased shares
//     still held, splitting purchases across sales where necessary.
//   - Capital Changes: Deriving every taxable event for each lot, both
//     the undistributed proceeds from the trust's own bullion sales and
//     the gain or loss realized when shares are sold, with the cost
//     basis adjusted for proceeds received along the way.
//   - Tax Year Aggregation: Summing proceeds and cost by year and by
//     holding term, ready to be copied onto a tax return.
//
// This package serves as the foundational logic for the `gldtax`
// command-line tool, ensuring that all reports are consistent and based
// on a single source of truth.
package gldtax
