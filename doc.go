// Package tracker records periodic valuations of named investments and
// derives time series and totals from them.
//
// The core functionalities include:
//   - Aggregation: folding irregular, date-stamped observations into day,
//     week, month or year buckets, keeping the latest price of each bucket
//     (see [Aggregate]).
//   - Totals: per-investment and portfolio-wide shares, invested capital,
//     current value and profit/loss, valued at the latest known price
//     (see [ComputeTotals]).
//   - Snapshot editing: pure functions returning updated copies of the
//     records ([Upsert], [Remove], [RemoveInvestment], [Replace]) and of the
//     investment set ([AddInvestment], [DeleteInvestment]).
//   - Persistence: stores that load and save a whole [Snapshot], either as
//     JSONL files or in a SQLite key-value table, and an importer for exports
//     of the browser version of the tracker.
//
// The aggregation and totals engine is a set of pure functions over in-memory
// values; it performs no I/O and keeps no state between calls.
package tracker
