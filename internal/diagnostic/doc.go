// Package diagnostic provides structured errors, warnings and infos for the
// static format checker, plus their pretty and JSON renderings.
//
// Key capabilities:
//   - Source positions for every finding
//   - Stable codes (SP1xxx errors and warnings, SP2xxx infos)
//   - Colored terminal output and a machine-readable JSON report
package diagnostic
