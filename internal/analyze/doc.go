// Package analyze checks printf-style calls at build time.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to find calls
// to the configured functions, reads their constant format strings and the
// static types of their arguments, and runs the same verb matcher the runtime
// check uses. A call the matcher rejects at run time is reported here before
// the program ever runs.
//
// Key types:
//   - Analyzer: loads packages and checks them concurrently
//   - Result: diagnostics plus counts of checked and skipped calls
package analyze
