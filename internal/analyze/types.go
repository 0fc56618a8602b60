package analyze

import (
	"go/types"

	"safe-printf/internal/diagnostic"
	"safe-printf/primitive"
)

// Result holds the outcome of an analysis run.
type Result struct {
	Diagnostics diagnostic.Diagnostics
	// Packages is the number of packages checked.
	Packages int
	// Calls is the number of calls whose format and arguments were matched.
	Calls int
	// Skipped is the number of target calls that could not be checked
	// statically (non-constant format, spread or opaque arguments).
	Skipped int
}

// merge folds a package result into r, dropping diagnostics already reported
// for the same position and code (test variants share files).
func (r *Result) merge(pr packageResult, seen map[string]bool) {
	r.Packages++
	r.Calls += pr.calls
	r.Skipped += pr.skipped

	keep := func(list []diagnostic.Diagnostic) []diagnostic.Diagnostic {
		var out []diagnostic.Diagnostic
		for _, d := range list {
			key := d.Position.String() + "|" + d.Code
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, d)
		}
		return out
	}

	r.Diagnostics.Merge(diagnostic.Diagnostics{
		Errors:   keep(pr.diags.Errors),
		Warnings: keep(pr.diags.Warnings),
		Infos:    keep(pr.diags.Infos),
	})
}

type packageResult struct {
	diags   diagnostic.Diagnostics
	calls   int
	skipped int
}

// argCategory is the statically known category of one call argument.
type argCategory struct {
	category primitive.Category
	typ      types.Type
	known    bool
	// stringer is set when fmt formats the argument through String or Error,
	// which also satisfies %s.
	stringer bool
}
