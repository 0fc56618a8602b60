// Package config loads the static checker configuration.
//
// The file is YAML (safe-printf.yaml) or TOML (safe-printf.toml), chosen by
// extension:
//
//	version: "1"
//	allow_excess: false
//	jobs: 4
//	functions:
//	  - name: safe-printf/printf.Sprintf
//	    format_index: 0
//	    wrapped: true
//	  - name: fmt.Fprintf
//	    format_index: 1
//
// A function is named by its go/types full name, so methods are written as
// "(*safe-printf/printf.Checker).Sprintf". Wrapped functions take printf.Arg
// values, and the category of each argument is read from the operand of the
// printf.A call. Other functions are checked on the static type of the
// argument itself.
//
// Leaving functions empty selects [DefaultFunctions].
package config
