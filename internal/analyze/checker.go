package analyze

import (
	"errors"
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/go/types/typeutil"

	"safe-printf/internal/config"
	"safe-printf/internal/diagnostic"
	"safe-printf/primitive"
	"safe-printf/verb"
)

// argFuncName is the full name of the generic argument constructor.
const argFuncName = config.PrintfPkgPath + ".A"

// callChecker checks the target calls of a single package.
type callChecker struct {
	fset   *token.FileSet
	info   *types.Info
	pkg    *types.Package
	opts   verb.Options
	result packageResult
}

// checkPackage walks every file of pkg looking for calls to target functions.
func (a *Analyzer) checkPackage(pkg *packages.Package) packageResult {
	c := &callChecker{
		fset: pkg.Fset,
		info: pkg.TypesInfo,
		pkg:  pkg.Types,
		opts: verb.Options{AllowExcess: a.cfg.AllowExcess},
	}

	for _, file := range pkg.Syntax {
		ast.Inspect(file, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}

			fn := typeutil.StaticCallee(c.info, call)
			if fn == nil {
				return true
			}

			name := fn.Origin().FullName()
			if target, ok := a.targets[name]; ok {
				c.checkCall(call, name, target)
			}

			return true
		})
	}

	return c.result
}

func (c *callChecker) checkCall(call *ast.CallExpr, name string, target config.Function) {
	if len(call.Args) <= target.FormatIndex {
		return
	}

	pos := c.fset.Position(call.Pos())

	if call.Ellipsis.IsValid() {
		c.skip(diagnostic.CodeUncheckedArgument, "arguments are passed with ...; call not checked", pos, name)
		return
	}

	formatExpr := call.Args[target.FormatIndex]
	tv, ok := c.info.Types[formatExpr]
	if !ok || tv.Value == nil || tv.Value.Kind() != constant.String {
		c.skip(diagnostic.CodeNonConstFormat, "format is not a constant string; call not checked", pos, name)
		return
	}
	format := constant.StringVal(tv.Value)

	argExprs := call.Args[target.FormatIndex+1:]
	args := make([]argCategory, len(argExprs))

	for i, arg := range argExprs {
		ac := c.categoryOf(arg, target)
		if !ac.known {
			msg := fmt.Sprintf("argument %d has no static category (%s); call not checked", i, c.typeString(ac.typ))
			c.skip(diagnostic.CodeUncheckedArgument, msg, c.fset.Position(arg.Pos()), name)
			return
		}

		args[i] = ac
	}

	n, err := c.match(format, args)

	var verbErr *verb.Error
	isVerbErr := errors.As(err, &verbErr)

	if isVerbErr && target.ForeignVerbs && verbErr.Kind == verb.KindInvalidSpecifier {
		msg := fmt.Sprintf("%%%c at offset %d is outside %%d, %%f, %%g and %%s; call not checked", verbErr.Verb, verbErr.Pos)
		c.skip(diagnostic.CodeForeignVerb, msg, c.fset.Position(formatExpr.Pos()), name)
		return
	}

	c.result.calls++

	switch {
	case err == nil:
		if n < len(args) {
			msg := fmt.Sprintf("argument %d (%s) has no verb in call to %s", n, args[n].category, shortName(name))
			c.result.diags.AddWarning(diagnostic.CodeDroppedArgument, msg, c.fset.Position(argExprs[n].Pos()), name)
		}

	case isVerbErr:
		c.report(verbErr, formatExpr, argExprs, name)

	default:
		c.result.diags.AddError("", err.Error(), pos, name)
	}
}

// match runs the verb matcher over the argument categories. A string-like
// verb rejecting an argument that fmt formats through String or Error is
// retried with that argument taken as string-like.
func (c *callChecker) match(format string, args []argCategory) (int, error) {
	categories := make([]primitive.Category, len(args))
	for i, a := range args {
		categories[i] = a.category
	}

	for {
		n, err := verb.Match(format, categories, c.opts)

		var verbErr *verb.Error
		if !errors.As(err, &verbErr) || verbErr.Kind != verb.KindTypeMismatch ||
			verbErr.Expected != primitive.CategoryStringLike {
			return n, err
		}

		i := verbErr.ArgIndex
		if !args[i].stringer || categories[i] == primitive.CategoryStringLike {
			return n, err
		}

		categories[i] = primitive.CategoryStringLike
	}
}

// report converts a matcher failure into a positioned diagnostic.
func (c *callChecker) report(verbErr *verb.Error, formatExpr ast.Expr, argExprs []ast.Expr, name string) {
	at := func(i int) token.Position {
		if i < len(argExprs) {
			return c.fset.Position(argExprs[i].Pos())
		}
		return c.fset.Position(formatExpr.Pos())
	}

	msg := fmt.Sprintf("%s in call to %s", verbErr.Error(), shortName(name))

	switch verbErr.Kind {
	case verb.KindTypeMismatch:
		c.result.diags.AddError(diagnostic.CodeTypeMismatch, msg, at(verbErr.ArgIndex), name,
			suggestVerb(verbErr.Actual)...)

	case verb.KindInvalidSpecifier:
		c.result.diags.AddError(diagnostic.CodeInvalidSpecifier, msg, c.fset.Position(formatExpr.Pos()), name,
			"supported verbs are %d, %f, %g, %s and %%")

	case verb.KindDanglingSpecifier:
		c.result.diags.AddError(diagnostic.CodeDanglingSpecifier, msg, c.fset.Position(formatExpr.Pos()), name)

	case verb.KindArgumentCountExcess:
		c.result.diags.AddError(diagnostic.CodeExcessArgument, msg, at(verbErr.ArgIndex), name,
			"remove the argument or add a verb for it")

	default:
		c.result.diags.AddError("", msg, at(verbErr.ArgIndex), name)
	}
}

// categoryOf derives the category an argument will have at run time.
func (c *callChecker) categoryOf(arg ast.Expr, target config.Function) argCategory {
	if target.Wrapped {
		inner, ok := ast.Unparen(arg).(*ast.CallExpr)
		if !ok || len(inner.Args) != 1 {
			return argCategory{typ: c.info.TypeOf(arg)}
		}

		fn := typeutil.StaticCallee(c.info, inner)
		if fn == nil || fn.Origin().FullName() != argFuncName {
			return argCategory{typ: c.info.TypeOf(arg)}
		}

		arg = inner.Args[0]
	}

	t := c.info.TypeOf(arg)
	if t == nil {
		return argCategory{}
	}

	stringer := target.Stringers && hasStringMethod(t)

	if kind := primitive.FromGoType(t); kind.IsValid() {
		return argCategory{category: kind.Category(), typ: t, known: true, stringer: stringer}
	}

	if stringer {
		return argCategory{category: primitive.CategoryStringLike, typ: t, known: true, stringer: true}
	}

	if types.IsInterface(t) {
		return argCategory{typ: t}
	}

	return argCategory{category: primitive.CategoryUnsupported, typ: t, known: true}
}

func (c *callChecker) skip(code, msg string, pos token.Position, name string) {
	c.result.skipped++
	c.result.diags.AddInfo(code, msg, pos, name)
}

func (c *callChecker) typeString(t types.Type) string {
	if t == nil {
		return "untyped"
	}

	return types.TypeString(t, types.RelativeTo(c.pkg))
}

// hasStringMethod reports whether the method set of t has String() string or
// Error() string.
func hasStringMethod(t types.Type) bool {
	for _, name := range []string{"String", "Error"} {
		obj, _, _ := types.LookupFieldOrMethod(t, false, nil, name)

		fn, ok := obj.(*types.Func)
		if !ok {
			continue
		}

		sig := fn.Signature()
		if sig.Params().Len() == 0 && sig.Results().Len() == 1 &&
			types.Identical(sig.Results().At(0).Type(), types.Typ[types.String]) {
			return true
		}
	}

	return false
}

// suggestVerb names the verbs that accept category.
func suggestVerb(category primitive.Category) []string {
	switch category {
	case primitive.CategoryIntegral:
		return []string{"use %d for this argument"}
	case primitive.CategoryFloatingPoint:
		return []string{"use %f or %g for this argument"}
	case primitive.CategoryStringLike:
		return []string{"use %s for this argument"}
	default:
		return []string{"convert the argument to an integer, float or string"}
	}
}

// shortName strips the package path from a full function name, keeping the
// package name: "(*safe-printf/printf.Checker).Sprintf" -> "(*printf.Checker).Sprintf".
func shortName(full string) string {
	prefix := ""
	for _, p := range []string{"(*", "("} {
		if strings.HasPrefix(full, p) {
			prefix = p
			break
		}
	}

	rest := full[len(prefix):]
	if i := strings.LastIndex(rest, "/"); i >= 0 {
		rest = rest[i+1:]
	}

	return prefix + rest
}
