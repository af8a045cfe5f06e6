package script

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/genealogy/internal/virusid"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	"github.com/zclconf/go-cty/cty/gocty"
)

var functions = map[string]function.Function{
	"upper":  stdlib.UpperFunc,
	"lower":  stdlib.LowerFunc,
	"format": stdlib.FormatFunc,
	"concat": stdlib.ConcatFunc,
}

// evalContext returns the context block expressions are evaluated in. The
// stem attribute itself is evaluated before the stem is known, with stem ""
// meaning no variables.
func evalContext(stem string) *hcl.EvalContext {
	ctx := &hcl.EvalContext{Functions: functions}
	if stem != "" {
		ctx.Variables = map[string]cty.Value{"stem": cty.StringVal(stem)}
	}
	return ctx
}

// identifierList evaluates expr as one identifier or a list of identifiers.
func identifierList(expr hcl.Expression, ctx *hcl.EvalContext, what string) ([]string, hcl.Diagnostics) {
	val, diags := expr.Value(ctx)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() || !val.IsWhollyKnown() {
		return nil, diags.Append(invalidValue(expr, what, "must be a known, non-null value"))
	}
	if val.Type().Equals(cty.String) {
		val = cty.ListVal([]cty.Value{val})
	}

	listType := cty.List(cty.String)
	converted, err := convert.Convert(val, listType)
	if err != nil {
		return nil, diags.Append(invalidValue(expr, what,
			fmt.Sprintf("expected an identifier or a list of identifiers, got %s: %s", val.Type().FriendlyName(), err)))
	}
	for it := converted.ElementIterator(); it.Next(); {
		if _, el := it.Element(); el.IsNull() {
			return nil, diags.Append(invalidValue(expr, what, "list elements must not be null"))
		}
	}

	var ids []string
	if err := gocty.FromCtyValue(converted, &ids); err != nil {
		return nil, diags.Append(invalidValue(expr, what, err.Error()))
	}
	for _, id := range ids {
		diags = diags.Extend(checkIdentifier(id, expr.Range()))
	}
	if diags.HasErrors() {
		return nil, diags
	}
	return ids, diags
}

// identifier evaluates expr as exactly one identifier.
func identifier(expr hcl.Expression, ctx *hcl.EvalContext, what string) (string, hcl.Diagnostics) {
	val, diags := expr.Value(ctx)
	if diags.HasErrors() {
		return "", diags
	}
	if val.IsNull() || !val.IsWhollyKnown() {
		return "", diags.Append(invalidValue(expr, what, "must be a known, non-null value"))
	}

	converted, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", diags.Append(invalidValue(expr, what,
			fmt.Sprintf("expected an identifier, got %s", val.Type().FriendlyName())))
	}

	var id string
	if err := gocty.FromCtyValue(converted, &id); err != nil {
		return "", diags.Append(invalidValue(expr, what, err.Error()))
	}
	diags = diags.Extend(checkIdentifier(id, expr.Range()))
	return id, diags
}

func checkIdentifier(id string, rng hcl.Range) hcl.Diagnostics {
	if _, err := virusid.Parse(id); err != nil {
		return hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid virus identifier",
			Detail:   err.Error() + ".",
			Subject:  rng.Ptr(),
		}}
	}
	return nil
}

func invalidValue(expr hcl.Expression, what, detail string) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  fmt.Sprintf("Invalid %s", what),
		Detail:   fmt.Sprintf("The %s %s.", what, detail),
		Subject:  expr.Range().Ptr(),
	}
}
