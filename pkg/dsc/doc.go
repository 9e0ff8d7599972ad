// Package dsc renders typed parameter sets as PowerShell DSC resource
// block text and post-processes the result.
//
// # Overview
//
// The package turns a bag of named, typed values into the exact literal
// syntax a DSC compiler consumes: quoted strings with backtick escaping,
// `@(...)` array and `@{...}` hashtable expressions, `$True`/`$False`
// boolean tokens, `$null`, and credential reference variables. Rendering
// is deterministic: parameters are sorted by name and aligned to a fixed
// minimum column, so rendering the same input twice yields byte-identical
// output.
//
// # Components
//
// Escape: string escaping for double-quoted DSC literals.
//
// Value: a closed tagged union over the literal families the renderer
// distinguishes. Kinds are resolved once at the parameter boundary, from
// the runtime value when present or from a TypeResolver when a parameter
// is null but typed.
//
// Registry: a caller-owned set of credential usernames plus the canonical
// reference-variable naming rule shared with the credential formatter.
//
// RenderBlock / RenderResourceBlock: the block assembler. Metadata
// parameters (MetadataPrefix + target name) become inline comments on
// their target's line rather than lines of their own.
//
// StripQuotes: the quote-boundary rewriter. It locates a parameter's
// rendered double-quoted literal inside an assembled block and removes
// the boundary quotes, promoting the literal to a bare expression.
//
// ConfigurationData: accumulates per-node key/value entries and renders
// them as a configuration data document.
//
// # Usage Example
//
//	params := []dsc.Parameter{
//		{Name: "Name", Value: dsc.TextValue("Test")},
//		{Name: "Enabled", Value: dsc.BoolValue(true)},
//		{Name: "Items", Value: dsc.TextArrayValue([]string{"Item1", "Item2"})},
//	}
//	block := dsc.RenderBlock("Widget", params, nil)
//	block = dsc.StripQuotes(block, "Name", false, false)
//
// # Thread Safety
//
// Rendering functions are pure. Registry and ConfigurationData guard
// their mutable state with a mutex; one instance per extraction run is
// expected.
package dsc
