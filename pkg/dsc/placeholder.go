package dsc

// PlaceholderGenerator supplies demonstration values per declared
// parameter kind, so a block can be rendered for a resource without any
// live values. Text-bearing placeholders carry the parameter name, which
// keeps demonstration blocks self-describing.
type PlaceholderGenerator struct{}

// Value returns a placeholder value of the given kind for parameter.
func (PlaceholderGenerator) Value(kind Kind, parameter string) Value {
	switch kind {
	case KindText:
		return TextValue(parameter)
	case KindBool:
		return BoolValue(true)
	case KindCredential:
		return CredentialValue("")
	case KindMap:
		return MapValue(map[string]any{parameter: parameter})
	case KindTextArray:
		return TextArrayValue([]string{parameter})
	case KindIntArray:
		return IntArrayValue([]int{1})
	case KindObjectArray:
		return ObjectArrayValue([]any{parameter})
	case KindEnum:
		return EnumValue(parameter)
	case KindRaw:
		return RawValue(`"` + parameter + `"`)
	}
	return NullValue()
}

// Parameters builds a placeholder parameter list from declared kinds,
// for demonstration blocks of a resource with no live values.
func (g PlaceholderGenerator) Parameters(kinds map[string]Kind) []Parameter {
	params := make([]Parameter, 0, len(kinds))
	for name, kind := range kinds {
		params = append(params, Parameter{Name: name, Value: g.Value(kind, name)})
	}
	return params
}
