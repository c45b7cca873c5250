package argv

// Flag decodes the first flag starting with prefix; see ParseFlagVal.
func (p Parsed) Flag(prefix string, t FlagType, def Value) Value {
	return ParseFlagVal(p.Flags, prefix, t, def)
}

// Has reports whether any flag starts with prefix.
func (p Parsed) Has(prefix string) bool {
	_, ok := Lookup(p.Flags, prefix)
	return ok
}

// Bool reads a boolean flag. A matched flag without a value is true.
func (p Parsed) Bool(prefix string, def bool) bool {
	return p.Flag(prefix, FlagBoolean, BoolValue(def)).Bool
}

// Number reads a numeric flag.
func (p Parsed) Number(prefix string, def float64) float64 {
	return p.Flag(prefix, FlagNumber, NumberValue(def)).Number
}

// Text reads a string flag.
func (p Parsed) Text(prefix string, def string) string {
	return p.Flag(prefix, FlagString, StringValue(def)).Str
}

// JSON reads a structured flag. def is returned as is when the flag is
// absent, empty or not valid JSON.
func (p Parsed) JSON(prefix string, def any) any {
	return p.Flag(prefix, FlagJSON, JSONValue(def)).JSON
}
