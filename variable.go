package dotenv

// Location tracks the source file and line number of an environment variable in the format "file:line"
type Location string

// QuoteStyle records how a value was written in the source file
type QuoteStyle int

const (
	Unquoted QuoteStyle = iota
	SingleQuoted
	DoubleQuoted
)

// Variable represents a single environment variable with its metadata
type Variable struct {
	Name     string
	Value    string
	RawValue string
	Location Location
	Quoted   QuoteStyle
	Expanded map[string]Variable // tracks which variables were substituted and where they came from
}

// expandValue replaces $VAR and ${VAR} references in the value.
// Single-quoted values are literal and never expanded.
func (v *Variable) expandValue(lookup LookupFn) error {
	if v.Quoted == SingleQuoted {
		v.Value = v.RawValue
		return nil
	}
	val, exp, err := expandString(v.RawValue, lookup)
	if err != nil {
		return err
	}
	v.Value = val
	v.Expanded = exp
	return nil
}
