package dotenv

import "sort"

// EnvFile represents a parsed .env file containing a list of variables
type EnvFile struct {
	variables []Variable
}

// Variables returns the environment variables as a map[string]string.
// Values are raw: for the same key, the last assignment in the file wins.
func (e *EnvFile) Variables() map[string]string {
	result := make(map[string]string, len(e.variables))
	for _, variable := range e.variables {
		result[variable.Name] = variable.RawValue
	}
	return result
}

// MergedEnv is the result of merging one or more env files in precedence
// order. It preserves insertion order while lookups reflect the last write.
type MergedEnv struct {
	names []string
	vars  map[string]Variable
}

func newMergedEnv() *MergedEnv {
	return &MergedEnv{vars: map[string]Variable{}}
}

// set inserts or overwrites a variable. A key that is already present keeps
// its original position.
func (m *MergedEnv) set(v Variable) {
	if _, ok := m.vars[v.Name]; !ok {
		m.names = append(m.names, v.Name)
	}
	m.vars[v.Name] = v
}

// lookup implements the LookupFn signature over the merged variables
func (m *MergedEnv) lookup(name string) (Variable, bool) {
	v, ok := m.vars[name]
	return v, ok
}

// Names returns the variable names in insertion order
func (m *MergedEnv) Names() []string {
	names := make([]string, len(m.names))
	copy(names, m.names)
	return names
}

// Variables returns the merged environment variables as a map[string]string
func (m *MergedEnv) Variables() map[string]string {
	result := make(map[string]string, len(m.vars))
	for name, variable := range m.vars {
		result[name] = variable.Value
	}
	return result
}

// Explain returns a detailed explanation of how a variable was set
func (m *MergedEnv) Explain(name string) string {
	variable, ok := m.vars[name]
	if !ok {
		return "Variable not found"
	}

	explanation := "Variable: " + variable.Name + "\n"
	explanation += "Location: " + string(variable.Location) + "\n"
	explanation += "Raw Value: " + variable.RawValue + "\n"
	explanation += "Final Value: " + variable.Value + "\n"

	if len(variable.Expanded) > 0 {
		explanation += "Expanded from:\n"
		// Sort variable names for deterministic output
		varNames := make([]string, 0, len(variable.Expanded))
		for varName := range variable.Expanded {
			varNames = append(varNames, varName)
		}
		sort.Strings(varNames)
		for _, varName := range varNames {
			source := variable.Expanded[varName]
			explanation += "  - " + varName + "=" + source.Value + " at " + string(source.Location) + "\n"
		}
	}

	return explanation
}
