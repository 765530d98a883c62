package dotenv_test

import (
	"testing"

	"github.com/overlayenv/dotenv"
	"gotest.tools/v3/assert"
)

func constLookup(name, value string, loc dotenv.Location) dotenv.LookupFn {
	return func(n string) (dotenv.Variable, bool) {
		if n != name {
			return dotenv.Variable{}, false
		}
		return dotenv.Variable{Name: name, Value: value, Location: loc}, true
	}
}

func TestCompositeLookupPriority(t *testing.T) {
	composite := dotenv.NewCompositeLookup(
		dotenv.WithPriority(constLookup("FOO", "low", ":low"), 0),
		dotenv.WithPriority(constLookup("FOO", "high", ":high"), 10),
		dotenv.WithPriority(constLookup("BAR", "only", ":low"), 0),
	)

	v, ok := composite.Lookup("FOO")
	assert.Assert(t, ok)
	assert.Equal(t, "high", v.Value)

	v, ok = composite.Lookup("BAR")
	assert.Assert(t, ok)
	assert.Equal(t, "only", v.Value)

	_, ok = composite.Lookup("MISSING")
	assert.Assert(t, !ok)
}

func TestEnvironmentLookup(t *testing.T) {
	env := &fakeEnv{vars: map[string]string{"HOME": "/home/app"}}
	lookup := dotenv.EnvironmentLookup(env)

	v, ok := lookup("HOME")
	assert.Assert(t, ok)
	assert.Equal(t, "/home/app", v.Value)
	assert.Equal(t, dotenv.Location(":env"), v.Location)

	_, ok = lookup("MISSING")
	assert.Assert(t, !ok)
}
