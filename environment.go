package dotenv

import "os"

// Environment is the process-environment boundary: reads feed expansion
// fallback and overwrite-skip checks, writes commit merged variables.
// Implementations backed by an in-memory map keep merge and apply testable
// without mutating process-wide state.
type Environment interface {
	Lookup(name string) (string, bool)
	Set(name, value string) error
}

// OSEnvironment is the Environment of the current process.
type OSEnvironment struct{}

func (OSEnvironment) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

func (OSEnvironment) Set(name, value string) error {
	return os.Setenv(name, value)
}
