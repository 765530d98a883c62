// Package dotenv parses .env files and populates the process environment
// from them, merging multiple overlay files under defined precedence and
// overwrite semantics.
package dotenv

import (
	"context"
	"errors"
	"io/fs"
	"os"
)

// Dotenv loads env files into an Environment. The zero value is not usable;
// construct with New or NewWithEnvironment.
type Dotenv struct {
	env Environment
}

// New returns a Dotenv that reads from and writes to the process environment.
func New() *Dotenv {
	return &Dotenv{env: OSEnvironment{}}
}

// NewWithEnvironment returns a Dotenv bound to the given Environment.
func NewWithEnvironment(env Environment) *Dotenv {
	return &Dotenv{env: env}
}

// Load merges the given env files in order and applies the result without
// overwriting variables the environment already defines. With no arguments
// it loads ".env". Files that do not exist are skipped.
func (d *Dotenv) Load(ctx context.Context, paths ...string) error {
	return d.loadPaths(ctx, false, paths)
}

// Overload merges the given env files in order and applies the result,
// overwriting any existing variables. With no arguments it loads ".env".
func (d *Dotenv) Overload(ctx context.Context, paths ...string) error {
	return d.loadPaths(ctx, true, paths)
}

// LoadEnv loads an env file hierarchy selected by an environment variable.
// The following files are merged if they exist, the latter taking precedence
// over the former:
//
//   - path             committed defaults
//   - path.local       uncommitted local overrides
//   - path.{env}       committed environment-specific defaults
//   - path.{env}.local uncommitted environment-specific local overrides
//
// {env} is the value of selectorVar in the environment, or defaultEnv when it
// is unset or empty. When {env} is "local" the environment-specific pair is
// skipped: the .local overlay already is the local environment. Existing
// environment variables are never overwritten.
func (d *Dotenv) LoadEnv(ctx context.Context, path, selectorVar, defaultEnv string) error {
	env, ok := d.env.Lookup(selectorVar)
	if !ok || env == "" {
		env = defaultEnv
	}

	paths := []string{path, path + ".local"}
	if env != "local" {
		paths = append(paths, path+"."+env, path+"."+env+".local")
	}

	return d.loadPaths(ctx, false, paths)
}

func (d *Dotenv) loadPaths(ctx context.Context, overwrite bool, paths []string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	merged, err := d.Merge(ctx, paths...)
	if err != nil {
		return err
	}
	return d.apply(merged, overwrite)
}

// Merge parses each existing file in the caller-supplied order and folds the
// results into one MergedEnv, later files overriding earlier ones. Each value
// is expanded against the variables merged so far, falling back to the
// Environment. A file that does not exist contributes nothing; a file that
// exists but cannot be read or parsed fails with a *LoadError.
func (d *Dotenv) Merge(ctx context.Context, paths ...string) (*MergedEnv, error) {
	merged := newMergedEnv()

	scope := NewCompositeLookup(
		WithPriority(merged.lookup, 1),
		WithPriority(EnvironmentLookup(d.env), 0),
	)

	for _, path := range paths {
		f, err := os.Open(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, &LoadError{Path: path, Err: err}
		}

		envFile, err := Parse(ctx, f)
		_ = f.Close()
		if err != nil {
			return nil, &LoadError{Path: path, Err: err}
		}

		for _, v := range envFile.variables {
			v.Location = Location(path) + v.Location
			if err := v.expandValue(scope.Lookup); err != nil {
				return nil, &LoadError{Path: path, Err: err}
			}
			merged.set(v)
		}
	}

	return merged, nil
}

// apply writes the merged variables to the Environment in insertion order.
// When overwrite is false, variables the environment already defines are left
// untouched. Application is not transactional: variables set before a failure
// remain set.
func (d *Dotenv) apply(merged *MergedEnv, overwrite bool) error {
	for _, name := range merged.names {
		if !overwrite {
			if _, exists := d.env.Lookup(name); exists {
				continue
			}
		}
		if err := d.env.Set(name, merged.vars[name].Value); err != nil {
			return &ApplyError{Key: name, Err: err}
		}
	}
	return nil
}

// Load merges the given env files into the process environment without
// overwriting existing variables. See [Dotenv.Load].
func Load(ctx context.Context, paths ...string) error {
	return New().Load(ctx, paths...)
}

// Overload merges the given env files into the process environment,
// overwriting existing variables. See [Dotenv.Overload].
func Overload(ctx context.Context, paths ...string) error {
	return New().Overload(ctx, paths...)
}

// LoadEnv loads an env file hierarchy selected by an environment variable
// into the process environment. See [Dotenv.LoadEnv].
func LoadEnv(ctx context.Context, path, selectorVar, defaultEnv string) error {
	return New().LoadEnv(ctx, path, selectorVar, defaultEnv)
}
