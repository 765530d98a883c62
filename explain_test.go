package dotenv_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/overlayenv/dotenv"
	"gotest.tools/v3/assert"
	"gotest.tools/v3/fs"
)

func TestExplain(t *testing.T) {
	type test struct {
		name         string
		files        []fs.PathOp
		merge        []string
		variableName string
		expected     string // %[1]s and %[2]s are the merged file paths
	}

	tests := []test{
		{
			name:         "no expansion",
			files:        []fs.PathOp{fs.WithFile(".env", "BASE=/usr\n")},
			merge:        []string{".env"},
			variableName: "BASE",
			expected: `Variable: BASE
Location: %[1]s:1
Raw Value: /usr
Final Value: /usr
`,
		},
		{
			name:         "simple expansion with $VAR",
			files:        []fs.PathOp{fs.WithFile(".env", "BASE=/usr\nPATH=$BASE/bin\n")},
			merge:        []string{".env"},
			variableName: "PATH",
			expected: `Variable: PATH
Location: %[1]s:2
Raw Value: $BASE/bin
Final Value: /usr/bin
Expanded from:
  - BASE=/usr at %[1]s:1
`,
		},
		{
			name:         "simple expansion with braces",
			files:        []fs.PathOp{fs.WithFile(".env", "BASE=/usr\nPATH=${BASE}/bin\n")},
			merge:        []string{".env"},
			variableName: "PATH",
			expected: `Variable: PATH
Location: %[1]s:2
Raw Value: ${BASE}/bin
Final Value: /usr/bin
Expanded from:
  - BASE=/usr at %[1]s:1
`,
		},
		{
			name:         "chained expansion",
			files:        []fs.PathOp{fs.WithFile(".env", "BASE=/usr\nBIN=${BASE}/bin\nFULL=${BIN}:/opt/bin\n")},
			merge:        []string{".env"},
			variableName: "FULL",
			expected: `Variable: FULL
Location: %[1]s:3
Raw Value: ${BIN}:/opt/bin
Final Value: /usr/bin:/opt/bin
Expanded from:
  - BIN=/usr/bin at %[1]s:2
`,
		},
		{
			name:         "multiple expansions in one line",
			files:        []fs.PathOp{fs.WithFile(".env", "A=foo\nB=bar\nC=$A-$B\n")},
			merge:        []string{".env"},
			variableName: "C",
			expected: `Variable: C
Location: %[1]s:3
Raw Value: $A-$B
Final Value: foo-bar
Expanded from:
  - A=foo at %[1]s:1
  - B=bar at %[1]s:2
`,
		},
		{
			name: "expansion across files",
			files: []fs.PathOp{
				fs.WithFile(".env", "BASE=/usr\n"),
				fs.WithFile(".env.local", "PATH=${BASE}/bin\n"),
			},
			merge:        []string{".env", ".env.local"},
			variableName: "PATH",
			expected: `Variable: PATH
Location: %[2]s:1
Raw Value: ${BASE}/bin
Final Value: /usr/bin
Expanded from:
  - BASE=/usr at %[1]s:1
`,
		},
		{
			name: "override from later file",
			files: []fs.PathOp{
				fs.WithFile(".env", "X=1\n"),
				fs.WithFile(".env.local", "X=2\n"),
			},
			merge:        []string{".env", ".env.local"},
			variableName: "X",
			expected: `Variable: X
Location: %[2]s:1
Raw Value: 2
Final Value: 2
`,
		},
		{
			name:         "expansion with default value",
			files:        []fs.PathOp{fs.WithFile(".env", "BASE=/usr\nPATH=${BASE:-/default}/bin\n")},
			merge:        []string{".env"},
			variableName: "PATH",
			expected: `Variable: PATH
Location: %[1]s:2
Raw Value: ${BASE:-/default}/bin
Final Value: /usr/bin
Expanded from:
  - BASE=/usr at %[1]s:1
`,
		},
		{
			name:         "non-existent variable",
			files:        []fs.PathOp{fs.WithFile(".env", "FOO=bar\n")},
			merge:        []string{".env"},
			variableName: "NONEXISTENT",
			expected:     "Variable not found",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			dir := fs.NewDir(t, "dotenv", test.files...)
			defer dir.Remove()

			paths := make([]string, len(test.merge))
			for i, name := range test.merge {
				paths[i] = dir.Join(name)
			}

			d := dotenv.NewWithEnvironment(newFakeEnv(nil))
			merged, err := d.Merge(context.TODO(), paths...)
			assert.NilError(t, err)

			expected := test.expected
			if strings.Contains(expected, "%[") {
				args := make([]any, len(paths))
				for i, p := range paths {
					args[i] = p
				}
				expected = fmt.Sprintf(expected, args...)
			}

			assert.Equal(t, expected, merged.Explain(test.variableName))
		})
	}
}

func TestExplainEnvironmentVariable(t *testing.T) {
	dir := fs.NewDir(t, "dotenv",
		fs.WithFile(".env", "APP_HOME=${HOME}/app\n"),
	)
	defer dir.Remove()

	d := dotenv.NewWithEnvironment(newFakeEnv(map[string]string{"HOME": "/home/app"}))
	merged, err := d.Merge(context.TODO(), dir.Join(".env"))
	assert.NilError(t, err)

	expected := fmt.Sprintf(`Variable: APP_HOME
Location: %s:1
Raw Value: ${HOME}/app
Final Value: /home/app/app
Expanded from:
  - HOME=/home/app at :env
`, dir.Join(".env"))
	assert.Equal(t, expected, merged.Explain("APP_HOME"))
}
