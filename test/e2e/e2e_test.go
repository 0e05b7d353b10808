package e2e_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var binary string

// TestMain builds the CLI once for all tests in this package
func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "hiveschema-e2e")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create temp dir: %v\n", err)
		os.Exit(1)
	}

	binary = filepath.Join(dir, "hiveschema")
	build := exec.Command("go", "build", "-o", binary, "../..")
	if out, err := build.CombinedOutput(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to build hiveschema: %v\n%s\n", err, out)
		_ = os.RemoveAll(dir)
		os.Exit(1)
	}

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func runBinary(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	cmd := exec.Command(binary, args...)
	cmd.Stdin = strings.NewReader(stdin)
	cmd.Dir = t.TempDir()
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return 0, stdout.String(), stderr.String()
	case errors.As(err, &exitErr):
		return exitErr.ExitCode(), stdout.String(), stderr.String()
	default:
		t.Fatalf("failed to run binary: %v", err)
		return -1, "", ""
	}
}

// TestEndToEnd_ComplexNestedStructures tests the binary with a realistic nested document
func TestEndToEnd_ComplexNestedStructures(t *testing.T) {
	jsonContent := `{
		"id": 12345,
		"uuid": "550e8400-e29b-41d4-a716-446655440000",
		"created_at": "2023-05-20T14:56:23Z",
		"config": {
			"enabled": true,
			"timeout_seconds": 30,
			"features": ["logging", "metrics", "alerting"],
			"rate_limits": {
				"per_second": 100,
				"burst": 150
			}
		},
		"users": [
			{
				"id": 1,
				"name": "Alice",
				"roles": ["admin", "user"],
				"metadata": {
					"last_login": "2023-05-19T10:30:00Z",
					"login_count": 42
				}
			},
			{
				"id": 2,
				"name": "Bob",
				"roles": []
			}
		],
		"stats": {
			"requests": 1234567,
			"success_rate": 0.9999,
			"response_times": [0.045, 0.067]
		},
		"active": true
	}`
	jsonFile := filepath.Join(t.TempDir(), "complex.json")
	require.NoError(t, os.WriteFile(jsonFile, []byte(jsonContent), 0644))

	code, stdout, stderr := runBinary(t, "", jsonFile, "complex")
	require.Equal(t, 0, code, stderr)

	expected := `CREATE TABLE complex (
  active boolean,
  config struct<enabled:boolean, features:array<string>, rate_limits:struct<burst:int, per_second:int>, timeout_seconds:int>,
  created_at string,
  id int,
  stats struct<requests:int, response_times:array<double>, success_rate:double>,
  users array<struct<id:int, metadata:struct<last_login:string, login_count:int>, name:string, roles:array<string>>>,
  uuid string
)
ROW FORMAT SERDE 'org.openx.data.jsonserde.JsonSerDe';
`
	assert.Equal(t, expected, stdout)
}

// TestEndToEnd_HeterogeneousArrays checks that only the first array element decides the type
func TestEndToEnd_HeterogeneousArrays(t *testing.T) {
	jsonContent := `{
		"mixed_array": [1, "string", true, null, {"nested": "object"}, [1, 2, 3]],
		"mixed_objects": [
			{"type": "user", "id": 1, "name": "Alice"},
			{"type": "group", "id": 2, "members": 5}
		]
	}`

	code, stdout, stderr := runBinary(t, jsonContent, "-")
	require.Equal(t, 0, code, stderr)

	assert.Contains(t, stdout, "  mixed_array array<int>,\n")
	assert.Contains(t, stdout, "  mixed_objects array<struct<id:int, name:string, type:string>>\n")
	assert.NotContains(t, stdout, "members")
}

func TestEndToEnd_ExitStatus(t *testing.T) {
	t.Run("no arguments", func(t *testing.T) {
		code, stdout, _ := runBinary(t, "")
		assert.NotEqual(t, 0, code)
		assert.Empty(t, stdout)
	})

	t.Run("help", func(t *testing.T) {
		code, stdout, _ := runBinary(t, "", "-h")
		assert.Equal(t, 0, code)
		lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
		require.Len(t, lines, 2)
		assert.Contains(t, lines[0], "json-file")
		assert.Contains(t, lines[1], "Defaults to 'x'")
	})

	t.Run("missing file", func(t *testing.T) {
		code, stdout, stderr := runBinary(t, "", filepath.Join(t.TempDir(), "nope.json"))
		assert.Equal(t, 1, code)
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "not found")
	})

	t.Run("empty array", func(t *testing.T) {
		code, stdout, stderr := runBinary(t, `{"arr": []}`, "-")
		assert.Equal(t, 1, code)
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, `array "arr" is empty`)
	})
}
