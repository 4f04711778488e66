package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/custos-inspect/pkg/inspect"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestRootDefaultPath(t *testing.T) {
	ws := t.TempDir()
	chdir(t, ws)
	writeFile(t, filepath.Join(ws, inspect.DefaultPath), `[{"Valores": 10}, {"Valores": 20}]`)

	out, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, "2\n10\n20\n", out)
}

func TestRootMissingDefaultFile(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := execute(t)
	assert.ErrorIs(t, err, inspect.ErrFileNotFound)
	assert.Empty(t, out)
}

func TestRootFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dados.json")
	writeFile(t, path, `[{"Mes": "jan"}, {"Mes": "fev"}, {"Mes": "mar"}]`)

	out, err := execute(t, path, "--field", "Mes", "-n", "2")
	require.NoError(t, err)
	assert.Equal(t, "3\njan\nfev\n", out)

	out, err = execute(t, path, "-f", "Mes", "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"source": "`+path+`", "count": 3, "field": "Mes", "values": ["jan", "fev", "mar"]}`, out)
}

func TestRootInvalidFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dados.json")
	writeFile(t, path, `[]`)

	_, err := execute(t, path, "--format", "xml")
	assert.Error(t, err)

	_, err = execute(t, path, "--limit", "-2")
	assert.Error(t, err)

	_, err = execute(t, path, "extra")
	assert.Error(t, err)
}

func TestRootConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dados.json")
	writeFile(t, path, `[{"Mes": "jan", "Valores": 1}, {"Mes": "fev", "Valores": 2}]`)
	cfgPath := filepath.Join(dir, "inspect.yaml")
	writeFile(t, cfgPath, "field: Mes\nlimit: 1\n")

	out, err := execute(t, path, "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "2\njan\n", out)

	out, err = execute(t, path, "--config", cfgPath, "--field", "Valores", "--limit", "5")
	require.NoError(t, err)
	assert.Equal(t, "2\n1\n2\n", out)

	_, err = execute(t, path, "--config", filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestSumCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dados.json")
	writeFile(t, path, `[{"Valores": 10}, {"Valores": "1.000,50"}, {"Outro": 1}]`)

	out, err := execute(t, "sum", path)
	require.NoError(t, err)
	assert.Equal(t, "count 3\nnumeric 2\nskipped 1\ntotal 1010.50\n", out)

	out, err = execute(t, "sum", path, "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"source": "`+path+`", "field": "Valores", "count": 3, "numeric": 2, "skipped": 1, "total": 1010.5}`, out)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inspect.yaml")
	writeFile(t, path, "field: Valores\nlimit: 0\nsheet: Custos\nrange: A1:C10\nheader_scan: 10\nformat: json\npretty: true\n")

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	opts := inspect.DefaultOptions()
	cfg.apply(&opts)
	assert.Equal(t, "Valores", opts.Field)
	assert.Equal(t, 0, opts.Limit)
	assert.Equal(t, "Custos", opts.Sheet)
	assert.Equal(t, "A1:C10", opts.Range)
	assert.Equal(t, 10, opts.HeaderScan)
	assert.Equal(t, inspect.FormatJSON, opts.Format)
	assert.True(t, opts.Pretty)

	writeFile(t, path, "limit: [1\n")
	_, err = loadConfig(path)
	assert.Error(t, err)
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent to testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
