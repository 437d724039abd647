package crashlog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogger_ContractViolation_WritesJSONLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crash.log")
	l := New(path)
	defer l.Close()

	l.ContractViolation(80, []string{"toolong"}, []int{90})

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(data, &entry))
	require.Equal(t, float64(80), entry["terminal_width"])
}

func TestLogger_CreatesParentDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "crash.log")
	l := New(path)
	defer l.Close()

	l.FullRedraw("width changed")

	_, err := os.Stat(path)
	require.NoError(t, err)
}
