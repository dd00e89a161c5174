package parser_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const timeLayout = "02/Jan/2006"

// createTestFiles writes every content into its own file of a fresh
// directory and returns a glob matching them in creation order.
func createTestFiles(t *testing.T, content ...string) string {
	t.Helper()

	dir := t.TempDir()

	for i, c := range content {
		fileName := filepath.Join(dir, fmt.Sprintf("test_%03d.log", i))

		err := os.WriteFile(fileName, []byte(c), 0o600)
		require.NoError(t, err, "file must be created")
	}

	return filepath.Join(dir, "test_*")
}

func getTime(t *testing.T, value string) *time.Time {
	t.Helper()

	tm, err := time.Parse(timeLayout, value)
	require.NoError(t, err, "time must be parsed")

	return &tm
}
