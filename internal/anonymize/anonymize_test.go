package anonymize

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() *Table {
	return &Table{
		Header: []string{"id", "name", "email", "phone", "country", "notes"},
		Rows: [][]string{
			{"1", "Real Person", "real@real.com", "555-0100", "Atlantis", "keep me?"},
			{"2", "Other Person", "other@real.com", "555-0101", "Atlantis", "secret"},
		},
	}
}

func TestColumnsFakerHeuristics(t *testing.T) {
	out, err := Columns(sampleTable(), []string{"name", "email", "phone", "country", "notes"}, 42, StrategyFaker)
	require.NoError(t, err)

	for i, row := range out.Rows {
		assert.Equal(t, sampleTable().Rows[i][0], row[0], "untouched column")
		assert.NotEqual(t, sampleTable().Rows[i][1], row[1])
		assert.Contains(t, row[2], "@")
		assert.True(t, strings.HasPrefix(row[3], "+"))
		assert.NotEmpty(t, row[4])
		assert.Regexp(t, regexp.MustCompile(`^[A-Za-z0-9]{8,16}$`), row[5])
	}
	assert.NotEqual(t, out.Rows[0][2], out.Rows[1][2], "emails stay unique")
}

func TestColumnsDeterministic(t *testing.T) {
	a, err := Columns(sampleTable(), []string{"email", "name"}, 7, StrategyFaker)
	require.NoError(t, err)
	b, err := Columns(sampleTable(), []string{"email", "name"}, 7, StrategyFaker)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := Columns(sampleTable(), []string{"email", "name"}, 8, StrategyFaker)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestColumnsHashStrategy(t *testing.T) {
	a, err := Columns(sampleTable(), []string{"notes"}, 1, StrategyHash)
	require.NoError(t, err)
	b, err := Columns(sampleTable(), []string{"notes"}, 1, StrategyHash)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Regexp(t, regexp.MustCompile(`^\d{10}$`), a.Rows[0][5])
	assert.NotEqual(t, a.Rows[0][5], a.Rows[1][5])
}

func TestColumnsMissingColumn(t *testing.T) {
	_, err := Columns(sampleTable(), []string{"email", "ssn"}, 1, StrategyFaker)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ssn")
}

func TestColumnsUnknownStrategy(t *testing.T) {
	_, err := Columns(sampleTable(), []string{"email"}, 1, "rot13")
	require.Error(t, err)
}

func TestColumnsDoesNotMutateInput(t *testing.T) {
	in := sampleTable()
	_, err := Columns(in, []string{"email"}, 1, StrategyFaker)
	require.NoError(t, err)
	assert.Equal(t, sampleTable(), in)
}

func TestReadWriteCSVRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.csv")
	require.NoError(t, os.WriteFile(path, []byte("id,email\n1,a@b.c\n2,d@e.f\n"), 0o644))

	table, err := ReadCSV(path)
	require.NoError(t, err)
	require.Equal(t, []string{"id", "email"}, table.Header)
	require.Len(t, table.Rows, 2)

	outPath := filepath.Join(dir, "out.csv")
	require.NoError(t, WriteCSV(outPath, table))

	back, err := ReadCSV(outPath)
	require.NoError(t, err)
	assert.Equal(t, table, back)
}

func TestReadCSVEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	_, err := ReadCSV(path)
	require.Error(t, err)
}
