package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores the package flag variables to their defaults and
// registers a cleanup doing the same, so tests can set them freely.
func resetFlags(t *testing.T) {
	t.Helper()
	reset := func() {
		byteList = ""
		charList = ""
		fieldList = ""
		delimiter = "\t"
		outputDelim = ""
		onlyDelimited = false
		complemented = false
		zeroTerm = false
		noSplit = false
		configPath = ""
		colorMode = "auto"
		verbose = false
	}
	reset()
	t.Cleanup(reset)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testCmd() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	return cmd, &buf
}

func TestRunCutRequiresMode(t *testing.T) {
	resetFlags(t)
	cmd, _ := testCmd()

	err := runCut(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must specify")
}

func TestRunCutCharacters(t *testing.T) {
	resetFlags(t)
	charList = "1-3"
	path := writeFile(t, "in.txt", "hello\nworld\n")
	cmd, buf := testCmd()

	require.NoError(t, runCut(cmd, []string{path}))
	assert.Equal(t, "hel\nwor\n", buf.String())
}

func TestRunCutBytes(t *testing.T) {
	resetFlags(t)
	byteList = "1-"
	path := writeFile(t, "in.txt", "abcde\n")
	cmd, buf := testCmd()

	require.NoError(t, runCut(cmd, []string{path}))
	assert.Equal(t, "abcde\n", buf.String())
}

func TestRunCutFields(t *testing.T) {
	resetFlags(t)
	fieldList = "2,4"
	delimiter = ","
	path := writeFile(t, "in.csv", "a,b,c,d,e\n")
	cmd, buf := testCmd()

	require.NoError(t, runCut(cmd, []string{path}))
	assert.Equal(t, "b,d\n", buf.String())
}

func TestRunCutFieldsComplement(t *testing.T) {
	resetFlags(t)
	fieldList = "2,4"
	delimiter = ","
	complemented = true
	path := writeFile(t, "in.csv", "a,b,c,d,e\n")
	cmd, buf := testCmd()

	require.NoError(t, runCut(cmd, []string{path}))
	assert.Equal(t, "a,c,e\n", buf.String())
}

func TestRunCutOnlyDelimited(t *testing.T) {
	resetFlags(t)
	fieldList = "1"
	delimiter = ","
	onlyDelimited = true
	path := writeFile(t, "in.csv", "a,b\nplain\nc,d\n")
	cmd, buf := testCmd()

	require.NoError(t, runCut(cmd, []string{path}))
	assert.Equal(t, "a\nc\n", buf.String())
}

func TestRunCutOutputDelimiter(t *testing.T) {
	resetFlags(t)
	fieldList = "1,2"
	delimiter = ","
	outputDelim = ":"
	path := writeFile(t, "in.csv", "a,b,c\n")
	cmd, buf := testCmd()

	require.NoError(t, runCut(cmd, []string{path}))
	assert.Equal(t, "a:b\n", buf.String())
}

func TestRunCutZeroTerminated(t *testing.T) {
	resetFlags(t)
	charList = "1-3"
	zeroTerm = true
	path := writeFile(t, "in.bin", "hello\x00world\x00")
	cmd, buf := testCmd()

	require.NoError(t, runCut(cmd, []string{path}))
	assert.Equal(t, "hel\x00wor\x00", buf.String())
}

func TestRunCutBadRangeList(t *testing.T) {
	resetFlags(t)
	charList = "1,x"
	path := writeFile(t, "in.txt", "hello\n")
	cmd, buf := testCmd()

	err := runCut(cmd, []string{path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid range token")
	assert.Empty(t, buf.String())
}

func TestRunCutMissingFileFatalBeforeOutput(t *testing.T) {
	resetFlags(t)
	charList = "1-"
	present := writeFile(t, "present.txt", "aaa\n")
	missing := filepath.Join(t.TempDir(), "missing.txt")
	cmd, buf := testCmd()

	err := runCut(cmd, []string{present, missing})
	require.Error(t, err)
	assert.Contains(t, err.Error(), missing)
	assert.Empty(t, buf.String())
}

func TestRunCutEmptyFieldDelimiter(t *testing.T) {
	resetFlags(t)
	fieldList = "1"
	delimiter = ""
	path := writeFile(t, "in.txt", "a,b\n")
	cmd, buf := testCmd()

	err := runCut(cmd, []string{path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delimiter")
	assert.Empty(t, buf.String())
}

func TestRunCutConfigDefaults(t *testing.T) {
	resetFlags(t)
	fieldList = "1,2"
	configPath = writeFile(t, "cutlass.yaml", "delimiter: \",\"\noutput_delimiter: \"|\"\n")
	path := writeFile(t, "in.csv", "a,b,c\n")
	cmd, buf := testCmd()

	require.NoError(t, runCut(cmd, []string{path}))
	assert.Equal(t, "a|b\n", buf.String())
}

func TestRunCutMissingExplicitConfig(t *testing.T) {
	resetFlags(t)
	charList = "1"
	configPath = filepath.Join(t.TempDir(), "nope.yaml")
	cmd, buf := testCmd()

	err := runCut(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), configPath)
	assert.Empty(t, buf.String())
}

// The Execute-level tests run the real root command so flag parsing and
// the mutual-exclusion group are exercised.

func TestExecuteCutsViaFlags(t *testing.T) {
	resetFlags(t)
	path := writeFile(t, "in.csv", "a,b,c,d,e\n")
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"-f", "2,4", "-d", ",", path})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "b,d\n", buf.String())
}

func TestExecuteRejectsMultipleModes(t *testing.T) {
	resetFlags(t)
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"-b", "1", "-c", "1"})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "none of the others can be")
}
