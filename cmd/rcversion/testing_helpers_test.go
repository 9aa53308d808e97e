package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/joshuapare/rcversion/internal/testutil"
)

const sampleRC = "VS_VERSION_INFO VERSIONINFO\r\n" +
	" FILEVERSION 1,0,0,1\r\n" +
	" PRODUCTVERSION 1,0,0,1\r\n" +
	"BEGIN\r\n" +
	"    BLOCK \"StringFileInfo\"\r\n" +
	"    BEGIN\r\n" +
	"        BLOCK \"040904b0\"\r\n" +
	"        BEGIN\r\n" +
	"            VALUE \"CompanyName\", \"Test Company\"\r\n" +
	"            VALUE \"FileVersion\", \"1.0.0.1\"\r\n" +
	"            VALUE \"ProductVersion\", \"1.0.0.1\"\r\n" +
	"        END\r\n" +
	"    END\r\n" +
	"END\r\n" +
	"\r\n" +
	"IDI_ICON1 ICON \"app.ico\"\r\n"

// writeRC writes content to a fresh resource script and returns its path
func writeRC(t *testing.T, content string) string {
	t.Helper()
	return testutil.WriteScript(t, "app.rc", []byte(content))
}

// readFile returns the content of path as a string
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

// runCLI runs the command line and returns the exit code with both streams
func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}
