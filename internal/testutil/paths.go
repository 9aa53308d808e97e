package testutil

// Fixture resource scripts relative to the repository root.
// These constants should be used instead of hardcoding paths in test files.
const (
	// ScriptVSGenerated is an 8-bit script in the layout Visual Studio
	// writes, with #ifdef _DEBUG inside the VERSIONINFO block.
	ScriptVSGenerated = "testdata/rc/vs-generated.rc"

	// ScriptUnicode is a UTF-16LE script with a byte order mark and
	// non-ASCII string values.
	ScriptUnicode = "testdata/rc/unicode-utf16le.rc"

	// ScriptCorrupt has a PRODUCTVERSION tuple that does not parse.
	ScriptCorrupt = "testdata/rc/corrupt.rc"
)
