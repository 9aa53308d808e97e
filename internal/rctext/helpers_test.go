package rctext

import (
	"strings"
	"unicode/utf16"
)

// crlf joins lines with CRLF line breaks and a trailing one.
func crlf(lines ...string) string {
	return strings.Join(lines, "\r\n") + "\r\n"
}

func narrow(s string, headroom int) []byte {
	return NewBuffer([]byte(s), headroom)
}

func wide(s string, headroom int) []uint16 {
	return NewBuffer(utf16.Encode([]rune(s)), headroom)
}

func narrowText(s []byte) string {
	return string(Content(s))
}

func wideText(s []uint16) string {
	return string(utf16.Decode(Content(s)))
}

var sampleRC = crlf(
	`VS_VERSION_INFO VERSIONINFO`,
	` FILEVERSION 1,0,0,1`,
	` PRODUCTVERSION 1,0,0,1`,
	` FILEFLAGSMASK 0x3fL`,
	` FILEFLAGS 0x0L`,
	` FILEOS 0x40004L`,
	` FILETYPE 0x1L`,
	` FILESUBTYPE 0x0L`,
	`BEGIN`,
	`    BLOCK "StringFileInfo"`,
	`    BEGIN`,
	`        BLOCK "040904b0"`,
	`        BEGIN`,
	`            VALUE "CompanyName", "Test Company"`,
	`            VALUE "FileVersion", "1.0.0.1"`,
	`            VALUE "ProductVersion", "1.0.0.1"`,
	`        END`,
	`    END`,
	`    BLOCK "VarFileInfo"`,
	`    BEGIN`,
	`        VALUE "Translation", 0x409, 1200`,
	`    END`,
	`END`,
)

// testHeadroom leaves room for every replacement the tests make.
const testHeadroom = 1024
