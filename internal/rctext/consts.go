package rctext

// ============================================================================
// Keywords
// ============================================================================

const (
	// KeywordVersionInfo opens the version resource block
	KeywordVersionInfo = "VERSIONINFO"

	// KeywordFileVersion is a fixed record followed directly by a tuple
	KeywordFileVersion = "FILEVERSION"

	// KeywordProductVersion is a fixed record followed directly by a tuple
	KeywordProductVersion = "PRODUCTVERSION"

	// KeywordValue introduces a string-table entry
	KeywordValue = "VALUE"

	// NameFileVersion is the quoted string-table name holding the file version
	NameFileVersion = `"FileVersion"`

	// NameProductVersion is the quoted string-table name holding the product version
	NameProductVersion = `"ProductVersion"`
)

// ============================================================================
// Character Classes
// ============================================================================

const (
	// blanks separate words on a line
	blanks = " \t"

	// tupleSeparators may appear, in any run, between tuple components
	tupleSeparators = ".,\t "

	// nameSeparators sit between a string-table name and its value
	nameSeparators = ", \t"

	preprocessorMark = '#'
	quote            = '"'
)

// ============================================================================
// Sizes
// ============================================================================

const (
	// MinPadding is the number of zero elements every buffer carries after its content
	MinPadding = 2

	// MaxVersionText is the longest tuple Format can produce: four 10-digit
	// numbers and three ", " separators
	MaxVersionText = 4*10 + 3*2

	// FormatLimit bounds the scratch space a formatted tuple may occupy
	FormatLimit = 256

	// fragmentLimit caps how much text a diagnostic line quotes
	fragmentLimit = 64
)

type role int

const (
	// roleStructural keywords keep the scan inside the block but carry no tuple
	roleStructural role = iota
	// roleFixed keywords are followed by a tuple on the same line
	roleFixed
	// roleString keywords are followed by a quoted name and a quoted value
	roleString
)

func (r role) String() string {
	switch r {
	case roleFixed:
		return "fixed"
	case roleString:
		return "string"
	default:
		return "structural"
	}
}

type keyword struct {
	text string
	role role
}

// keywords is checked in order against the start of every line in the block.
var keywords = []keyword{
	{text: KeywordProductVersion, role: roleFixed},
	{text: KeywordFileVersion, role: roleFixed},
	{text: "FILEFLAGSMASK", role: roleStructural},
	{text: "FILEFLAGS", role: roleStructural},
	{text: "FILEOS", role: roleStructural},
	{text: "FILETYPE", role: roleStructural},
	{text: "FILESUBTYPE", role: roleStructural},
	{text: "BEGIN", role: roleStructural},
	{text: "BLOCK", role: roleStructural},
	{text: "END", role: roleStructural},
	{text: KeywordValue, role: roleString},
}

// stringNames are the string-table entries whose values are rewritten.
var stringNames = []string{NameFileVersion, NameProductVersion}
