// Package rctext locates and rewrites the version fields of a VERSIONINFO
// block inside a Windows resource script held in memory.
//
// The package is not an RC parser. It finds the VERSIONINFO keyword, walks
// the lines that follow as long as they start with a keyword it expects
// inside the block, and records where each four-part version tuple begins:
//
//	VS_VERSION_INFO VERSIONINFO
//	 FILEVERSION 1,0,0,1                   <- fixed record
//	 PRODUCTVERSION 1,0,0,1                <- fixed record
//	 FILEFLAGSMASK 0x3fL                   <- structural, no tuple
//	BEGIN
//	    BLOCK "StringFileInfo"
//	    BEGIN
//	        BLOCK "040904b0"
//	        BEGIN
//	            VALUE "FileVersion", "1.0.0.1"     <- string-table entry
//	            VALUE "ProductVersion", "1.0.0.1"  <- string-table entry
//	        END
//	    END
//	END
//
// Every tuple is then parsed, recomputed from the caller's overrides, and
// replaced in place. Replacements run from the last occurrence to the first
// so that a change of length never moves an offset that is still pending.
//
// # Buffers
//
// The algorithm is generic over the element type: byte for 8-bit text and
// uint16 for UTF-16 text. A buffer is a slice whose length is its total
// capacity; the logical content ends at the first zero element. Replacements
// shift the tail of the content inside that capacity and never reallocate, so
// callers reserve headroom with NewBuffer before calling UpdateVersion.
//
// # Comments
//
// Both // line comments and /* block */ comments are skipped wherever
// whitespace is allowed. An unterminated block comment is ordinary text.
// Block comments do not nest.
//
// # Concurrency
//
// Nothing here is safe for concurrent use on the same buffer. An Updater
// holds no per-call state and may be reused sequentially.
package rctext
