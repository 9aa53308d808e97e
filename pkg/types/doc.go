// Package types defines the public vocabulary of rcversion: the four-part
// version tuple, the override request that drives a rewrite, and the error
// taxonomy shared by the scanner, the file handler, and the CLI.
//
// Design goals:
//   - Explicit sentinels instead of magic values scattered through callers.
//   - Errors classify into a small, stable set of codes that map directly
//     onto process exit codes.
//   - No I/O; everything here is plain data.
//
// This package has no dependencies beyond the standard library.
package types
