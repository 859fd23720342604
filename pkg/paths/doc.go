// Package paths provides small filesystem helpers.
//
// # Filesystem abstraction
//
// Every helper takes an [afero.Fs] as its first argument so callers can run
// against the real disk or an in-memory filesystem in tests. [Default]
// returns the OS-backed filesystem; passing nil to any helper is equivalent
// to passing Default().
//
// # Helpers
//
// The helpers fall into three groups:
//
//   - creation and removal: [MaybeMake], [MaybeMakeAll], [Delete],
//     [CopyTree], [TempDir]
//   - content: [Read], [Write], [Append], [WriteClean], [CleanWriter]
//   - metadata: [MakeExecutable], [ParentPath], [RelPath]
//
// WriteClean strips trailing whitespace from every line and drops trailing
// blank lines, which keeps generated files diff-friendly.
package paths
