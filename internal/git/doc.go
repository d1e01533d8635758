// Package git locates a repository's metadata directory and reads its HEAD.
//
// It never executes git and never opens the object database. It provides:
//   - Root location (walk upward for a .git directory or a "gitdir:" redirect file)
//   - HEAD classification (symbolic reference or detached raw identifier)
//   - First-line file reading shared by both
//
// All filesystem access goes through a billy filesystem so callers can swap
// the host filesystem for an in-memory one.
package git
