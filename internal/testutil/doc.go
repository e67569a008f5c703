// Package testutil provides deterministic time and ID sources for tests of
// the generation history.
package testutil
