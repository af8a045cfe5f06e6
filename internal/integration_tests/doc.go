// Package integration_tests holds end-to-end scenarios that replay lineage
// scripts through the app package and inspect the rendered genealogy.
package integration_tests
