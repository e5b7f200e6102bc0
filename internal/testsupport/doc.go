// Package testsupport provides shared helpers for package tests: temp-dir
// configs, store lifecycle management, and a stub metadata lookup.
package testsupport
