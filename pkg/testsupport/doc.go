// Package testsupport holds golden-file helpers and a fake rendering API for
// tests.
package testsupport
