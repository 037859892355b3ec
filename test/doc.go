// Package test holds the docker backed integration suite.
// Run it with: go test -tags integration ./test/...
package test
