package main

// This file contains go:generate commands for regenerating the tray icons.
// Run `go generate` in this directory to rewrite ../../res.

//go:generate go run . -o ../../res
