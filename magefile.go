//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target to run when none is specified
var Default = Build

// Build builds the banglahindi binary
func Build() error {
	return sh.RunV("go", "build", "-o", "banglahindi", "./cmd/banglahindi")
}

// Install installs banglahindi into GOPATH/bin
func Install() error {
	return sh.RunV("go", "install", "./cmd/banglahindi")
}

// Test runs all unit tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Race runs the tests with the race detector
func Race() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Vet runs go vet
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Check runs vet and the tests
func Check() {
	mg.SerialDeps(Vet, Test)
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm("banglahindi")
}
