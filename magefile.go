//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Build compiles both binaries into ./bin.
func Build() error {
	if err := sh.Run("go", "build", "-o", "bin/translator", "./cmd/translator"); err != nil {
		return err
	}
	return sh.Run("go", "build", "-o", "bin/translator-host", "./cmd/translator-host")
}

// Test runs the full test suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet across the module.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// All builds after vetting and testing.
func All() {
	mg.SerialDeps(Vet, Test, Build)
}

// Clean removes build artifacts.
func Clean() error {
	return sh.Rm("bin")
}
