//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Test mg.Namespace

// Runs every package test.
func (Test) All() error {
	if _, err := executeCmd("go", withArgs("test", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs go vet over the module.
func (Test) Vet() error {
	if _, err := executeCmd("go", withArgs("vet", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs the tests of a single package, e.g. mage test:pkg ./engine/vertex
func (Test) Pkg(pkg string) error {
	if _, err := executeCmd("go", withArgs("test", "-v", pkg), withStream()); err != nil {
		return err
	}
	return nil
}
