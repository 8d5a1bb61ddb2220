//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Runs the demo against the recording backend with config.toml.
func (Run) Demo() error {
	mg.Deps(Test.Vet)
	fmt.Println("Run demo...")
	if _, err := executeCmd("go", withArgs("run", "main.go", "-config", "config.toml"), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs the demo and reruns it whenever config.toml changes.
func (Run) Watch() error {
	if _, err := executeCmd("go", withArgs("run", "main.go", "-config", "config.toml", "-watch"), withStream()); err != nil {
		return err
	}
	return nil
}
