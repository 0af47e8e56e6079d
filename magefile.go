//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Installs the application.
func Install() error {
	version, err := gitVersion()
	if err != nil {
		return err
	}
	return sh.Run("go", "install", "-ldflags", "-X main.version="+version)
}

// Creates an executable for the given platform. Possible platforms are "rpi32", "linux64" and "osxarm".
func Build(platform string) error {
	envMap, err := env(platform)
	if err != nil {
		return err
	}
	version, err := gitVersion()
	if err != nil {
		return err
	}
	return sh.RunWith(envMap, "go", "build", "-o", "birthday-rsvp", "-ldflags", "-X main.version="+version)
}

// Runs the test suite with the race detector enabled.
func Test() error {
	mg.Deps(Vet)
	return sh.RunV("go", "test", "-race", "./...")
}

// Reports suspicious constructs.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

func gitVersion() (string, error) {
	return sh.Output("git", "describe", "--always", "--long", "--dirty")
}

func env(platform string) (map[string]string, error) {
	switch platform {
	case "rpi32":
		return map[string]string{
			"GOOS":   "linux",
			"GOARCH": "arm",
			"GOARM":  "7",
		}, nil
	case "linux64":
		return map[string]string{
			"GOOS":   "linux",
			"GOARCH": "amd64",
		}, nil
	case "osxarm":
		return map[string]string{
			"GOOS":   "darwin",
			"GOARCH": "arm64",
		}, nil
	}

	return nil, fmt.Errorf("Platform '%s' not supported", platform)
}
