//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const serverBin = "./bin/server"

func goModDownload() error {
	return sh.Run("go", "mod", "download")
}

// Build builds server binary
func Build() error {
	mg.Deps(goModDownload)
	return sh.Run("go", "build", "-o", serverBin, "cmd/main.go")
}

// Run starts server
func Run() error {
	mg.Deps(Build)
	return sh.Run(serverBin)
}

// Test runs unit tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// E2E drives the web UI in headless chrome
func E2E() error {
	return sh.RunV("go", "test", "-tags", "e2e", "-run", "TestBrowser", "./internal/web/...")
}
