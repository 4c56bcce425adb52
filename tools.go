//go:build tools

// Package main отслеживает инструменты go generate (mockgen) в go.mod.
package main

import (
	_ "go.uber.org/mock/mockgen"
)
