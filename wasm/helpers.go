//go:build js && wasm

package main

import "github.com/copperhead-games/gomoku-engine/analyzer"

func newDefaultAnalyzer() *analyzer.Analyzer {
	return analyzer.New()
}
