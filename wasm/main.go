//go:build js && wasm

// Command wasm exposes the JSON analyze endpoint to a browser host via
// syscall/js, the same callback-registration shape the reference
// engine's WASM build used.
package main

import (
	"context"
	"syscall/js"
)

func analyze(this js.Value, args []js.Value) interface{} {
	jsonBoard := []byte(args[0].String())

	an := newDefaultAnalyzer()
	jsonMoves, err := an.Analyze(context.Background(), jsonBoard)
	if err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}
	return js.ValueOf(string(jsonMoves))
}

func registerCallbacks() {
	js.Global().Set("gomokuEngine", js.ValueOf(map[string]interface{}{
		"analyze": js.FuncOf(analyze),
	}))
}

func main() {
	registerCallbacks()
	// Keep the Go program alive so its registered callbacks stay live.
	select {}
}
