//go:build js && wasm

// GoSteg WASM: client-side merge and unmerge.
// Compiled with: GOOS=js GOARCH=wasm go build -o gosteg.wasm ./clients/wasm/
package main

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strconv"
	"syscall/js"

	"github.com/xob0t/GoSteg/pkg/codec"
	"github.com/xob0t/GoSteg/pkg/generator"
	"github.com/xob0t/GoSteg/pkg/stego"
)

func main() {
	fmt.Println("GoSteg WASM loaded")

	js.Global().Set("goMerge", js.FuncOf(merge))
	js.Global().Set("goUnmerge", js.FuncOf(unmerge))
	js.Global().Set("goClassify", js.FuncOf(classify))
	js.Global().Set("goCover", js.FuncOf(cover))
	js.Global().Set("goReady", js.ValueOf(true))

	// WASM must not exit.
	select {}
}

// goMerge(coverB64, secretB64, depth?, fit?) returns a base64 PNG.
func merge(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return js.ValueOf("error: need cover, secret")
	}
	coverData, err := decodeArg(args[0])
	if err != nil {
		return errorValue("cover", err)
	}
	secretData, err := decodeArg(args[1])
	if err != nil {
		return errorValue("secret", err)
	}

	opts := optionsFrom(args, 2)
	if len(args) > 3 && args[3].Type() == js.TypeBoolean {
		opts.FitSecret = args[3].Bool()
	}

	out, err := stego.MergeBytes(coverData, secretData, opts)
	if err != nil {
		return errorValue("merge", err)
	}
	return js.ValueOf(base64.StdEncoding.EncodeToString(out))
}

// goUnmerge(mergedB64, format?, depth?) returns the recovered image as
// base64. format is "png" (default) or "jpeg".
func unmerge(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf("error: need merged")
	}
	data, err := decodeArg(args[0])
	if err != nil {
		return errorValue("merged", err)
	}

	t := codec.PNG
	if len(args) > 1 && args[1].Type() == js.TypeString {
		switch args[1].String() {
		case "", "png":
		case "jpeg", "jpg":
			t = codec.JPEG
		default:
			return js.ValueOf("error: format must be png or jpeg")
		}
	}

	out, err := stego.UnmergeBytes(data, t, optionsFrom(args, 2))
	if err != nil {
		return errorValue("unmerge", err)
	}
	return js.ValueOf(base64.StdEncoding.EncodeToString(out))
}

// goClassify(b64) returns "png", "jpeg" or "unknown".
func classify(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf("error: need data")
	}
	data, err := decodeArg(args[0])
	if err != nil {
		return errorValue("data", err)
	}
	return js.ValueOf(codec.ClassifyBytes(data).String())
}

// goCover(width, height, color, pattern, label) returns a base64 PNG cover.
func cover(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return js.ValueOf("error: need width, height, color")
	}
	cfg := generator.Config{
		Width:  args[0].Int(),
		Height: args[1].Int(),
		Color:  args[2].String(),
	}
	if len(args) > 3 {
		cfg.Pattern = generator.Pattern(args[3].String())
	}
	if len(args) > 4 {
		cfg.Label = args[4].String()
	}

	var buf bytes.Buffer
	if err := generator.GenerateToWriter(&buf, cfg); err != nil {
		return errorValue("cover", err)
	}
	return js.ValueOf(base64.StdEncoding.EncodeToString(buf.Bytes()))
}

func decodeArg(v js.Value) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(v.String())
	if err != nil {
		return nil, fmt.Errorf("invalid base64: %w", err)
	}
	return data, nil
}

// optionsFrom reads an optional depth argument at index i. Numbers and
// numeric strings are accepted.
func optionsFrom(args []js.Value, i int) stego.Options {
	opts := stego.DefaultOptions()
	if len(args) <= i {
		return opts
	}
	switch v := args[i]; v.Type() {
	case js.TypeNumber:
		opts.Depth = uint8(v.Int())
	case js.TypeString:
		if d, err := strconv.ParseUint(v.String(), 10, 8); err == nil {
			opts.Depth = uint8(d)
		}
	}
	return opts
}

func errorValue(what string, err error) js.Value {
	return js.ValueOf("error: " + what + ": " + err.Error())
}
