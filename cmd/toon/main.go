package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	toonbridge "github.com/wippyai/toon-bridge"
	"github.com/wippyai/toon-bridge/codec/wasmcodec"
)

func main() {
	var (
		codecFile   = flag.String("codec", "", "Path to codec plugin wasm file")
		from        = flag.String("from", "json", "Input format: json or toon")
		delimiter   = flag.String("delimiter", "", "Delimiter token: comma, tab, or pipe")
		strict      = flag.Bool("strict", false, "Enable strict mode")
		pretty      = flag.Bool("pretty", false, "Indent JSON output (toon input only)")
		outFile     = flag.String("o", "", "Output file (default stdout)")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *codecFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: toon -codec <plugin.wasm> [-from json|toon] [file]")
		fmt.Fprintln(os.Stderr, "       toon -codec <plugin.wasm> -i  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			toonbridge.SetLogger(logger)
			wasmcodec.SetLogger(logger)
		}
	}

	ctx := context.Background()
	bridge, closeCodec, err := loadBridge(ctx, *codecFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeCodec()

	if *interactive {
		if err := runInteractive(bridge); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(bridge, *from, *delimiter, *strict, *pretty, *outFile, flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadBridge(ctx context.Context, codecFile string) (*toonbridge.Bridge, func(), error) {
	wasmBytes, err := os.ReadFile(codecFile)
	if err != nil {
		return nil, nil, fmt.Errorf("read codec: %w", err)
	}
	c, err := wasmcodec.Load(ctx, wasmBytes)
	if err != nil {
		return nil, nil, fmt.Errorf("load codec: %w", err)
	}
	return toonbridge.New(c), func() { c.Close(ctx) }, nil
}

func run(bridge *toonbridge.Bridge, from, delimiter string, strict, pretty bool, outFile, inFile string) error {
	input, err := readInput(inFile)
	if err != nil {
		return err
	}

	var output string
	switch from {
	case "json":
		output, err = bridge.JSONToTOON(input, delimiter, strict)
	case "toon":
		output, err = bridge.TOONToJSON(input, pretty, strict)
	default:
		return fmt.Errorf("unknown input format %q (use json or toon)", from)
	}
	if err != nil {
		return err
	}

	if outFile == "" {
		fmt.Println(output)
		return nil
	}
	return os.WriteFile(outFile, []byte(output), 0o644)
}

func readInput(inFile string) (string, error) {
	if inFile == "" || inFile == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(inFile)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}
