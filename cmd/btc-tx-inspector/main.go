package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/jessevdk/go-flags"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/harshaaaaaaaaaa/btc-tx-visualizer/internal/tx/parser"
	"github.com/harshaaaaaaaaaa/btc-tx-visualizer/internal/tx/render"
)

var config struct {
	File        string `short:"f" long:"file" env:"BTC_TX_INSPECTOR_FILE" description:"read transaction hex from file"`
	Output      string `short:"o" long:"output" env:"BTC_TX_INSPECTOR_OUTPUT" description:"output format" choice:"pretty" choice:"json" choice:"summary" choice:"diagram" default:"pretty"`
	Compact     bool   `long:"compact" description:"compact json output"`
	NoColor     bool   `long:"no-color" env:"NO_COLOR" description:"disable colorized output"`
	InputValues string `long:"input-values" env:"BTC_TX_INSPECTOR_INPUT_VALUES" description:"comma-separated input values in satoshis, one per input, for fee calculation"`
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	args, err := flags.ParseArgs(&config, os.Args[1:])
	if err != nil {
		if flags.WroteHelp(err) {
			return
		}
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}
	if config.NoColor {
		color.NoColor = true
	}

	txHex, err := readTxHex(args)
	if err != nil {
		logger.Fatal("Failed to read transaction", zap.Error(err))
	}

	tx, err := parser.DecodeHex(txHex)
	if err != nil {
		logger.Fatal("Failed to parse transaction", zap.Error(err))
	}

	if config.InputValues != "" {
		values, err := parseInputValues(config.InputValues)
		if err != nil {
			logger.Fatal("Failed to parse input values", zap.Error(err))
		}
		if len(values) != len(tx.Inputs) {
			logger.Warn("Input value count mismatch",
				zap.Int("provided", len(values)),
				zap.Int("inputs", len(tx.Inputs)))
		}
		tx.SetInputValues(values)
	}

	switch config.Output {
	case render.FormatJSON:
		if err := render.JSON(os.Stdout, tx, config.Compact); err != nil {
			logger.Fatal("Failed to render json", zap.Error(err))
		}
	case render.FormatSummary:
		render.Summary(os.Stdout, tx)
	case render.FormatDiagram:
		render.Diagram(os.Stdout, tx)
	default:
		render.Pretty(os.Stdout, tx)
	}
}

// readTxHex resolves the transaction hex from, in order of precedence, the
// --file flag, the positional argument ("-" selects stdin) or piped stdin.
func readTxHex(args []string) (string, error) {
	if config.File != "" {
		content, err := os.ReadFile(config.File)
		if err != nil {
			return "", fmt.Errorf("read file %q: %w", config.File, err)
		}
		return strings.TrimSpace(string(content)), nil
	}

	if len(args) > 0 && args[0] != "-" {
		return strings.TrimSpace(args[0]), nil
	}

	if len(args) == 0 && isatty.IsTerminal(os.Stdin.Fd()) {
		return "", fmt.Errorf("no transaction provided, use -h for help")
	}

	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimSpace(string(content)), nil
}

func parseInputValues(raw string) ([]uint64, error) {
	parts := strings.Split(raw, ",")
	values := make([]uint64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("input value %q: %w", part, err)
		}
		values = append(values, v)
	}
	return values, nil
}
