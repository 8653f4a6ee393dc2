package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"

	"github.com/goliatone/go-bookfields/internal/cliconfig"
	"github.com/goliatone/go-bookfields/internal/schemafile"
	"github.com/goliatone/go-bookfields/pkg/fields"
	"github.com/goliatone/go-bookfields/pkg/validation"
)

func main() {
	var (
		schemaFlag    = flag.String("schema", "schema.yaml", "form schema file (YAML or JSON)")
		responsesFlag = flag.String("responses", "", "responses file to validate (YAML or JSON)")
		configFlag    = flag.String("config", "", "optional CLI config file")
		partialFlag   = flag.Bool("partial", false, "draft mode: skip requiredness checks")
		askFlag       = flag.Bool("ask", false, "prompt interactively instead of reading a responses file")
	)
	flag.Parse()

	cfg, err := cliconfig.Load(*configFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	registry := fields.DefaultRegistry()
	schema, err := schemafile.LoadSchema(*schemaFlag, registry)
	if err != nil {
		logger.Error("schema rejected", "error", err)
		os.Exit(1)
	}

	partial := cfg.Partial || *partialFlag
	localize := localizerFor(cfg.Locale)

	var responses map[string]any
	switch {
	case *askFlag:
		responses, err = askResponses(schema.Fields, registry)
		if err != nil {
			logger.Error("prompting failed", "error", err)
			os.Exit(1)
		}
	case *responsesFlag != "":
		responses, err = schemafile.LoadResponses(*responsesFlag)
		if err != nil {
			logger.Error("responses rejected", "error", err)
			os.Exit(1)
		}
	default:
		logger.Error("either -responses or -ask is required")
		os.Exit(2)
	}

	result, err := validation.ValidateAll(schema.Fields, responses,
		validation.Partial(partial),
		validation.WithLocalizer(localize),
		validation.WithRegistry(registry),
	)
	if err != nil {
		logger.Error("schema configuration is broken", "error", err)
		os.Exit(1)
	}

	if cfg.Output == "json" {
		printJSON(result)
	} else {
		printText(result)
	}
	if !result.Valid() {
		os.Exit(1)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
		Level: lvl,
	}))
}

func printJSON(result validation.Result) {
	payload := struct {
		Valid  bool                          `json:"valid"`
		Values map[string]any                `json:"values,omitempty"`
		Issues map[string][]validation.Issue `json:"issues,omitempty"`
	}{Valid: result.Valid(), Issues: result.Issues}
	if len(result.Values) > 0 {
		payload.Values = make(map[string]any, len(result.Values))
		for name, value := range result.Values {
			payload.Values[name] = value.Interface()
		}
	}
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	encoder.Encode(payload)
}

func printText(result validation.Result) {
	if result.Valid() {
		fmt.Println("all responses valid")
		return
	}
	names := make([]string, 0, len(result.Issues))
	for name := range result.Issues {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, issue := range result.Issues[name] {
			fmt.Printf("%s: %s\n", name, issue.Message)
		}
	}
}
