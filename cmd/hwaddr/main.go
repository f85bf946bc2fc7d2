package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/slashdevops/hwaddr"
	"github.com/slashdevops/hwaddr/internal/version"
)

const applicationName = "hwaddr"

// result is one converted argument.
type result struct {
	Input string `json:"input" yaml:"input"`
	MAC   string `json:"mac,omitempty" yaml:"mac,omitempty"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

func main() {
	// Conversion flags
	greedy := flag.Bool("greedy", false, "Group odd-length hex digits from the left, leaving a single trailing digit")
	strict := flag.Bool("strict", false, "Reject values wider than 48 bits instead of truncating")
	reverse := flag.Bool("reverse", false, "Parse formatted addresses back into integers")
	local := flag.Bool("local", false, "Show addresses of local physical network interfaces")

	// Output options
	jsonOutput := flag.Bool("json", false, "Output results as JSON")
	yamlOutput := flag.Bool("yaml", false, "Output results as YAML")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	debugFlag := flag.Bool("debug", false, "Enable debug logging")

	// Info flags
	versionFlag := flag.Bool("version", false, "Show version information")
	versionLongFlag := flag.Bool("version.long", false, "Show detailed version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "hwaddr - Convert integer hardware identifiers to MAC address notation\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n  hwaddr [flags] <value>...\n\nFlags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  hwaddr 81952921372024                 Decimal to 4A:89:26:C4:45:78\n")
		fmt.Fprintf(os.Stderr, "  hwaddr 0x4a8926c44578                 Hex literal\n")
		fmt.Fprintf(os.Stderr, "  hwaddr -greedy 0xabc                  Legacy grouping, 00:00:00:00:AB:C\n")
		fmt.Fprintf(os.Stderr, "  hwaddr -reverse 4A:89:26:C4:45:78     Address to integer\n")
		fmt.Fprintf(os.Stderr, "  hwaddr -local -json                   Local interfaces as JSON\n")
		fmt.Fprintf(os.Stderr, "  hwaddr -version                       Show version\n")
	}

	flag.Parse()

	if *versionFlag {
		fmt.Printf("%s version: %s\n", applicationName, version.Short())
		os.Exit(0)
	}

	if *versionLongFlag {
		fmt.Print(version.Long(applicationName))
		os.Exit(0)
	}

	if *noColor {
		color.NoColor = true
	}

	var logger *slog.Logger
	if *debugFlag {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		slog.SetDefault(logger)
	}

	formatter := hwaddr.New().WithStrict(*strict).WithLogger(logger)
	if *greedy {
		formatter.WithGrouping(hwaddr.GroupGreedy)
	}

	var results []result
	switch {
	case *local:
		addrs, err := hwaddr.LocalAddrs(logger)
		if err != nil {
			slog.Error("failed to list network interfaces", "error", err)
			os.Exit(1)
		}
		results = localResults(formatter, addrs)
	case flag.NArg() == 0:
		slog.Error("no values given; pass integers, or use -local")
		flag.Usage()
		os.Exit(1)
	case *reverse:
		results = reverseArgs(flag.Args())
	default:
		results = formatArgs(formatter, flag.Args())
	}

	var err error
	switch {
	case *jsonOutput:
		err = printJSON(os.Stdout, results)
	case *yamlOutput:
		err = printYAML(os.Stdout, results)
	default:
		printText(os.Stdout, os.Stderr, results, *reverse)
	}
	if err != nil {
		slog.Error("failed to encode output", "error", err)
		os.Exit(1)
	}

	if failed(results) {
		os.Exit(1)
	}
}

func formatArgs(formatter *hwaddr.Formatter, args []string) []result {
	results := make([]result, 0, len(args))
	for _, arg := range args {
		r := result{Input: arg}
		mac, err := formatter.FormatString(arg)
		if err != nil {
			r.Error = err.Error()
		} else {
			r.MAC = mac
		}
		results = append(results, r)
	}

	return results
}

func reverseArgs(args []string) []result {
	results := make([]result, 0, len(args))
	for _, arg := range args {
		r := result{Input: arg}
		value, err := hwaddr.Parse(arg)
		if err != nil {
			r.Error = err.Error()
		} else {
			r.MAC = hwaddr.Format(value)
			r.Value = strconv.FormatUint(value, 10)
		}
		results = append(results, r)
	}

	return results
}

func localResults(formatter *hwaddr.Formatter, addrs []uint64) []result {
	results := make([]result, 0, len(addrs))
	for _, value := range addrs {
		r := result{Input: strconv.FormatUint(value, 10), Value: strconv.FormatUint(value, 10)}
		mac, err := formatter.Format(value)
		if err != nil {
			r.Error = err.Error()
		} else {
			r.MAC = mac
		}
		results = append(results, r)
	}

	return results
}

func failed(results []result) bool {
	for _, r := range results {
		if r.Error != "" {
			return true
		}
	}

	return false
}

func printText(stdout, stderr io.Writer, results []result, reverse bool) {
	for _, r := range results {
		switch {
		case r.Error != "":
			fmt.Fprintf(stderr, "%s%s\n", color.RedString("error: "), r.Error)
		case reverse:
			fmt.Fprintln(stdout, r.Value)
		default:
			fmt.Fprintln(stdout, r.MAC)
		}
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func printYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}
