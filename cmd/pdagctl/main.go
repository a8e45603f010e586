// Command pdagctl is a reference REPL around the pdag engine: load
// rulebase files, optimize, and normalize lines typed at the prompt.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/lognorm/pdag"
	"github.com/lognorm/pdag/internal/config"
)

const helpText = `pdagctl — pdag log normalization REPL

Commands:
  load <file>   Install every sample line from <file> into the pdag
  optimize      Run literal-path compaction (do this once, after loading)
  dump          Print an indented tree of the main root
  dot           Print a Graphviz DOT rendering of the main root
  stats         Print node/edge counts, longest path, and per-parser edge counts
  help          Show this help message
  exit / quit   Exit the REPL

Any other input is normalized against the current pdag.
`

func main() {
	opts := config.DefaultOptions()
	if len(os.Args) > 1 {
		opts = config.LoadOptionsOrDefault(os.Args[1])
	}

	ctx := pdag.New()
	ctx.SetDebug(opts.Debug)
	for _, f := range opts.RulebaseFiles {
		if err := loadFile(ctx, f); err != nil {
			fmt.Fprintf(os.Stderr, "error loading %q: %v\n", f, err)
		}
	}

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("pdagctl — pdag log normalization engine")
	fmt.Println(`Type "help" for available commands.`)
	fmt.Println()

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := strings.ToLower(parts[0])

		switch cmd {
		case "exit", "quit":
			return

		case "help":
			fmt.Print(helpText)

		case "load":
			if len(parts) < 2 {
				fmt.Fprintln(os.Stderr, "usage: load <file>")
				continue
			}
			if err := loadFile(ctx, parts[1]); err != nil {
				fmt.Fprintf(os.Stderr, "error loading %q: %v\n", parts[1], err)
				continue
			}
			fmt.Printf("loaded %q\n", parts[1])

		case "optimize":
			ctx.Optimize()
			fmt.Println("optimized")

		case "dump":
			fmt.Print(ctx.Dump())

		case "dot":
			fmt.Print(ctx.DOT())

		case "stats":
			printStats(ctx.Stats())

		default:
			res := ctx.Normalize(line)
			fmt.Println(res.String())
		}
	}
}

func loadFile(ctx *pdag.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := ctx.AddSample(line); err != nil {
			return err
		}
	}
	return nil
}

func printStats(s pdag.Stats) {
	fmt.Printf("nodes: %d (terminal: %d)\n", s.Nodes, s.TerminalNodes)
	fmt.Printf("parser edges: %d, custom-type edges: %d\n", s.ParserEdges, s.CustomEdges)
	fmt.Printf("longest path: %d\n", s.LongestPath)
	fmt.Println("per-parser edge counts:")
	for name, count := range s.ParserCounts {
		fmt.Printf("  %-12s %d\n", name, count)
	}
}
