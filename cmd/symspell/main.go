// Command symspell is a CLI harness around the symspell library: it loads
// a frequency dictionary and either checks a list of misspelled/expected
// pairs, or runs a benchmark against a wrong<TAB>correct misspelling file
// and reports accuracy.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/go-symspell/symspell/symspell"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a TOML config file (defaults built in if omitted)")
		termCol    = flag.Int("term-col", -1, "0-based column holding the term (overrides config)")
		countCol   = flag.Int("count-col", -1, "0-based column holding the frequency (overrides config)")
		bench      = flag.Bool("bench", false, "run in benchmark mode: second argument is a wrong<TAB>correct file")
	)
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: symspell [-bench] [-config path] [-term-col n] [-count-col n] <dictionary_file> [misspelled expected ...]")
		os.Exit(2)
	}

	cfg := symspell.DefaultConfig()
	if *configPath != "" {
		loaded, err := symspell.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "symspell: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *termCol >= 0 {
		cfg.Load.TermColumn = *termCol
	}
	if *countCol >= 0 {
		cfg.Load.CountColumn = *countCol
	}

	dict, err := symspell.Create(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "symspell: %v\n", err)
		os.Exit(1)
	}

	result, err := dict.LoadDictionary(args[0], cfg.Load.TermColumn, cfg.Load.CountColumn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "symspell: load %s: %v\n", args[0], err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "loaded %d words from %d lines (%d skipped)\n", result.WordsAdmitted, result.LinesRead, result.LinesSkipped)

	if *bench {
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "usage: symspell -bench <dictionary_file> <misspelling_file>")
			os.Exit(2)
		}
		os.Exit(runBenchmark(dict, args[1]))
	}

	os.Exit(runPairs(dict, args[1:]))
}

// runPairs checks each misspelled/expected pair against Lookup's top
// suggestion, returning 0 only if every pair matched.
func runPairs(dict *symspell.Dictionary, pairs []string) int {
	if len(pairs)%2 != 0 {
		fmt.Fprintln(os.Stderr, "symspell: misspelled/expected arguments must come in pairs")
		return 2
	}

	scratch := dict.NewScratch()
	allMatched := true
	for i := 0; i < len(pairs); i += 2 {
		misspelled, expected := pairs[i], pairs[i+1]
		suggestions := dict.Lookup(misspelled, 2, 1, symspell.Top, scratch)
		got := ""
		if len(suggestions) > 0 {
			got = suggestions[0].Term
		}
		if got != expected {
			allMatched = false
			fmt.Printf("MISMATCH %q: want %q, got %q\n", misspelled, expected, got)
		} else {
			fmt.Printf("OK %q -> %q\n", misspelled, got)
		}
	}
	if allMatched {
		return 0
	}
	return 1
}

// runBenchmark reads a wrong<TAB>correct misspelling file, scores Lookup's
// top suggestion against every line, prints accuracy, and writes every
// mismatch to errors.txt in the current directory.
func runBenchmark(dict *symspell.Dictionary, path string) int {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "symspell: open %s: %v\n", path, err)
		return 1
	}
	defer f.Close()

	errorsFile, err := os.Create("errors.txt")
	if err != nil {
		fmt.Fprintf(os.Stderr, "symspell: create errors.txt: %v\n", err)
		return 1
	}
	defer errorsFile.Close()

	scratch := dict.NewScratch()
	var total, correct int
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		fields := strings.Split(line, "\t")
		if len(fields) != 2 {
			continue
		}
		wrong, want := fields[0], fields[1]
		total++

		suggestions := dict.Lookup(wrong, 2, 1, symspell.Top, scratch)
		got := ""
		if len(suggestions) > 0 {
			got = suggestions[0].Term
		}
		if got == want {
			correct++
		} else {
			fmt.Fprintf(errorsFile, "%s\t%s\t%s\n", wrong, want, got)
		}
	}

	if total == 0 {
		fmt.Println("no misspelling pairs to score")
		return 1
	}
	fmt.Printf("accuracy: %.2f%% (%d/%d)\n", 100*float64(correct)/float64(total), correct, total)
	return 0
}
