// Command aoc2017 prints answers to Advent of Code 2017 puzzles.
//
// Usage:
//
//	aoc2017 [flags] day [part]
//	aoc2017 [flags] list
//	aoc2017 [flags] load day file
//	aoc2017 [flags] -i
//
// A solution may also be named the short way, as in "7a" or "7b".
// Without a part, both parts are run.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/dustin/go-humanize"
	"github.com/kr/pretty"

	"github.com/cespare/aoc2017/advent"
	"github.com/cespare/aoc2017/input"
)

func main() {
	log.SetFlags(0)

	configFile := flag.String("config", "", "INI config file (default "+defaultConfigFile+" if present)")
	inputDir := flag.String("dir", "", "directory holding the DD.txt puzzle inputs (overrides config)")
	useStdin := flag.Bool("stdin", false, "read the puzzle input from stdin")
	verbose := flag.Bool("v", false, "describe the input being solved")
	interactive := flag.Bool("i", false, "prompt for solutions to run")
	debug := flag.Bool("debug", false, "print the effective configuration")
	flag.Usage = usage
	flag.Parse()

	path, required := *configFile, true
	if path == "" {
		path, required = defaultConfigFile, false
	}
	cfg, err := loadConfig(path, required)
	if err != nil {
		log.Fatal(err)
	}
	if *inputDir != "" {
		cfg.InputDir = *inputDir
	}
	if *debug {
		pretty.Println(cfg)
	}
	dir := input.Dir{Path: cfg.InputDir}

	if *interactive {
		if err := repl(cfg, dir); err != nil {
			log.Fatal(err)
		}
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}
	switch args[0] {
	case "list":
		for _, k := range advent.Registered() {
			fmt.Println(k)
		}
		return
	case "load":
		if len(args) != 3 {
			log.Fatal("usage: aoc2017 load day file")
		}
		day, err := strconv.Atoi(args[1])
		if err != nil {
			log.Fatalf("bad day %q", args[1])
		}
		if err := dir.Install(day, args[2]); err != nil {
			log.Fatal(err)
		}
		return
	}

	day, parts, err := parseRequest(args)
	if err != nil {
		log.Fatal(err)
	}
	var src advent.Source = dir
	if *useStdin {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal(err)
		}
		src = input.Memory{day: string(b)}
	} else if *verbose {
		describeInput(dir, day)
	}
	s := advent.New(src)
	for _, part := range parts {
		fmt.Println(s.Solve(day, part == advent.Part1))
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [flags] day [part]\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "       %s [flags] list\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "       %s [flags] load day file\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "where a solution is one of:")
	var names []string
	for _, k := range advent.Registered() {
		names = append(names, k.String())
	}
	fmt.Fprintln(os.Stderr, strings.Join(names, " "))
	fmt.Fprintln(os.Stderr, "flags:")
	flag.PrintDefaults()
}

func describeInput(dir input.Dir, day int) {
	size, err := dir.Size(day)
	if err != nil {
		log.Printf("day %d: no input at %s", day, dir.Filename(day))
		return
	}
	log.Printf("day %d: %s (%s)", day, dir.Filename(day), humanize.Bytes(uint64(size)))
}

// parseRequest interprets the arguments naming a solution: a day and an
// optional part ("1", "2", "a", "b", "one", or "two"), or a single short
// name like "7b". With no part given, both parts are returned.
func parseRequest(args []string) (day int, parts []advent.Part, err error) {
	if len(args) == 0 || len(args) > 2 {
		return 0, nil, errors.New("need a day and an optional part")
	}
	dayArg, partArg := args[0], ""
	if len(args) == 2 {
		partArg = args[1]
	} else if n := len(dayArg); n > 1 && (dayArg[n-1] == 'a' || dayArg[n-1] == 'b') {
		dayArg, partArg = dayArg[:n-1], dayArg[n-1:]
	}
	day, err = strconv.Atoi(dayArg)
	if err != nil {
		return 0, nil, fmt.Errorf("bad day %q", dayArg)
	}
	switch strings.ToLower(partArg) {
	case "":
		parts = []advent.Part{advent.Part1, advent.Part2}
	case "1", "a", "one":
		parts = []advent.Part{advent.Part1}
	case "2", "b", "two":
		parts = []advent.Part{advent.Part2}
	default:
		return 0, nil, fmt.Errorf("bad part %q", partArg)
	}
	return day, parts, nil
}

func repl(cfg config, dir input.Dir) error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:      cfg.Prompt,
		HistoryFile: cfg.HistoryFile,
	})
	if err != nil {
		return err
	}
	defer l.Close()

	s := advent.New(dir)
	for {
		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return nil
		default:
			return err
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "list" {
			for _, k := range advent.Registered() {
				fmt.Println(k)
			}
			continue
		}
		day, parts, err := parseRequest(fields)
		if err != nil {
			fmt.Println(err)
			continue
		}
		for _, part := range parts {
			fmt.Printf("%s: %s\n", advent.Key{Day: day, Part: part}, s.Solve(day, part == advent.Part1))
		}
	}
}
