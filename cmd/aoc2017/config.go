package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/vaughan0/go-ini"

	"github.com/cespare/aoc2017/input"
)

const defaultConfigFile = "aoc2017.ini"

type config struct {
	InputDir    string
	Prompt      string
	HistoryFile string
}

func defaultConfig() config {
	return config{
		InputDir: input.DefaultDir,
		Prompt:   "aoc2017> ",
	}
}

// loadConfig reads an INI file such as
//
//	[inputs]
//	dir = textfiles
//
//	[repl]
//	prompt = aoc2017>
//	history = /tmp/aoc2017_history
//
// over the defaults. If required is false, a missing file is not an error.
func loadConfig(path string, required bool) (config, error) {
	cfg := defaultConfig()
	file, err := ini.LoadFile(path)
	if err != nil {
		if !required && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("error loading config (%s): %s", path, err)
	}
	if dir, ok := file.Get("inputs", "dir"); ok && dir != "" {
		cfg.InputDir = dir
	}
	if prompt, ok := file.Get("repl", "prompt"); ok && prompt != "" {
		cfg.Prompt = prompt + " "
	}
	if history, ok := file.Get("repl", "history"); ok {
		cfg.HistoryFile = history
	}
	return cfg, nil
}
