// Package sandbox runs user-submitted practice code inside short-lived
// Docker containers. Code never executes in-process: each run gets a fresh
// container with networking disabled and memory/CPU caps.
package sandbox

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// ErrUnavailable signals that the Docker daemon cannot be reached. The code
// runner endpoints degrade to 503 in that case; nothing else is affected.
var ErrUnavailable = errors.New("code sandbox unavailable")

// ErrUnknownLanguage signals a language name outside the supported set.
var ErrUnknownLanguage = errors.New("unsupported language")

// Language describes one supported runtime.
type Language struct {
	Name     string // as accepted from the client
	Image    string // container image to run in
	FileName string // where the submission is written
	Command  []string
}

var languages = map[string]Language{
	"javascript": {
		Name:     "javascript",
		Image:    "node:20-alpine",
		FileName: "main.js",
		Command:  []string{"node", "main.js"},
	},
	"python": {
		Name:     "python",
		Image:    "python:3.12-alpine",
		FileName: "main.py",
		Command:  []string{"python3", "main.py"},
	},
}

// LookupLanguage resolves a client-supplied language name.
func LookupLanguage(name string) (Language, error) {
	lang, ok := languages[name]
	if !ok {
		return Language{}, fmt.Errorf("%w: %q", ErrUnknownLanguage, name)
	}
	return lang, nil
}

// LanguageNames lists the supported language names in sorted order.
func LanguageNames() []string {
	names := make([]string, 0, len(languages))
	for name := range languages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RunResult is the outcome of one code run.
type RunResult struct {
	ExitCode int           `json:"exitCode"`
	Stdout   string        `json:"stdout"`
	Stderr   string        `json:"stderr"`
	TimedOut bool          `json:"timedOut"`
	Duration time.Duration `json:"-"`
}
