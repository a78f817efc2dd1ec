// Package writer saves generated jokes to a text file.
package writer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/sant0-9/quip/internal/jokes"
)

const header = "quip"

// SaveRequest describes one save operation. Path may be empty, in which case
// a timestamped filename in the working directory is used.
type SaveRequest struct {
	Jokes    []string
	Context  string
	Language jokes.Language
	Path     string
}

// Save writes the jokes to disk and returns the absolute path of the file.
//
// Layout: a header line with the tool name and timestamp, a line naming the
// language and original context, a separator, then each joke re-numbered
// with a blank line between.
func Save(req SaveRequest) (string, error) {
	if len(req.Jokes) == 0 {
		return "", errors.New("no jokes to save")
	}

	now := time.Now()
	path := req.Path
	if path == "" {
		path = fmt.Sprintf("jokes_%s.txt", now.Format("20060102_150405"))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s - %s\n", header, now.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Language: %s | Context: %s\n", req.Language, req.Context)
	b.WriteString(strings.Repeat("-", 40))
	b.WriteString("\n\n")

	for i, joke := range req.Jokes {
		fmt.Fprintf(&b, "%d. %s\n\n", i+1, jokes.StripMarker(joke))
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", errors.Wrap(err, "failed to save jokes")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}
