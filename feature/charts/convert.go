package charts

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Recognized file extensions, lower case with leading dot.
var (
	scoreExts = map[string]bool{".usc": true, ".sus": true}
	imageExts = map[string]bool{".jpg": true, ".jpeg": true, ".png": true}
	audioExts = map[string]bool{".mp3": true, ".wav": true, ".ogg": true}
)

// IsScoreFile reports whether the filename has a recognized score extension.
func IsScoreFile(name string) bool {
	return scoreExts[strings.ToLower(ext(name))]
}

// Converter turns a raw score file into serialized level data. Conversion is
// an external collaborator; implementations fail with an error when the input
// cannot be parsed as a valid score.
type Converter interface {
	Convert(ctx context.Context, raw []byte, format string) ([]byte, error)
}

// CommandConverter shells out to an external conversion tool. The tool
// receives the format tag ("usc" or "sus") as its only argument, reads the
// raw score from stdin and writes converted level data to stdout.
type CommandConverter struct {
	Command string
}

// Convert runs the configured command once per score file.
func (c *CommandConverter) Convert(ctx context.Context, raw []byte, format string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, c.Command, format)
	cmd.Stdin = bytes.NewReader(raw)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, fmt.Errorf("converter failed: %s: %w", msg, err)
		}
		return nil, fmt.Errorf("converter failed: %w", err)
	}
	return stdout.Bytes(), nil
}
