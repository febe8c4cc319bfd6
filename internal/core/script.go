package core

import (
	"fmt"
	"strconv"
	"strings"
)

// maxScriptRepeat bounds a single "*count" so a typo cannot allocate
// millions of frames.
const maxScriptRepeat = 100000

// ParseScript parses a comma-separated input script, one entry per frame.
// An entry is an Input in its String form, optionally followed by "*count"
// to repeat it, e.g. "none*30,Right+Run*120,Right+Up,Right*40".
func ParseScript(text string) ([]Input, error) {
	var frames []Input
	text = strings.TrimSpace(text)
	if text == "" {
		return frames, nil
	}

	for i, entry := range strings.Split(text, ",") {
		entry = strings.TrimSpace(entry)
		count := 1
		if name, rep, ok := strings.Cut(entry, "*"); ok {
			n, err := strconv.Atoi(strings.TrimSpace(rep))
			if err != nil || n < 1 || n > maxScriptRepeat {
				return nil, fmt.Errorf("script entry %d: bad repeat count %q", i+1, rep)
			}
			entry, count = name, n
		}

		in, ok := ParseInput(entry)
		if !ok {
			return nil, fmt.Errorf("script entry %d: unknown input %q", i+1, entry)
		}
		for range count {
			frames = append(frames, in)
		}
	}
	return frames, nil
}
