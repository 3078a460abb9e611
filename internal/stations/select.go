package stations

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Select prompts for a station on w: a numbered list of every station,
// answered via readLine with either a list number or a station code typed
// directly. Returns the chosen station code. readLine is injected so the
// caller decides where input comes from (an interactive loop, a test).
func Select(readLine func() (string, error), w io.Writer) (string, error) {
	for i, s := range All {
		fmt.Fprintf(w, "%2d) %s (%s)\n", i+1, s.Name, s.Code)
	}
	fmt.Fprint(w, "station: ")

	answer, err := readLine()
	if err != nil {
		return "", fmt.Errorf("reading selection: %w", err)
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "", fmt.Errorf("no selection entered")
	}

	if n, err := strconv.Atoi(answer); err == nil {
		if n < 1 || n > len(All) {
			return "", fmt.Errorf("selection %d out of range 1-%d", n, len(All))
		}
		return All[n-1].Code, nil
	}

	if Valid(answer) {
		return strings.ToLower(answer), nil
	}

	return "", fmt.Errorf("unknown station %q", answer)
}
