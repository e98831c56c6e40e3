// Package prompt implements the interactive category dialog as a single
// synchronous call: print the prompt with the prefilled value, block for
// one line, report cancellation when input closes without one.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Category asks for an optional category. An empty answer confirms the
// prefill; a closed input (EOF) is a cancellation and reports ok=false.
// Entering "-" clears a prefilled category.
func Category(r io.Reader, w io.Writer, prefill string) (category string, ok bool) {
	if prefill != "" {
		fmt.Fprintf(w, "Category [%s]: ", prefill)
	} else {
		fmt.Fprint(w, "Category (optional): ")
	}

	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return "", false
	}

	line := strings.TrimSpace(scanner.Text())
	switch line {
	case "":
		return prefill, true
	case "-":
		return "", true
	default:
		return line, true
	}
}
