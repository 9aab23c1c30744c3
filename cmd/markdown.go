package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders md for the terminal. The raw markdown is printed when
// rendering fails, or when $KVT_PLAIN is set.
func printMarkdown(md string) {
	if os.Getenv(EnvPlain) != "" {
		fmt.Print(md)
		return
	}
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
