package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"mathventure/internal/app"
	"mathventure/internal/puzzlegen"
	"mathventure/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
// The app still runs when the store cannot be opened; sessions just go
// unrecorded.
func runApp(cmd *cobra.Command) error {
	gen := puzzlegen.New(rand.New(rand.NewSource(time.Now().UnixNano())))
	opts := app.Options{Generator: gen}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Resolve DB path:", err)
		return app.Run(opts)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Open store:", err)
		fmt.Fprintln(os.Stderr, "History will be unavailable.")
		return app.Run(opts)
	}
	defer st.Close()

	opts.EventRepo = st.EventRepo()
	return app.Run(opts)
}
