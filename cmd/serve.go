package cmd

import (
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mathventure/internal/config"
	"mathventure/internal/puzzlegen"
	"mathventure/internal/store"
	"mathventure/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web front end",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		log, err := web.NewLogger(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		defer log.Sync()

		dbPath := cfg.DBPath
		if p, _ := cmd.Flags().GetString("db"); p != "" {
			dbPath = p
		}
		if dbPath == "" {
			dbPath, err = store.DefaultDBPath()
			if err != nil {
				return fmt.Errorf("resolve DB path: %w", err)
			}
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		gen := puzzlegen.New(rand.New(rand.NewSource(time.Now().UnixNano())))
		srv, err := web.New(log, st.EventRepo(), gen)
		if err != nil {
			return fmt.Errorf("build server: %w", err)
		}

		log.Info("listening", zap.String("addr", cfg.Addr), zap.String("db", dbPath))
		return http.ListenAndServe(cfg.Addr, srv.Handler())
	},
}
