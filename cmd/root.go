package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/attendance-cli/internal/config"
	"github.com/sells-group/attendance-cli/internal/dataset"
)

var (
	cfg      *config.Config
	filePath string
)

var rootCmd = &cobra.Command{
	Use:   "attendance-cli",
	Short: "Attendance analytics for employee time records",
	Long:  "Loads an attendance sheet, derives per-employee metrics, scores attendance risk, and recommends next-best actions.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// loadSnapshot reads the configured sheet (or the --file override) once for
// a one-shot command.
func loadSnapshot() (*dataset.Snapshot, error) {
	path := filePath
	if path == "" {
		path = cfg.Input.Path
	}
	return dataset.Load(path, dataset.Options{
		SheetIndex: cfg.Input.SheetIndex,
		SheetName:  cfg.Input.SheetName,
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&filePath, "file", "", "attendance sheet path (default from config)")
}
