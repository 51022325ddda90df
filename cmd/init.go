package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/tailorcv/tailorcv/pkg/career"
	"github.com/tailorcv/tailorcv/pkg/config"
)

//nolint:gochecknoglobals // Cobra boilerplate
var initData string

//nolint:gochecknoglobals // Cobra boilerplate
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter career data file",
	Long: `Write the built-in sample career data as a starter file to edit with
your own profile, experiences, and projects.

Refuses to overwrite an existing file.

Example:
  tailorcv init
  tailorcv init --data ./experience_data.json`,
	RunE: runInit,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVar(&initData, "data", "", "Where to write the file (default from config)")
}

func runInit(_ *cobra.Command, _ []string) (err error) {
	// Load configuration
	var cfg config.Config
	cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return err
	}

	path := initData
	if path == "" {
		path = cfg.DataPath
	}

	// Check if file already exists
	_, statErr := os.Stat(path)
	if statErr == nil {
		err = errors.Errorf("career data file already exists: %s", path)
		return err
	}

	data := career.Sample()
	err = data.Write(path)
	if err != nil {
		return err
	}

	fmt.Printf("Starter career data written to: %s\n", path)
	fmt.Println("Edit it with your own profile, experiences, and projects.")

	return err
}
