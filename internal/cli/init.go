package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thruflo/tur/internal/config"
	"github.com/thruflo/tur/internal/store"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the tur home directory",
	Long: `Creates the tur home with a default config.yaml and empty programs/,
levels/ and results/ directories.

An existing config.yaml is kept unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing config.yaml with defaults")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	home, err := config.Home(homeFlag)
	if err != nil {
		return err
	}

	if err := store.NewStore(home).Init(); err != nil {
		return err
	}

	_, statErr := os.Stat(config.Path(home))
	switch {
	case statErr == nil && !initForce:
		fmt.Printf("tur home already initialized at %s\n", home)
		return nil
	case statErr != nil && !os.IsNotExist(statErr):
		return fmt.Errorf("failed to check config file: %w", statErr)
	}

	cfg := config.DefaultConfig()
	if err := config.SaveConfig(home, &cfg); err != nil {
		return err
	}

	if statErr == nil {
		fmt.Printf("Reset config at %s\n", config.Path(home))
	} else {
		fmt.Printf("Initialized tur home at %s\n", home)
	}
	return nil
}
