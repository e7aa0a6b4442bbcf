package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thruflo/tur/internal/document"
	"github.com/thruflo/tur/internal/store"
)

var levelCmd = &cobra.Command{
	Use:   "level",
	Short: "Manage levels",
	Long: `List, show, create, edit and delete levels. A level is a list of test
cases, each an initial tape and a target for the halted program.

Builtin levels are always available. A stored level with the same
name as a builtin replaces it.`,
}

var levelListCmd = &cobra.Command{
	Use:   "list",
	Short: "List builtin and stored levels",
	Args:  cobra.NoArgs,
	RunE:  runLevelList,
}

var levelShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a level as YAML",
	Args:  cobra.ExactArgs(1),
	RunE:  runLevelShow,
}

var levelCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a level from a template and open it in the editor",
	Args:  cobra.ExactArgs(1),
	RunE:  runLevelCreate,
}

var levelEditCmd = &cobra.Command{
	Use:   "edit <name>",
	Short: "Open a level in the editor",
	Long: `Opens a stored level in the editor and validates it afterwards.

Editing a builtin level first copies it into the store.`,
	Args: cobra.ExactArgs(1),
	RunE: runLevelEdit,
}

var levelDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a stored level",
	Args:  cobra.ExactArgs(1),
	RunE:  runLevelDelete,
}

func init() {
	levelCmd.AddCommand(levelListCmd, levelShowCmd, levelCreateCmd, levelEditCmd, levelDeleteCmd)
	rootCmd.AddCommand(levelCmd)
}

func validateLevel(data []byte) error {
	_, err := document.DecodeLevel(data)
	return err
}

func runLevelList(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	rows, err := levelCatalog(env.store)
	if err != nil {
		return err
	}
	printCatalog(rows, "No levels found.")
	return nil
}

func runLevelShow(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	l, err := findLevel(env.store, args[0])
	if err != nil {
		return err
	}
	data, err := document.EncodeLevel(l)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

func runLevelCreate(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	path, err := env.store.CreateLevel(args[0])
	if err != nil {
		if errors.Is(err, store.ErrExists) {
			return fmt.Errorf("%w (use `tur level edit`)", err)
		}
		return err
	}
	fmt.Printf("Created level %q at %s\n", args[0], path)
	return editAndValidate(env, path, validateLevel)
}

func runLevelEdit(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	name := args[0]
	path := env.store.LevelPath(name)
	if !env.store.LevelExists(name) {
		b := builtinLevel(name)
		if b == nil {
			return fmt.Errorf("level %q: %w", name, store.ErrNotFound)
		}
		if err := env.store.SaveLevel(b); err != nil {
			return err
		}
		fmt.Printf("Copied builtin level %q to %s\n", name, path)
	}
	return editAndValidate(env, path, validateLevel)
}

func runLevelDelete(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	name := args[0]
	if err := env.store.DeleteLevel(name); err != nil {
		if errors.Is(err, store.ErrNotFound) && builtinLevel(name) != nil {
			return fmt.Errorf("level %q is builtin and cannot be deleted", name)
		}
		return err
	}
	fmt.Printf("Deleted level %q\n", name)
	return nil
}
