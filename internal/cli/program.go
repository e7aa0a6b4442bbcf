package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thruflo/tur/internal/document"
	"github.com/thruflo/tur/internal/store"
)

var programCmd = &cobra.Command{
	Use:   "program",
	Short: "Manage programs",
	Long: `List, show, create, edit and delete programs.

Builtin programs are always available. A stored program with the same
name as a builtin replaces it.`,
}

var programListCmd = &cobra.Command{
	Use:   "list",
	Short: "List builtin and stored programs",
	Args:  cobra.NoArgs,
	RunE:  runProgramList,
}

var programShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a program as YAML",
	Args:  cobra.ExactArgs(1),
	RunE:  runProgramShow,
}

var programCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a program from a template and open it in the editor",
	Args:  cobra.ExactArgs(1),
	RunE:  runProgramCreate,
}

var programEditCmd = &cobra.Command{
	Use:   "edit <name>",
	Short: "Open a program in the editor",
	Long: `Opens a stored program in the editor and validates it afterwards.

Editing a builtin program first copies it into the store.`,
	Args: cobra.ExactArgs(1),
	RunE: runProgramEdit,
}

var programDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a stored program",
	Args:  cobra.ExactArgs(1),
	RunE:  runProgramDelete,
}

func init() {
	programCmd.AddCommand(programListCmd, programShowCmd, programCreateCmd, programEditCmd, programDeleteCmd)
	rootCmd.AddCommand(programCmd)
}

func validateProgram(data []byte) error {
	_, err := document.DecodeProgram(data)
	return err
}

func runProgramList(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	rows, err := programCatalog(env.store)
	if err != nil {
		return err
	}
	printCatalog(rows, "No programs found.")
	return nil
}

func runProgramShow(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	p, err := findProgram(env.store, args[0])
	if err != nil {
		return err
	}
	data, err := document.EncodeProgram(p)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

func runProgramCreate(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	path, err := env.store.CreateProgram(args[0])
	if err != nil {
		if errors.Is(err, store.ErrExists) {
			return fmt.Errorf("%w (use `tur program edit`)", err)
		}
		return err
	}
	fmt.Printf("Created program %q at %s\n", args[0], path)
	return editAndValidate(env, path, validateProgram)
}

func runProgramEdit(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	name := args[0]
	path := env.store.ProgramPath(name)
	if !env.store.ProgramExists(name) {
		b := builtinProgram(name)
		if b == nil {
			return fmt.Errorf("program %q: %w", name, store.ErrNotFound)
		}
		if err := env.store.SaveProgram(b); err != nil {
			return err
		}
		fmt.Printf("Copied builtin program %q to %s\n", name, path)
	}
	return editAndValidate(env, path, validateProgram)
}

func runProgramDelete(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	name := args[0]
	if err := env.store.DeleteProgram(name); err != nil {
		if errors.Is(err, store.ErrNotFound) && builtinProgram(name) != nil {
			return fmt.Errorf("program %q is builtin and cannot be deleted", name)
		}
		return err
	}
	fmt.Printf("Deleted program %q\n", name)
	return nil
}
