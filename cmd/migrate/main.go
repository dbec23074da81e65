package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"vitrina/config"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
)

// Supported subcommands:
// - list:  List migration files in apply order
// - show:  Print the content of one migration file
// - apply: Apply migrations against the configured database

func main() {
	listCmd := flag.NewFlagSet("list", flag.ExitOnError)
	showCmd := flag.NewFlagSet("show", flag.ExitOnError)
	applyCmd := flag.NewFlagSet("apply", flag.ExitOnError)

	// list parameters
	listDir := listCmd.String("dir", "", "Migrations directory (defaults to config)")

	// show parameters
	showDir := showCmd.String("dir", "", "Migrations directory (defaults to config)")
	showName := showCmd.String("name", "", "Migration file name to print")

	// apply parameters
	applyDir := applyCmd.String("dir", "", "Migrations directory (defaults to config)")
	applyDryRun := applyCmd.Bool("dry-run", false, "Print statements without executing them")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flags := migrateFlags{
		List: listFlags{
			cmd: listCmd,
			dir: listDir,
		},
		Show: showFlags{
			cmd:  showCmd,
			dir:  showDir,
			name: showName,
		},
		Apply: applyFlags{
			cmd:    applyCmd,
			dir:    applyDir,
			dryRun: applyDryRun,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type migrateFlags struct {
	List  listFlags
	Show  showFlags
	Apply applyFlags
}

type listFlags struct {
	cmd *flag.FlagSet
	dir *string
}

type showFlags struct {
	cmd  *flag.FlagSet
	dir  *string
	name *string
}

type applyFlags struct {
	cmd    *flag.FlagSet
	dir    *string
	dryRun *bool
}

func runSubcommand(ctx context.Context, flags *migrateFlags) error {
	switch os.Args[1] {
	case "list":
		return handleList(flags)
	case "show":
		return handleShow(flags)
	case "apply":
		return handleApply(ctx, flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleList(flags *migrateFlags) error {
	if err := flags.List.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse list flags")
	}

	dir, err := resolveDir(*flags.List.dir)
	if err != nil {
		return err
	}

	files, err := migrationFiles(dir)
	if err != nil {
		return err
	}

	for _, file := range files {
		fmt.Println(filepath.Base(file))
	}

	return nil
}

func handleShow(flags *migrateFlags) error {
	if err := flags.Show.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse show flags")
	}

	if *flags.Show.name == "" {
		return errors.New("--name flag is required for show command")
	}

	dir, err := resolveDir(*flags.Show.dir)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(filepath.Join(dir, *flags.Show.name))
	if err != nil {
		return errors.Wrap(err, "failed to read migration file")
	}

	fmt.Print(string(content))

	return nil
}

func handleApply(ctx context.Context, flags *migrateFlags) error {
	if err := flags.Apply.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse apply flags")
	}

	dir, err := resolveDir(*flags.Apply.dir)
	if err != nil {
		return err
	}

	files, err := migrationFiles(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return errors.Errorf("no migration files found in %s", dir)
	}

	if *flags.Apply.dryRun {
		return printMigrations(files)
	}

	return applyMigrations(ctx, files)
}

func applyMigrations(ctx context.Context, files []string) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "failed to connect to PostgreSQL")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	defer sqlDB.Close()

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return errors.Wrapf(err, "failed to read %s", file)
		}

		fmt.Printf("Applying %s\n", filepath.Base(file))
		if err := db.WithContext(ctx).Exec(string(content)).Error; err != nil {
			return errors.Wrapf(err, "failed to apply %s", file)
		}
	}

	fmt.Printf("Applied %d migration(s)\n", len(files))

	return nil
}

func printMigrations(files []string) error {
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return errors.Wrapf(err, "failed to read %s", file)
		}

		fmt.Printf("-- %s\n%s\n", filepath.Base(file), string(content))
	}

	return nil
}

// resolveDir prefers the flag, falling back to the configured directory.
func resolveDir(flagDir string) (string, error) {
	if flagDir != "" {
		return flagDir, nil
	}

	cfg, err := config.New()
	if err != nil {
		return "", errors.Wrap(err, "failed to load config")
	}

	return cfg.Migrations.Dir, nil
}

// migrationFiles returns the .sql files of dir in lexical order, which is the
// apply order. File names carry a numeric prefix to keep that order stable.
func migrationFiles(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list migration files")
	}

	sort.Strings(files)

	return files, nil
}

func printUsage() {
	fmt.Println("Usage: migrate <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  list     List migration files in apply order")
	fmt.Println("  show     Print the content of one migration file")
	fmt.Println("  apply    Apply migrations against the configured database")
	fmt.Println("")
	fmt.Println("Use 'migrate <command> -h' for more information about a command.")
}
