package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/overlayenv/dotenv"
	"github.com/spf13/cobra"
)

var (
	runFiles      []string
	runOverload   bool
	runEnvBase    string
	runSelector   string
	runDefaultEnv string
)

var runCmd = &cobra.Command{
	Use:   "run [flags] -- command [args...]",
	Short: "Run a command with the environment loaded from .env files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRun,
}

func init() {
	runCmd.Flags().StringArrayVarP(&runFiles, "file", "f", nil, "env file to load, in precedence order (default .env)")
	runCmd.Flags().BoolVar(&runOverload, "overload", false, "overwrite variables already present in the environment")
	runCmd.Flags().StringVar(&runEnvBase, "env-base", "", "load the overlay hierarchy rooted at this base file instead of --file")
	runCmd.Flags().StringVar(&runSelector, "selector", "APP_ENV", "environment variable selecting the overlay environment")
	runCmd.Flags().StringVar(&runDefaultEnv, "default-env", "dev", "overlay environment used when the selector is unset")
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	d := dotenv.New()

	var err error
	switch {
	case runEnvBase != "":
		if len(runFiles) > 0 {
			return errors.New("--env-base and --file are mutually exclusive")
		}
		if runOverload {
			return errors.New("--env-base and --overload are mutually exclusive")
		}
		err = d.LoadEnv(ctx, runEnvBase, runSelector, runDefaultEnv)
	case runOverload:
		err = d.Overload(ctx, runFiles...)
	default:
		err = d.Load(ctx, runFiles...)
	}
	if err != nil {
		return fmt.Errorf("loading environment: %w", err)
	}

	child := exec.CommandContext(ctx, args[0], args[1:]...)
	child.Stdin = os.Stdin
	child.Stdout = os.Stdout
	child.Stderr = os.Stderr

	if err := child.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		return fmt.Errorf("running %s: %w", args[0], err)
	}
	return nil
}
