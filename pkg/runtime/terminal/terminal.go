// Package terminal wires the command-line interface: authorization,
// order fetching, report rendering and delivery.
package terminal

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alertiq/sales-atlas/pkg/runtime/terminal/commands"
)

// CLI represents the command-line interface
type CLI struct {
	output  io.Writer
	rootCmd *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{output: opts.Output}
	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

// ExecuteContext runs the CLI with a caller-provided context, typically
// carrying the process logger.
func (cli *CLI) ExecuteContext(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sales-atlas",
		Short: "Sales analytics and report delivery tool",
	}

	var cfgPath string
	cmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "Path to the configuration file")

	cmd.AddCommand(commands.NewAuthCmd(&cfgPath, cli.output))
	cmd.AddCommand(commands.NewFetchCmd(&cfgPath))
	cmd.AddCommand(commands.NewReportCmd(&cfgPath, cli.output))
	cmd.AddCommand(commands.NewSendCmd(&cfgPath))

	return cmd
}
