package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

type AuthCmd struct {
	cfgPath *string
	output  io.Writer
}

// NewAuthCmd runs the OAuth device flow and persists the token set.
func NewAuthCmd(cfgPath *string, output io.Writer) *cobra.Command {
	ac := &AuthCmd{cfgPath: cfgPath, output: output}
	return &cobra.Command{
		Use:   "auth",
		Short: "Authorize access to the marketplace API via device flow",
		RunE:  ac.run,
	}
}

func (ac *AuthCmd) run(cmd *cobra.Command, _ []string) error {
	d, err := loadDeps(*ac.cfgPath)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	auth := d.authenticator()

	code, err := auth.RequestDeviceCode(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(ac.output, "Open %s\n", code.VerificationURIComplete)
	fmt.Fprintf(ac.output, "Or visit %s and enter code %s\n", code.VerificationURI, code.UserCode)
	fmt.Fprintln(ac.output, "Waiting for authorization...")

	if _, err := auth.PollToken(ctx, code); err != nil {
		return err
	}

	fmt.Fprintf(ac.output, "Authorization complete, tokens saved to %s\n", d.cfg.Allegro.TokenFile)
	return nil
}
