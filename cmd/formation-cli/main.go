package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	formation "github.com/goliatone/go-formation"
	"github.com/goliatone/go-formation/internal/prompt"
	"github.com/goliatone/go-formation/pkg/assembler"
	"github.com/goliatone/go-formation/pkg/export"
)

// Options holds the command line flags.
type Options struct {
	WorkDir   string
	Templates string
	DrawIO    string
	Confirm   bool
	NoOpen    bool
	Quiet     bool
}

func NewOptions() *Options {
	return &Options{
		DrawIO: export.DefaultBinary,
	}
}

func NewCmd(o *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "formation-cli <formation.yaml>",
		Short: "Render a field formation into a draw.io diagram and export it",
		Long: `Reads a formation YAML file, writes <export_name>/<export_name>.drawio and
then either opens the diagram in the draw.io web app (export_type: web) or
exports it through the draw.io CLI and post-processes the image.`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("expected exactly one formation YAML file")
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.Run(cmd.Context(), args[0], cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.Flags().StringVar(&o.WorkDir, "workdir", "", "Directory the output folder is created in (defaults to the current directory)")
	cmd.Flags().StringVar(&o.Templates, "templates", "", "Directory with pitch/fragment templates overriding the bundled ones")
	cmd.Flags().StringVar(&o.DrawIO, "drawio", o.DrawIO, "draw.io executable used for exports")
	cmd.Flags().BoolVar(&o.Confirm, "confirm", false, "Ask before opening the diagram in the browser")
	cmd.Flags().BoolVar(&o.NoOpen, "no-open", false, "Print the diagram link instead of opening a browser")
	cmd.Flags().BoolVarP(&o.Quiet, "quiet", "q", false, "Only print errors")
	return cmd
}

func (o *Options) Run(ctx context.Context, path string, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	logOut := stderr
	if o.Quiet {
		logOut = io.Discard
	}

	opts := []formation.Option{
		formation.WithWorkDir(o.WorkDir),
		formation.WithTemplateDir(o.Templates),
		assembler.WithRasterizer(export.NewDrawIO(o.DrawIO)),
		assembler.WithOpenBrowser(!o.NoOpen),
		assembler.WithLogger(log.New(logOut, "", 0)),
	}
	if o.Confirm {
		opts = append(opts, assembler.WithConfirmer(prompt.NewSurvey()))
	}

	res, err := formation.GenerateFile(ctx, path, opts...)
	if err != nil {
		return err
	}
	if o.NoOpen && res.URL != "" {
		fmt.Fprintln(stdout, res.URL)
	}
	return nil
}

func main() {
	cmd := NewCmd(NewOptions())
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "formation: Error: %s\n", err)
		os.Exit(1)
	}
}
