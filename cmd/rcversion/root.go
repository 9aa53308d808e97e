package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/joshuapare/rcversion/internal/logger"
	"github.com/joshuapare/rcversion/internal/options"
	"github.com/joshuapare/rcversion/internal/rcfile"
	"github.com/joshuapare/rcversion/pkg/types"
)

func newRootCmd() *cobra.Command {
	opts := options.Default()

	cmd := &cobra.Command{
		Use:   "rcversion <resource-file.rc>",
		Short: "Update the version numbers in a Windows resource script",
		Long: `rcversion locates the FILEVERSION and PRODUCTVERSION records of the
VERSIONINFO block in a Windows resource script, together with the
"FileVersion" and "ProductVersion" string-table values, and rewrites them.

By default the build number is incremented and everything else is kept.
UTF-16 and 8-bit scripts are supported; the encoding and any byte order
mark are preserved.

The classic option syntax is accepted as well:
  rcversion app.rc /m:2 /n:1 /b:%BUILD_NUMBER% /r:0 /o:out.rc /v:3

Example:
  rcversion app.rc
  rcversion app.rc --major 2 --minor 1 --build 37 --revision 0
  rcversion app.rc --keep-build --revision 5 -o build/app.rc`,
		Version:       version,
		Args:          checkInputArg,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Input = args[0]
			return runUpdate(cmd.OutOrStdout(), opts)
		},
	}

	f := cmd.Flags()
	f.VarP(&opts.Major, "major", "m", "new major version (default unchanged)")
	f.VarP(&opts.Minor, "minor", "n", "new minor version (default unchanged)")
	f.VarP(&opts.Build, "build", "b", "new build number (default increment by one)")
	f.VarP(&opts.Revision, "revision", "r", "new revision number (default unchanged)")
	f.BoolVar(&opts.KeepBuild, "keep-build", false, "keep the build number instead of incrementing it")
	f.StringVarP(&opts.Output, "output", "o", "", "output file path (default same as input)")
	f.VarP(&opts.Verbosity, "verbosity", "v", "verbosity 0-9: 0 silent, 1 errors, 3 changes, 7 scanner trace")
	f.IntVar(&opts.Padding, "padding", rcfile.DefaultPadding, "spare characters reserved for growing replacements")
	f.BoolVar(&opts.FullSync, "full-sync", false, "flush the output to the physical disk before replacing the file")
	f.BoolVar(&opts.SkipDirectives, "skip-directives", false, "treat #ifdef and other directives inside VERSIONINFO as comments")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", types.ErrInvalidParameter, err)
	})

	cmd.AddCommand(newInspectCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// checkInputArg accepts exactly one resource script.
func checkInputArg(_ *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return fmt.Errorf("%w: missing input file", types.ErrInvalidParameter)
	case 1:
		return nil
	default:
		return fmt.Errorf("%w: input file already defined, unexpected argument [%s]", types.ErrInvalidParameter, args[1])
	}
}

func runUpdate(out io.Writer, opts options.Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	log := logger.New(out, int(opts.Verbosity))
	req := opts.Request()
	log.Logf(logger.LevelDetail, "input [%s], output [%s], request %+v", opts.Input, opts.Output, req)

	h := rcfile.NewHandler(log)
	h.Padding = opts.Padding
	h.FullSync = opts.FullSync
	h.SkipDirectives = opts.SkipDirectives
	_, err := h.UpdateFile(opts.Input, opts.Output, req)
	return err
}

// run executes the command line and returns the process exit code, which is
// the error classification of the outcome.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	normalized, err := options.NormalizeArgs(args)
	if err == nil {
		cmd.SetArgs(normalized)
		err = cmd.Execute()
	}
	if err == nil {
		return int(types.Success)
	}

	fmt.Fprintln(stderr, "Error:", err)
	if errors.Is(err, types.ErrInvalidParameter) {
		fmt.Fprint(stderr, "\n", cmd.UsageString())
	}
	return int(types.CodeOf(err))
}
