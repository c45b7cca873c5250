package main

import (
	"github.com/spf13/cobra"

	"argvparse/internal/logger"
	"argvparse/pkg/argv"
)

func newClassifyCmd(a *app) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "classify [--] <argv...>",
		Short: "Split an argument vector into flags and positional arguments",
		Long: `Classify a full argument vector. The first two entries (program path and
script path) are skipped, as in a script's own argv. Use --raw to classify
every token.`,
		Example: `  argvparse classify -- node index.js -i -s=6 hello -b world
  argvparse classify --raw -o json -- -v input.txt`,
		RunE: func(_ *cobra.Command, args []string) error {
			var parsed argv.Parsed
			if raw {
				parsed = argv.Split(args)
			} else {
				parsed = argv.Parse(args)
			}
			logger.Classification(len(args), parsed.Flags, parsed.Args)

			return a.renderer.Classification(parsed)
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Classify every token instead of skipping the two leading entries")
	return cmd
}
