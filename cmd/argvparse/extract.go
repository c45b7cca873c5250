package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"argvparse/internal/logger"
	"argvparse/internal/output"
	"argvparse/pkg/argv"
)

type extractOptions struct {
	prefix   string
	typeName string
	def      string
	classify bool
}

func newExtractCmd(a *app) *cobra.Command {
	opts := &extractOptions{}

	cmd := &cobra.Command{
		Use:   "extract --prefix <prefix> [--type <type>] [--default <value>] [--] <flags...>",
		Short: "Decode the value of the first flag matching a prefix",
		Long: `Find the first flag that starts with --prefix and decode its value.

Types:
  boolean  "true" is true, any other value is false, no value is true
  number   numeric literal, otherwise the default
  string   the value verbatim, otherwise the default
  json     any JSON document, otherwise the default

The default is written in the same notation as the type. Without --default
an unmatched flag prints an empty value.`,
		Example: `  argvparse extract --prefix -b --type boolean --default false -- -b
  argvparse extract --prefix -j --type json -o yaml -- '-j={"user":"alan"}'
  argvparse extract --classify --prefix -s -- hello -s=6 world`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.extract(opts, cmd.Flags().Changed("default"), args)
		},
	}

	cmd.Flags().StringVarP(&opts.prefix, "prefix", "p", "", "Flag prefix to look for, e.g. -n")
	cmd.Flags().StringVarP(&opts.typeName, "type", "t", string(argv.FlagString), "Value type (boolean|number|string|json)")
	cmd.Flags().StringVarP(&opts.def, "default", "d", "", "Value returned when the flag is missing or cannot be decoded")
	cmd.Flags().BoolVar(&opts.classify, "classify", false, "Drop positional tokens before matching")
	_ = cmd.MarkFlagRequired("prefix")

	return cmd
}

func (a *app) extract(opts *extractOptions, hasDefault bool, tokens []string) error {
	typ, err := argv.ParseFlagType(opts.typeName)
	if err != nil {
		return err
	}

	def := argv.Value{}
	if hasDefault {
		def, err = parseDefault(typ, opts.def)
		if err != nil {
			return err
		}
	}

	flags := tokens
	if opts.classify {
		flags = argv.Split(tokens).Flags
	}

	matched, found := argv.Lookup(flags, opts.prefix)
	value := argv.ParseFlagVal(flags, opts.prefix, typ, def)
	logger.Extraction(opts.prefix, typ.String(), matched, value.String())
	if found {
		explainFallback(typ, matched)
	}

	return a.renderer.Value(output.Extraction{
		Prefix:  opts.prefix,
		Type:    typ,
		Matched: matched,
		Value:   value,
	})
}

// parseDefault decodes a --default given on the command line. String
// defaults are taken verbatim, including the empty string.
func parseDefault(typ argv.FlagType, raw string) (argv.Value, error) {
	if typ == argv.FlagString {
		return argv.StringValue(raw), nil
	}
	v, err := argv.Decode(typ, raw)
	if err != nil {
		return argv.Value{}, fmt.Errorf("invalid --default for type %s: %w", typ, err)
	}
	return v, nil
}

// explainFallback logs why a matched flag did not produce its own value.
func explainFallback(typ argv.FlagType, matched string) {
	_, raw, hasValue := argv.SplitFlag(matched)
	if !hasValue {
		return
	}
	if _, err := argv.Decode(typ, raw); err != nil {
		logger.NewStyledLogger("Extract").Debug("Using default value", "matched", matched, "type", typ.String(), "error", err)
	}
}
