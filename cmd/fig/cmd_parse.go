package main

import (
	stdjson "encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/hgranthorner/fig/json"
)

var log = commonlog.GetLogger("fig")

func newParseCmd() *cobra.Command {
	var outputFormat string
	var verbosity int

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a JSON document and dump the result",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(verbosity, nil)

			var data []byte
			var err error
			if len(args) == 1 {
				data, err = os.ReadFile(args[0])
				if err != nil {
					return errors.Wrapf(err, "read %s", args[0])
				}
			} else {
				data, err = io.ReadAll(os.Stdin)
				if err != nil {
					return errors.Wrap(err, "read stdin")
				}
			}

			log.Infof("parsing %d bytes", len(data))
			v, err := json.Parse(string(data))
			if err != nil {
				return errors.Wrap(err, "parse")
			}
			log.Infof("parsed a %s", v.Kind)

			switch outputFormat {
			case "json":
				enc := stdjson.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(v.Interface())
			case "go":
				fmt.Printf("%#v\n", v.Interface())
				return nil
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, go)")
	cmd.Flags().IntVarP(&verbosity, "verbose", "v", 0, "log verbosity")

	return cmd
}
