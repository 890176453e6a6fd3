package timestamp

import (
	"fmt"
	"text/tabwriter"

	"github.com/bornholm/pettymatters/internal/command/common"
	"github.com/bornholm/pettymatters/internal/localtime"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	flagStrict = "strict"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:      "timestamp",
		Usage:     "Render UTC timestamps in the given locale and timezone",
		ArgsUsage: "<timestamp> [timestamp...]",
		Flags: common.WithViewerFlags(
			&cli.BoolFlag{
				Name:  flagStrict,
				Usage: "Exit with an error when a timestamp cannot be parsed",
			},
		),
		Action: func(cCtx *cli.Context) error {
			values := cCtx.Args().Slice()
			if len(values) == 0 {
				return errors.New("at least one timestamp is required")
			}

			formatter, err := common.GetFormatter(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			elements := make([]localtime.Element, len(values))
			for i, v := range values {
				elements[i] = localtime.Element{RawTimestamp: v}
			}

			renderings := localtime.RenderAll(formatter, elements)

			writer := tabwriter.NewWriter(cCtx.App.Writer, 0, 4, 2, ' ', 0)

			invalid := 0
			for _, r := range renderings {
				if !r.Valid {
					invalid++
				}

				if _, err := fmt.Fprintf(writer, "%s\t%s\n", r.RawTimestamp, r.Text); err != nil {
					return errors.WithStack(err)
				}
			}

			if err := writer.Flush(); err != nil {
				return errors.WithStack(err)
			}

			if invalid > 0 && cCtx.Bool(flagStrict) {
				return errors.Errorf("%d invalid timestamp(s)", invalid)
			}

			return nil
		},
	}
}
