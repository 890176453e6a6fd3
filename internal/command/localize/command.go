package localize

import (
	"bufio"
	"io"
	"log/slog"
	"os"

	"github.com/bornholm/pettymatters/internal/command/common"
	"github.com/bornholm/pettymatters/internal/html/utcdate"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	flagOutput = "output"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:      "localize",
		Usage:     "Render the data-utcdate elements of an HTML document or fragment",
		ArgsUsage: "[file]",
		Flags: common.WithViewerFlags(
			&cli.StringFlag{
				Name:    flagOutput,
				Aliases: []string{"o"},
				Usage:   "Path of the rendered document (default: stdout)",
			},
		),
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			formatter, err := common.GetFormatter(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			input, err := openInput(cCtx.Args().First())
			if err != nil {
				return errors.WithStack(err)
			}

			defer input.Close()

			output, err := openOutput(cCtx.String(flagOutput), cCtx.App.Writer)
			if err != nil {
				return errors.WithStack(err)
			}

			defer output.Close()

			writer := bufio.NewWriter(output)

			result, err := utcdate.Rewrite(writer, input, formatter)
			if err != nil {
				return errors.Wrap(err, "could not localize document")
			}

			if err := writer.Flush(); err != nil {
				return errors.WithStack(err)
			}

			slog.DebugContext(ctx, "document localized",
				slog.String("locale", formatter.Locale().String()),
				slog.String("timezone", formatter.Location().String()),
				slog.Int("total", result.Total),
				slog.Int("invalid", result.Invalid),
				slog.Int("skipped", result.Skipped),
			)

			return nil
		},
	}
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return file, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}

func openOutput(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{stdout}, nil
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return file, nil
}
