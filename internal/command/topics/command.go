package topics

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/bornholm/pettymatters/internal/command/common"
	"github.com/bornholm/pettymatters/pkg/client"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	flagPage   = "page"
	flagLimit  = "limit"
	flagAuthor = "author"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "topics",
		Usage: "List the topics of a petty matters server",
		Flags: common.WithCommonFlags(common.WithViewerFlags(
			&cli.IntFlag{
				Name:  flagPage,
				Value: 0,
				Usage: "Page to list",
			},
			&cli.IntFlag{
				Name:  flagLimit,
				Value: 10,
				Usage: "Number of topics per page",
			},
			&cli.StringFlag{
				Name:  flagAuthor,
				Usage: "Only list the topics of this author",
			},
		)...),
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			pmClient, err := common.GetClient(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			funcs := []client.ListTopicsOptionFunc{
				client.WithListTopicsPage(cCtx.Int(flagPage)),
				client.WithListTopicsLimit(cCtx.Int(flagLimit)),
			}

			if author := cCtx.String(flagAuthor); author != "" {
				funcs = append(funcs, client.WithListTopicsAuthor(author))
			}

			topics, total, err := pmClient.ListTopics(ctx, funcs...)
			if err != nil {
				return errors.Wrap(err, "could not list topics")
			}

			if len(topics) == 0 {
				fmt.Fprintln(cCtx.App.Writer, "No topic.")
				return nil
			}

			elements := make([]client.TimestampElement, len(topics))
			for i, t := range topics {
				elements[i] = client.TimestampElement{
					ID:           t.ID,
					RawTimestamp: t.CreatedAt.UTC().Format(time.RFC3339),
				}
			}

			localized, err := pmClient.Localize(ctx, elements...)
			if err != nil {
				return errors.Wrap(err, "could not localize topic dates")
			}

			writer := tabwriter.NewWriter(cCtx.App.Writer, 0, 4, 2, ' ', 0)

			fmt.Fprintln(writer, "ID\tTITLE\tAUTHOR\tCREATED\t")

			for i, t := range topics {
				createdAt := localized.Renderings[i].Text
				fmt.Fprintf(writer, "%s\t%s\t%s\t%s (%s)\t\n", t.ID, t.Title, t.Author, createdAt, humanize.Time(t.CreatedAt))
			}

			if err := writer.Flush(); err != nil {
				return errors.WithStack(err)
			}

			fmt.Fprintf(cCtx.App.Writer, "\n%d/%d topic(s), timezone %s\n", len(topics), total, localized.Timezone)

			return nil
		},
	}
}
