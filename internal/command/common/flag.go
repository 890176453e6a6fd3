package common

import (
	"net/url"

	"github.com/bornholm/pettymatters/pkg/client"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	paramServer   = "server"
	paramLocale   = "lang"
	paramTimezone = "tz"
)

var (
	flagServer = &cli.StringFlag{
		Name:    paramServer,
		Aliases: []string{"s"},
		Value:   "http://localhost:3000",
		EnvVars: []string{"PETTY_MATTERS_SERVER"},
		Usage:   "Petty matters server base url",
	}
	flagLocale = &cli.StringFlag{
		Name:    paramLocale,
		Aliases: []string{"l"},
		EnvVars: []string{"PETTY_MATTERS_LANG"},
		Usage:   "BCP 47 language tag used to render dates (default: system LANG, then en-US)",
	}
	flagTimezone = &cli.StringFlag{
		Name:    paramTimezone,
		Aliases: []string{"z"},
		EnvVars: []string{"TZ"},
		Usage:   "IANA timezone used to render dates (default: system timezone)",
	}
)

func WithCommonFlags(flags ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		flagServer,
	}, flags...)
}

func WithViewerFlags(flags ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		flagLocale,
		flagTimezone,
	}, flags...)
}

func GetClient(ctx *cli.Context) (*client.Client, error) {
	rawServerURL := ctx.String(paramServer)

	serverURL, err := url.Parse(rawServerURL)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	funcs := []client.OptionFunc{
		client.WithBaseURL(serverURL),
	}

	if locale := ctx.String(paramLocale); locale != "" {
		funcs = append(funcs, client.WithLocale(locale))
	}

	if timezone := posixTimezone(ctx.String(paramTimezone)); timezone != "" {
		funcs = append(funcs, client.WithTimezone(timezone))
	}

	return client.New(funcs...), nil
}
