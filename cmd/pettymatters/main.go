package main

import (
	"github.com/bornholm/pettymatters/internal/command"
	"github.com/bornholm/pettymatters/internal/command/localize"
	"github.com/bornholm/pettymatters/internal/command/timestamp"
	"github.com/bornholm/pettymatters/internal/command/topics"

	_ "time/tzdata"
)

func main() {
	command.Main(
		"pettymatters", "a petty matters client tool",
		localize.Command(),
		timestamp.Command(),
		topics.Command(),
	)
}
