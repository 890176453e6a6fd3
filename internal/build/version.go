package build

import "fmt"

// Set at link time with -ldflags "-X ..."
var (
	ProjectVersion = "unknown"
	GitRef         = "unknown"
	BuildDate      = "unknown"
)

var LongVersion = fmt.Sprintf("%s (%s, %s)", ProjectVersion, GitRef, BuildDate)
