package pkg

import "fmt"

var (
	// Set by the linker at build time.
	EgkvVersion         = "devel"
	GitRevision         = "devel"
	EgkvVersionRevision = fmt.Sprintf("%s-%s", EgkvVersion, GitRevision)
)
