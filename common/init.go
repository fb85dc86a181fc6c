package common

import (
	"io"
	"os"
)

func init() {
	InitLogging(io.Discard, os.Stdout, os.Stdout, os.Stderr)
}
