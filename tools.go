//go:build tools

package dhash

import (
	_ "github.com/dmarkham/enumer"
)
