// Package all imports all command providers for the shell.
package all

import (
	_ "github.com/robotalks/turtle.go/pkg/cli/cmds/turtle"
)
