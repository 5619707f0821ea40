// Package handlers provides command handler functions for qpactl.
//
// Each handler file corresponds to one group of commands:
// - transform.go: transform and pipeline (rescale a CSV table into data/output)
// - visualize.go: visualize and list (render and find optimised tables)
// - codec.go: parse, format, rescale and health (single durations, local or via qpad)
// - factor.go: speed-up factor resolution shared by transform, pipeline and rescale
//
// All handlers follow the cobra RunE signature, set up logging first, log
// through the logging package and leave presentation to the display package.
// Commands run locally unless --api names a qpad daemon.
package handlers

import (
	"context"

	"github.com/concave-dev/qpa/cmd/qpactl/config"
	"github.com/spf13/cobra"
)

// remote reports whether commands should call the daemon.
func remote() bool {
	return config.Global.APIAddr != ""
}

// commandContext returns the command's context or a background context.
func commandContext(cmd *cobra.Command) context.Context {
	if cmd != nil && cmd.Context() != nil {
		return cmd.Context()
	}
	return context.Background()
}

// flagChanged reports whether the user set the named flag on cmd.
func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil {
		return false
	}
	if f := cmd.Flags().Lookup(name); f != nil {
		return f.Changed
	}
	return false
}
