// Package main provides the entry point for the qpa CLI tool (qpactl).
//
// INITIALIZATION FLOW:
// 1. Command structure setup
// 2. Flag configuration for global and command-specific options
// 3. Handler assignment linking commands to handlers
// 4. Config file loading and global flag validation before every command
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/concave-dev/qpa/cmd/qpactl/commands"
	"github.com/concave-dev/qpa/cmd/qpactl/config"
	"github.com/concave-dev/qpa/cmd/qpactl/handlers"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd := commands.RootCmd

	rootCmd.Version = config.Version
	rootCmd.PersistentPreRunE = config.ValidateGlobalFlags

	commands.SetupCommands()

	commands.SetupGlobalFlags(rootCmd, &config.Global.APIAddr, &config.Global.ConfigFile, &config.Global.LogLevel,
		&config.Global.Timeout, &config.Global.Verbose, &config.Global.Output,
		config.DefaultLogLevel, config.DefaultTimeout, config.DefaultOutput)

	// Transform and pipeline share the transform flags
	transformCmd, pipelineCmd := commands.GetTransformCommands()
	for _, cmd := range []*cobra.Command{transformCmd, pipelineCmd} {
		commands.SetupTransformFlags(cmd, &config.Transform.Input, &config.Transform.OutputDir,
			&config.Transform.Factor, &config.Transform.NoSaveOld, &config.Transform.SkipInvalid,
			&config.Transform.Workers, config.DefaultInput, config.DefaultOutputDir, config.DefaultFactor)
	}
	commands.SetupInfographicFlags(pipelineCmd, &config.Visualize.Title, &config.Visualize.Save, config.DefaultTitle)

	visualizeCmd, listCmd := commands.GetVisualizeCommands()
	commands.SetupVisualizeFlags(visualizeCmd, &config.Visualize.CSV, &config.Visualize.OutputDir,
		&config.Visualize.Title, &config.Visualize.Save, config.DefaultOutputDir, config.DefaultTitle)
	commands.SetupListFlags(listCmd, &config.Visualize.OutputDir, config.DefaultOutputDir)

	_, _, rescaleCmd, _ := commands.GetCodecCommands()
	commands.SetupRescaleFlags(rescaleCmd, &config.Codec.Factor, config.DefaultFactor)

	setupCommandHandlers()
}

// setupCommandHandlers assigns RunE functions to commands
func setupCommandHandlers() {
	transformCmd, pipelineCmd := commands.GetTransformCommands()
	visualizeCmd, listCmd := commands.GetVisualizeCommands()
	parseCmd, formatCmd, rescaleCmd, healthCmd := commands.GetCodecCommands()

	transformCmd.RunE = handlers.HandleTransform
	pipelineCmd.RunE = handlers.HandlePipeline
	visualizeCmd.RunE = handlers.HandleVisualize
	listCmd.RunE = handlers.HandleList
	parseCmd.RunE = handlers.HandleParse
	formatCmd.RunE = handlers.HandleFormat
	rescaleCmd.RunE = handlers.HandleRescale
	healthCmd.RunE = handlers.HandleHealth
}

// main is the main entry point
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := commands.RootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
