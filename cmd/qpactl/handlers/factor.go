package handlers

import (
	"github.com/concave-dev/qpa/cmd/qpactl/config"
	"github.com/concave-dev/qpa/cmd/qpactl/display"
	"github.com/concave-dev/qpa/cmd/qpactl/utils"
	"github.com/concave-dev/qpa/internal/logging"
	"github.com/concave-dev/qpa/internal/rescale"
	"github.com/spf13/cobra"
)

// lineReadCloser is an interactive prompt; *readline.Instance satisfies it.
type lineReadCloser interface {
	utils.LineReader
	Close() error
}

// Swapped by tests.
var (
	isInteractive = utils.IsInteractive
	openPrompt    = func(prompt string) (lineReadCloser, error) {
		return utils.NewTerminalReader(prompt)
	}
)

// resolveFactor picks the speed-up factor: the --factor flag, then the config
// file, then an interactive prompt on a terminal, then the default.
func resolveFactor(cmd *cobra.Command, flagValue float64) (float64, error) {
	if flagChanged(cmd, "factor") {
		return flagValue, nil
	}

	if f := config.Global.File; f != nil && f.Factor != nil {
		logging.Debug("Using factor %v from config file", *f.Factor)
		return *f.Factor, nil
	}

	if !isInteractive() {
		logging.Debug("No factor given and not on a terminal, using default %v", config.DefaultFactor)
		return config.DefaultFactor, nil
	}

	bounds := config.Bounds()
	rl, err := openPrompt(utils.FactorPrompt(config.DefaultFactor, bounds))
	if err != nil {
		return 0, err
	}
	defer rl.Close()

	return utils.PromptFactor(rl, display.Out, config.DefaultFactor, bounds)
}

// validateFactor checks factor against the configured bounds.
func validateFactor(factor float64) error {
	return rescale.Validate(factor, config.Bounds())
}
