package handlers

import (
	"fmt"
	"math"
	"strconv"

	"github.com/concave-dev/qpa/cmd/qpactl/client"
	"github.com/concave-dev/qpa/cmd/qpactl/config"
	"github.com/concave-dev/qpa/cmd/qpactl/display"
	"github.com/concave-dev/qpa/cmd/qpactl/utils"
	"github.com/concave-dev/qpa/internal/duration"
	"github.com/concave-dev/qpa/internal/logging"
	"github.com/concave-dev/qpa/internal/rescale"
	"github.com/spf13/cobra"
)

// HandleParse converts each argument from duration text to seconds.
func HandleParse(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	results := make([]client.ParseResult, 0, len(args))
	if remote() {
		api := client.CreateAPIClient()
		for _, text := range args {
			res, err := api.ParseDuration(text)
			if err != nil {
				return err
			}
			results = append(results, *res)
		}
	} else {
		for _, text := range args {
			seconds, err := duration.Parse(text)
			if err != nil {
				return err
			}
			results = append(results, client.ParseResult{Text: text, Seconds: seconds})
		}
	}

	display.DisplayParseResults(results)
	logging.Success("Parsed %d durations", len(results))
	return nil
}

// parseSeconds reads a finite, non-negative seconds argument.
func parseSeconds(arg string) (float64, error) {
	seconds, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid seconds value '%s': %w", arg, err)
	}
	if seconds < 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return 0, fmt.Errorf("invalid seconds value '%s': must be a finite, non-negative number", arg)
	}
	return seconds, nil
}

// HandleFormat renders each seconds argument as duration text.
func HandleFormat(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	values := make([]float64, 0, len(args))
	for _, arg := range args {
		seconds, err := parseSeconds(arg)
		if err != nil {
			return err
		}
		values = append(values, seconds)
	}

	results := make([]client.FormatResult, 0, len(values))
	if remote() {
		api := client.CreateAPIClient()
		for _, seconds := range values {
			res, err := api.FormatSeconds(seconds)
			if err != nil {
				return err
			}
			results = append(results, *res)
		}
	} else {
		for _, seconds := range values {
			results = append(results, client.FormatResult{Seconds: seconds, Text: duration.Format(seconds)})
		}
	}

	display.DisplayFormatResults(results)
	return nil
}

// HandleRescale divides each duration argument by the speed-up factor.
func HandleRescale(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	factor, err := resolveFactor(cmd, config.Codec.Factor)
	if err != nil {
		return err
	}

	results := make([]client.RescaleResult, 0, len(args))
	if remote() {
		api := client.CreateAPIClient()
		for _, text := range args {
			res, err := api.RescaleDuration(text, factor)
			if err != nil {
				return err
			}
			results = append(results, *res)
		}
	} else {
		r, err := rescale.New(factor, config.Bounds())
		if err != nil {
			return err
		}
		for _, text := range args {
			seconds, err := duration.Parse(text)
			if err != nil {
				return err
			}
			rescaled := r.Apply(seconds)
			results = append(results, client.RescaleResult{
				Text:            text,
				Factor:          factor,
				Seconds:         seconds,
				RescaledText:    duration.Format(rescaled),
				RescaledSeconds: rescaled,
			})
		}
	}

	display.DisplayRescaleResults(results)
	return nil
}

// HandleHealth shows the status of the daemon named by --api.
func HandleHealth(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	if !remote() {
		return fmt.Errorf("health requires --api (e.g., --api=127.0.0.1:8080)")
	}

	logging.Info("Fetching health from API server: %s", config.Global.APIAddr)
	health, err := client.CreateAPIClient().Health()
	if err != nil {
		return err
	}

	display.DisplayHealth(config.Global.APIAddr, health)
	return nil
}
