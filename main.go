package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	configPath string
	step       time.Duration
	until      time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "ledanim",
		Short:         "stream composite animations to an LED strip",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "stream the configured animation over MQTT",
		Args:  cobra.NoArgs,
		RunE:  runStream,
	}
	runCmd.Flags().StringVar(&configPath, "config", "config.yaml", "YAML config file")

	inspectCmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "print the composed transform of an animation file over time",
		Args:  cobra.ExactArgs(1),
		RunE:  inspectAnimation,
	}
	inspectCmd.Flags().DurationVar(&step, "step", 100*time.Millisecond, "time between samples")
	inspectCmd.Flags().DurationVar(&until, "until", 0, "last sample time (default: end of the animation)")

	rootCmd.AddCommand(runCmd, inspectCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
