package main

import (
	"fmt"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"solarproc/internal/publisher"
	"solarproc/pkg/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var publishCmd = &cobra.Command{
	Use:   "publish <result.json>",
	Short: "Publish a processing result to MQTT",
	Long: `Reads a result JSON produced by the process command and publishes it to
the configured MQTT broker so downstream dashboards can pick it up.`,
	Args: cobra.ExactArgs(1),
	RunE: runPublish,
}

func init() {
	rootCmd.AddCommand(publishCmd)
}

func runPublish(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading result file: %w", err)
	}

	var result models.Result
	if err := json.Unmarshal(data, &result); err != nil {
		return fmt.Errorf("parsing result file: %w", err)
	}

	pub, err := publisher.New(cfg.MQTT, cfg.GetTopicPrefix())
	if err != nil {
		return fmt.Errorf("setting up publisher: %w", err)
	}
	defer pub.Close()

	if err := pub.Publish(result); err != nil {
		return fmt.Errorf("publishing %s: %w", filepath.Base(args[0]), err)
	}

	fmt.Printf("✓ Published %s (%s)\n", filepath.Base(args[0]), result.Status)

	return nil
}
