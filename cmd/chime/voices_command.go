package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"chime/internal/logging"
	"chime/internal/tts"
)

func newVoicesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "voices",
		Short: "List ElevenLabs voices available to the configured API key",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if strings.TrimSpace(cfg.ElevenLabs.APIKey) == "" {
				return fmt.Errorf("no ElevenLabs API key configured; set elevenlabs.api_key or export ELEVENLABS_API_KEY")
			}

			client := tts.NewElevenLabsClient(cfg.ElevenLabs, nil, logging.NewNop())
			voices, err := client.ListVoices(cmd.Context())
			if err != nil {
				return err
			}
			if len(voices) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No voices available")
				return nil
			}

			rows := make([][]string, 0, len(voices))
			for _, voice := range voices {
				marker := ""
				if voice.VoiceID == cfg.ElevenLabs.VoiceID {
					marker = "*"
				}
				rows = append(rows, []string{voice.Name, voice.VoiceID, formatLabels(voice.Labels), marker})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Name", "Voice ID", "Labels", "Configured"}, rows, nil))
			return nil
		},
	}
}

func formatLabels(labels map[string]string) string {
	if len(labels) == 0 {
		return ""
	}
	parts := make([]string, 0, len(labels))
	for key, value := range labels {
		parts = append(parts, key+"="+value)
	}
	sort.Strings(parts)
	return strings.Join(parts, " ")
}
