package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"chime/internal/notify"
)

type sendFlags struct {
	message string
	speak   bool
	noSound bool
	address string
	timeout time.Duration
}

func newSendCommand(ctx *commandContext) *cobra.Command {
	var flags sendFlags

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a notification to a running server",
		RunE: func(cmd *cobra.Command, args []string) error {
			address := strings.TrimSpace(flags.address)
			if address == "" {
				cfg, err := ctx.ensureConfig()
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				address = cfg.BindAddress()
			}

			req := notify.Request{
				Message: flags.message,
				Sound:   !flags.noSound,
				Speak:   flags.speak,
			}
			result, err := postNotification(cmd.Context(), address, req, flags.timeout)
			if err != nil {
				return err
			}

			printResult(cmd.OutOrStdout(), result)
			if !result.Success {
				return fmt.Errorf("notification reported failure")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.message, "message", "m", "", "Message to attach to the notification")
	cmd.Flags().BoolVar(&flags.speak, "speak", false, "Speak the message aloud")
	cmd.Flags().BoolVar(&flags.noSound, "no-sound", false, "Skip the notification sound")
	cmd.Flags().StringVarP(&flags.address, "address", "a", "", "Server address as host:port (defaults to the configured bind address)")
	cmd.Flags().DurationVar(&flags.timeout, "timeout", 45*time.Second, "How long to wait for the server response")

	return cmd
}

func postNotification(ctx context.Context, address string, req notify.Request, timeout time.Duration) (notify.Result, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return notify.Result{}, fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		"http://"+address+"/notify", bytes.NewReader(payload))
	if err != nil {
		return notify.Result{}, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(httpReq)
	if err != nil {
		return notify.Result{}, fmt.Errorf("send notification to %s: %w", address, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return notify.Result{}, fmt.Errorf("server returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var result notify.Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return notify.Result{}, fmt.Errorf("decode response: %w", err)
	}
	return result, nil
}

func printResult(out io.Writer, result notify.Result) {
	for _, action := range result.Actions {
		status := "ok"
		if !action.Success {
			status = "failed"
		}
		fmt.Fprintf(out, "%s: %s\n", action.Type, status)
	}
	if result.Success {
		fmt.Fprintln(out, "Notification delivered")
	} else {
		fmt.Fprintln(out, "Notification completed with failures")
	}
}
