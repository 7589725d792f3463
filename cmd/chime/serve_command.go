package main

import (
	"fmt"
	"log/slog"
	"net"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"chime/internal/config"
	"chime/internal/deps"
	"chime/internal/logging"
	"chime/internal/netiface"
	"chime/internal/notify"
	"chime/internal/server"
	"chime/internal/sound"
	"chime/internal/tts"
)

type serveFlags struct {
	host           string
	port           int
	iface          string
	ifacePrefix    string
	soundFile      string
	debug          bool
	listInterfaces bool
}

func newServeCommand(ctx *commandContext) *cobra.Command {
	var flags serveFlags

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the notification server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.listInterfaces {
				return printInterfaces(cmd.OutOrStdout())
			}
			return runServe(cmd, ctx, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.host, "host", "H", "", "Host address to bind")
	cmd.Flags().IntVarP(&flags.port, "port", "p", 0, "Port to listen on")
	cmd.Flags().StringVarP(&flags.iface, "interface", "i", "", "Bind to the address of this network interface")
	cmd.Flags().StringVarP(&flags.ifacePrefix, "interface-prefix", "P", "", "Bind to the first interface whose name has this prefix")
	cmd.Flags().StringVarP(&flags.soundFile, "sound", "s", "", "Path to the notification sound file")
	cmd.Flags().BoolVarP(&flags.debug, "debug", "d", false, "Enable debug logging")
	cmd.Flags().BoolVarP(&flags.listInterfaces, "list-interfaces", "l", false, "List network interfaces and exit")

	return cmd
}

func runServe(cmd *cobra.Command, ctx *commandContext, flags serveFlags) error {
	signalCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := ctx.ensureConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyServeFlags(cfg, flags, cmd.Flags().Changed)
	if err := resolveBindHost(cfg); err != nil {
		return err
	}

	logger, err := logging.NewFromConfig(cfg, flags.debug)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logging.CleanupOldLogs(logger, cfg.Logging.LogDir, "*.log", cfg.Logging.RetentionDays,
		filepath.Join(cfg.Logging.LogDir, logging.LogFileName))

	lock := flock.New(filepath.Join(cfg.Logging.LogDir, "chime.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire instance lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("another chime instance is already running")
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logger.Warn("failed to release instance lock", logging.Args(logging.Error(err))...)
		}
	}()

	reportDependencies(logger)
	if !isLoopbackHost(cfg.Server.Host) {
		logger.Warn("binding to a non-loopback address; anyone who can reach it can trigger notifications",
			logging.Args(logging.String("host", cfg.Server.Host))...)
	}

	player := sound.NewPlayer(cfg.Notify.SoundFile, logger,
		sound.WithTimeout(time.Duration(cfg.Notify.SoundTimeout)*time.Second))
	local := tts.NewLocalSpeaker(logger,
		tts.WithTimeout(time.Duration(cfg.Notify.TTSTimeout)*time.Second))
	var remote tts.Speaker
	if cfg.ElevenLabs.Enabled {
		remote = tts.NewElevenLabsClient(cfg.ElevenLabs, player, logger)
	}
	speech := tts.NewService(remote, local, logger)
	dispatcher := notify.NewDispatcher(player, speech, logger)

	srv, err := server.New(cfg, dispatcher, logger)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}
	if err := srv.Start(signalCtx); err != nil {
		return err
	}
	defer srv.Stop()

	<-signalCtx.Done()
	logger.Info("chime shutting down")
	return nil
}

// applyServeFlags overlays command-line flags onto the loaded config. Only
// flags the user actually set override file values.
func applyServeFlags(cfg *config.Config, flags serveFlags, changed func(string) bool) {
	if changed("host") {
		cfg.Server.Host = flags.host
	}
	if changed("port") {
		cfg.Server.Port = flags.port
	}
	if changed("interface") {
		cfg.Server.Interface = flags.iface
	}
	if changed("interface-prefix") {
		cfg.Server.InterfacePrefix = flags.ifacePrefix
	}
	if changed("sound") {
		cfg.Notify.SoundFile = flags.soundFile
	}
}

// resolveBindHost rewrites cfg.Server.Host from the interface settings.
// Prefix beats interface name beats host.
func resolveBindHost(cfg *config.Config) error {
	if prefix := strings.TrimSpace(cfg.Server.InterfacePrefix); prefix != "" {
		iface, err := netiface.FirstByPrefix(prefix)
		if err != nil {
			return fmt.Errorf("resolve interface prefix %q: %w", prefix, err)
		}
		cfg.Server.Host = iface.Address
		return nil
	}
	if name := strings.TrimSpace(cfg.Server.Interface); name != "" {
		address, err := netiface.AddressByName(name)
		if err != nil {
			return fmt.Errorf("resolve interface %q: %w", name, err)
		}
		cfg.Server.Host = address
		return nil
	}
	return nil
}

func isLoopbackHost(host string) bool {
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

func reportDependencies(logger *slog.Logger) {
	statuses := deps.Check(deps.Defaults())
	players, engines := 0, 0
	for _, status := range statuses {
		logger.Debug("dependency check",
			logging.Args(
				logging.String("command", status.Command),
				logging.Bool("available", status.Available),
			)...)
		if !status.Available {
			continue
		}
		switch status.Command {
		case "paplay", "pw-play", "aplay", "ffplay", "mpv":
			players++
		default:
			engines++
		}
	}
	if players == 0 {
		logger.Warn("no audio player found; sound requests will fail")
	}
	if engines == 0 {
		logger.Warn("no local speech engine found; speech falls back to the remote engine only")
	}
}
