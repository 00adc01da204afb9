// Package cmd wires the command line to a session.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"rps-duel/codec"
	"rps-duel/config"
	"rps-duel/input"
	"rps-duel/logger"
	"rps-duel/report"
	"rps-duel/session"
	"rps-duel/transport"
)

var (
	cfgFile    string
	codecName  string
	readyDelay time.Duration
	logLevel   string
)

// rootCmd plays one turn against the peer and exits.
var rootCmd = &cobra.Command{
	Use:   "rps-duel NAME SELF_ADDR PEER_ADDR",
	Short: "Play one turn of rock-paper-scissors against a peer over UDP",
	Long: `rps-duel connects to the opponent via a UDP socket, reads your move and
the opponent's move simultaneously, and determines the winner.

NAME is announced to the opponent. SELF_ADDR is the IP:port this player
binds to, e.g. "127.0.0.1:44444". PEER_ADDR is the opponent's IP:port.
Start both players within the ready delay of each other.`,
	Args:          cobra.ExactArgs(3),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "config file (default is ~/.rps-duel/config.yaml)")
	rootCmd.Flags().StringVar(&codecName, "codec", "", `message codec, must match the peer: json or binary (default "json")`)
	rootCmd.Flags().DurationVar(&readyDelay, "ready-delay", 3*time.Second, "pause before the handshake so the peer can bind its socket")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", `log level: debug, info, warn, error (default "warn")`)
}

func run(cmd *cobra.Command, args []string) error {
	name, selfAddr, peerAddr := args[0], args[1], args[2]

	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Flags override the config file.
	if codecName != "" {
		cfg.Codec = codecName
	}
	if cmd.Flags().Changed("ready-delay") {
		cfg.ReadyDelay = config.Duration(readyDelay)
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	lvl, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log := logger.New(lvl)

	codecType, err := codec.ParseCodecType(cfg.Codec)
	if err != nil {
		return err
	}

	conn, err := transport.Dial(selfAddr, peerAddr)
	if err != nil {
		return err
	}
	defer conn.Close()
	log.Info("socket associated", "self", conn.LocalAddr(), "peer", conn.RemoteAddr())

	sess := session.New(
		session.Config{Name: name, ReadyDelay: time.Duration(cfg.ReadyDelay)},
		transport.New(conn, codecType, transport.Logging(log)),
		input.New(os.Stdin),
		report.New(os.Stdout),
		log,
	)
	return sess.Run(cmd.Context())
}
