package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"
)

const serviceName = "ipregistrar"

var (
	rawLogLevel string
	envFile     string
)

var rootCmd = &cobra.Command{
	Use:   serviceName,
	Short: "Registers IP assets, licenses and derivatives on Story protocol.",
	Long: `ipregistrar submits the IP licensing transactions of a single account:
NFT minting, IP registration, license terms, license tokens and derivatives.
Every transaction is recorded in the ledger database.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		err := godotenv.Load(envFile)
		if err != nil && !(errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("env-file")) {
			return fmt.Errorf("load env file: %w", err)
		}
		return nil
	},
}

// Start runs the command line. It is called once by main. An interrupt
// cancels the context of the running command.
func Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return rootCmd.ExecuteContext(ctx)
}

func logLevel() zapcore.Level {
	level, err := zapcore.ParseLevel(rawLogLevel)
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rawLogLevel, "log-level", "l", "info", "Logging level")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Environment file loaded when present")
}
