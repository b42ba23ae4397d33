package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/shiroemons/go-sramr/internal/sramr/app"
	"github.com/shiroemons/go-sramr/internal/sramr/config"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		logrus.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.NewConfig()

	rootCmd := &cobra.Command{
		Use:   "z3rsramr [file]",
		Short: "Decode A Link to the Past Randomizer save files",
		Long: "z3rsramr decodes the stats, equipment and seed information stored in an\n" +
			"A Link to the Past Randomizer SRAM file (.srm, optionally zstd-compressed).\n" +
			"Without a file argument, a single save file in the current directory is used.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if config.HandleVersion(cmd.OutOrStdout(), cfg.ShowVersion) {
				return nil
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if len(args) == 1 {
				cfg.SavePath = args[0]
			}
			return newApp(cmd, cfg).Run(cmd.Context())
		},
	}
	config.BindFlags(rootCmd.Flags(), cfg)

	validateCmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check the size, markers, ROM name and checksum of a save file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.SavePath = args[0]
			}
			return newApp(cmd, cfg).Validate(cmd.Context())
		},
	}
	validateCmd.Flags().BoolVarP(&cfg.DebugMode, "debug", "d", false, "enable debug output")

	fieldsCmd := &cobra.Command{
		Use:   "fields",
		Short: "List the decoded fields and their offsets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newApp(cmd, cfg).ListFields(cmd.OutOrStdout())
		},
	}

	rootCmd.AddCommand(validateCmd, fieldsCmd)
	return rootCmd
}

func newApp(cmd *cobra.Command, cfg *config.Config) *app.App {
	return app.NewWithOptions(cfg, app.Options{Stdout: cmd.OutOrStdout()})
}
