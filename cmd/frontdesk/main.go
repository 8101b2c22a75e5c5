package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tomasbasham/frontdesk/cmd/frontdesk/command"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	const description = "Walk-in service queue for a front desk"

	var configPath string
	shell := command.Shell{ConfigPath: &configPath}

	root := &cobra.Command{
		Use:           "frontdesk",
		Short:         description,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          shell.Run(ctx),
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a config file (default ./frontdesk.{yaml,env})")

	root.AddCommand(
		shell.Command(ctx),
		command.History{ConfigPath: &configPath}.Command(ctx),
		command.Migrate{ConfigPath: &configPath}.Command(ctx),
	)

	if err := root.ExecuteContext(ctx); err != nil {
		log.WithContext(ctx).Error(err)
		os.Exit(1)
	}
}
