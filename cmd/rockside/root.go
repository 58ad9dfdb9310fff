package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/rockside/internal/buildinfo"
	"github.com/dmitrijs2005/rockside/internal/client/cli"
	"github.com/dmitrijs2005/rockside/internal/client/config"
	"github.com/dmitrijs2005/rockside/internal/client/device"
	"github.com/dmitrijs2005/rockside/internal/client/models"
	"github.com/dmitrijs2005/rockside/internal/client/services"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "rockside",
		Short: "Rockside Consults field questionnaire",
		Long: `rockside collects a field agent's credentials and a short questionnaire
(consent, name, photo, location, comments) and keeps them on this device.

Run without arguments to start the interactive screens.`,
		SilenceUsage: true,
		RunE:         runInteractive,
	}
	config.BindFlags(root.PersistentFlags())

	root.AddCommand(newShowCmd(), newResetCmd(), newVersionCmd())
	return root
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString(config.FlagConfig)
	if err != nil {
		return nil, err
	}
	return config.Load(path, cmd.Flags())
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	rt, err := openRuntime(ctx, cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer rt.Close(ctx)

	out := cmd.OutOrStdout()
	in := cmd.InOrStdin()
	reader := bufio.NewReader(in)
	prompter := device.PrompterFunc(func(prompt string) (string, error) {
		return cli.GetSimpleText(reader, prompt, out)
	})

	locator := device.NewTerminalLocator(cfg.LocationPermission, prompter,
		models.Location{Lat: cfg.Latitude, Lon: cfg.Longitude})

	app := cli.NewApp(cli.Deps{
		Credentials:   rt.creds,
		Questionnaire: rt.form,
		Location:      services.NewLocationService(locator, cfg.LocationTimeout, rt.serviceOptions()...),
		Photos:        device.NewFilePhotoPicker(prompter, rt.dataDir),
		Notifier:      device.NewConsoleNotifier(out),
		Logger:        rt.log.With("component", "cli"),
		PhotoObserver: rt.metrics,
		StrictSignIn:  cfg.StrictSignIn,
		Terminal:      cli.StdinIsTerminal(in),
	}, reader, out)

	return app.Run(ctx)
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the stored account and questionnaire",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			rt, err := openRuntime(ctx, cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer rt.Close(ctx)

			return cli.PrintStored(ctx, cmd.OutOrStdout(), rt.creds, rt.form)
		},
	}
}

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Remove every record stored on this device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			rt, err := openRuntime(ctx, cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer rt.Close(ctx)

			if err := rt.creds.Clear(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Local data removed.")
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			buildinfo.PrintBuildData(cmd.OutOrStdout())
		},
	}
}
