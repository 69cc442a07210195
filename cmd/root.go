package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gsheets",
		Short:         "Google Sheets CLI: read, append, update and search spreadsheets",
		Long:          "gsheets talks to the Google Sheets API with a service-account credential resolved from the environment, the OS keychain or 1Password. Spreadsheets are addressed by ID, URL or a saved alias.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newReadCmd(app),
		newAppendCmd(app),
		newUpdateCmd(app),
		newFindCmd(app),
		newRunCmd(app),
		newAuthCmd(app),
		newAliasCmd(app),
	)

	return rootCmd
}
