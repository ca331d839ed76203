package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskboard/internal/i18n"
	"taskboard/internal/settings"
)

func newPrefsCmd(a *app) *cobra.Command {
	var (
		language string
		theme    string
		reset    bool
	)
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change the language and theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("language") && !i18n.Language(language).IsValid() {
				return fmt.Errorf("unsupported language %q", language)
			}
			if flags.Changed("theme") && !settings.Theme(theme).IsValid() {
				return fmt.Errorf("unsupported theme %q", theme)
			}

			ctx := cmd.Context()
			if reset {
				if err := settings.Reset(ctx, a.backend); err != nil {
					return err
				}
			}
			if flags.Changed("language") {
				if err := settings.SaveLanguage(ctx, a.backend, i18n.Language(language)); err != nil {
					return err
				}
			}
			if flags.Changed("theme") {
				if err := settings.SaveTheme(ctx, a.backend, settings.Theme(theme)); err != nil {
					return err
				}
			}

			prefs, err := settings.Load(ctx, a.backend)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "language: %s (%s)\ntheme: %s\n", prefs.Language, prefs.Dir(), prefs.Theme)
			return nil
		},
	}
	cmd.Flags().StringVar(&language, "language", "", "Language: en or ar")
	cmd.Flags().StringVar(&theme, "theme", "", "Theme: light, dark or system")
	cmd.Flags().BoolVar(&reset, "reset", false, "Forget stored preferences before applying other flags")
	return cmd
}
