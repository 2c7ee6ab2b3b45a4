package cmd

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/folio-cli/folio/auth"
	"github.com/folio-cli/folio/color"
	"github.com/folio-cli/folio/icon"
	"github.com/folio-cli/folio/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func completionSecrets(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return lo.Map(auth.Secrets(), func(s auth.Secret, _ int) string { return string(s) }), cobra.ShellCompDirectiveNoFileComp
}

func parseSecret(name string) auth.Secret {
	secret, ok := lo.Find(auth.Secrets(), func(s auth.Secret) bool { return string(s) == name })
	if !ok {
		handleErr(fmt.Errorf("unknown secret %s, expected one of %v", style.Fg(color.Red)(name), auth.Secrets()))
	}
	return secret
}

func init() {
	rootCmd.AddCommand(authCmd)
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage credentials stored in the system keyring",
}

func init() {
	authCmd.AddCommand(authListCmd)
}

var authListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show which credentials are stored",
	Run: func(cmd *cobra.Command, args []string) {
		for _, s := range auth.Secrets() {
			value, err := auth.Get(s)
			handleErr(err)

			state := style.Fg(color.Red)("unset")
			if value != "" {
				state = style.Fg(color.Green)("set")
			}
			fmt.Printf("%s=%s\n", style.Bold(string(s)), state)
		}
	},
}

func init() {
	authCmd.AddCommand(authSetCmd)
	authSetCmd.Flags().StringP("value", "v", "", "The secret value, asked for when omitted")
}

var authSetCmd = &cobra.Command{
	Use:               "set [secret]",
	Short:             "Store a credential",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionSecrets,
	Run: func(cmd *cobra.Command, args []string) {
		secret := parseSecret(args[0])

		value := lo.Must(cmd.Flags().GetString("value"))
		if value == "" {
			handleErr(survey.AskOne(&survey.Password{Message: string(secret)}, &value))
		}
		if value == "" {
			handleErr(errors.New("empty value"))
		}

		handleErr(auth.Set(secret, value))
		fmt.Printf("%s stored %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), style.Fg(color.Purple)(string(secret)))
	},
}

func init() {
	authCmd.AddCommand(authRemoveCmd)
}

var authRemoveCmd = &cobra.Command{
	Use:               "remove [secret]",
	Short:             "Delete a stored credential",
	Aliases:           []string{"delete"},
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionSecrets,
	Run: func(cmd *cobra.Command, args []string) {
		secret := parseSecret(args[0])
		handleErr(auth.Delete(secret))
		fmt.Printf("%s removed %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), style.Fg(color.Purple)(string(secret)))
	},
}
