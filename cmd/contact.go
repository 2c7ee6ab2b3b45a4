package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/folio-cli/folio/color"
	"github.com/folio-cli/folio/contact"
	"github.com/folio-cli/folio/icon"
	"github.com/folio-cli/folio/style"
	"github.com/folio-cli/folio/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(contactCmd)

	contactCmd.Flags().StringP("name", "n", "", "Your name")
	contactCmd.Flags().StringP("email", "e", "", "Your email address")
	contactCmd.Flags().StringP("message", "m", "", "The message to send")
}

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Send a message through the contact form",
	Long: `Send a message through the contact form.
Fields not given as flags are asked for interactively.`,
	Run: func(cmd *cobra.Command, args []string) {
		m := contact.NewModel()
		m.Form = contact.Form{
			Name:    lo.Must(cmd.Flags().GetString("name")),
			Email:   lo.Must(cmd.Flags().GetString("email")),
			Message: lo.Must(cmd.Flags().GetString("message")),
		}

		var questions []*survey.Question
		if m.Form.Name == "" {
			questions = append(questions, &survey.Question{
				Name:     "name",
				Prompt:   &survey.Input{Message: "Name"},
				Validate: survey.Required,
			})
		}
		if m.Form.Email == "" {
			questions = append(questions, &survey.Question{
				Name:   "email",
				Prompt: &survey.Input{Message: "Email"},
				Validate: func(ans any) error {
					return contact.Form{Name: "-", Email: fmt.Sprint(ans), Message: "-"}.Validate()
				},
			})
		}
		if m.Form.Message == "" {
			questions = append(questions, &survey.Question{
				Name:     "message",
				Prompt:   &survey.Multiline{Message: "Message"},
				Validate: survey.Required,
			})
		}

		if len(questions) > 0 {
			if !util.IsTerminal() {
				handleErr(errors.New("not a terminal: pass --name, --email and --message"))
			}
			handleErr(survey.Ask(questions, &m.Form))
		}

		attempt, err := m.Submit()
		handleErr(err)

		erase := util.PrintErasable(fmt.Sprintf("%s %s", icon.Get(icon.Loading), m.Message()))
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		err = contact.Default().Submit(ctx, attempt.Form)
		erase()

		m.Complete(attempt.Seq, err)
		if err != nil {
			fmt.Printf("%s %s\n", icon.Get(icon.Fail), style.Fg(color.Red)(m.Message()))
			handleErr(err)
		}
		fmt.Printf("%s %s\n", icon.Get(icon.Success), style.Fg(color.Green)(m.Message()))
	},
}
