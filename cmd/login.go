package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"moviebook-cli/auth"
	"moviebook-cli/store"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store the session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		emailPrompt := promptui.Prompt{
			Label: "Email",
			Validate: func(input string) error {
				if !strings.Contains(input, "@") {
					return errors.New("enter a valid email address")
				}
				return nil
			},
		}
		email, err := emailPrompt.Run()
		if err != nil {
			return err
		}

		passwordPrompt := promptui.Prompt{
			Label: "Password",
			Mask:  '*',
			Validate: func(input string) error {
				if input == "" {
					return errors.New("password must not be empty")
				}
				return nil
			},
		}
		password, err := passwordPrompt.Run()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
		defer cancel()

		token, err := newClient().SignIn(ctx, strings.TrimSpace(email), password)
		if err != nil {
			return fmt.Errorf("sign in: %w", err)
		}
		if err := store.SaveToken(token); err != nil {
			return fmt.Errorf("store token: %w", err)
		}

		if identity, err := auth.ParseIdentity(token); err == nil {
			fmt.Printf("signed in as %s (%s)\n", identity.Email, strings.ToLower(identity.Role))
		} else {
			fmt.Println("signed in")
		}
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.ClearToken(); err != nil {
			return err
		}
		fmt.Println("signed out")
		return nil
	},
}
