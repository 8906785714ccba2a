// Package cmd wires the CLI surface: the interactive booking session as the
// default command, plus login/logout and a plain bookings table for
// scripting.
package cmd

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"moviebook-cli/auth"
	"moviebook-cli/config"
	"moviebook-cli/model"
	"moviebook-cli/seatmap"
	"moviebook-cli/service"
	"moviebook-cli/store"
	"moviebook-cli/tui"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "moviebook",
	Short: "Book movie tickets from your terminal",
	Long: "moviebook browses movies and shows, lets you pick seats on the\n" +
		"auditorium grid and pays for the booking, all against your cinema's\n" +
		"booking backend.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		deps := buildDeps()
		program := tea.NewProgram(tui.New(deps), tea.WithAltScreen())
		_, err := program.Run()
		return err
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the moviebook version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("moviebook", version)
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(bookingsCmd)
	rootCmd.AddCommand(versionCmd)
}

// buildDeps assembles the session's collaborators. The environment token
// wins over the stored one so CI and one-off invocations can override a
// login.
func buildDeps() tui.Deps {
	cfg := config.Load()
	tokens := tokenChain(cfg)
	client := service.NewClient(nil, cfg.APIBaseURL, tokens)

	identity, err := auth.ParseIdentity(tokens.Token())
	if err != nil {
		identity = auth.Identity{}
	}

	return tui.Deps{
		Client:   client,
		Identity: identity,
		Layout:   seatmap.DefaultLayout(),
		Movies:   movieCache{},
		Timers:   timerStore{},
	}
}

func tokenChain(cfg config.Config) auth.TokenProvider {
	return auth.Chain{
		auth.Static(cfg.Token),
		auth.ProviderFunc(store.TokenOrEmpty),
	}
}

func newClient() *service.Client {
	cfg := config.Load()
	return service.NewClient(nil, cfg.APIBaseURL, tokenChain(cfg))
}

// movieCache adapts the store package's file cache to the session.
type movieCache struct{}

func (movieCache) Load() ([]model.Movie, bool, error) {
	return store.LoadMovieCache()
}

func (movieCache) Save(movies []model.Movie) error {
	return store.SaveMovieCache(movies)
}

// timerStore adapts the store package's pending-booking timestamps.
type timerStore struct{}

func (timerStore) RememberPending(bookings []model.Booking) (map[string]time.Time, error) {
	return store.RememberPendingBookings(bookings)
}
