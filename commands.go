// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/polls/auth"
	"github.com/danielhkuo/polls/cliparse"
	"github.com/danielhkuo/polls/clock"
	"github.com/danielhkuo/polls/db"
	"github.com/danielhkuo/polls/fixtures"
	"github.com/danielhkuo/polls/models"
	"github.com/danielhkuo/polls/store"
)

func newRootCmd() *cobra.Command {
	var flags cliparse.Config
	var debug bool

	cmd := &cobra.Command{
		Use:          "polls",
		Short:        "Polls web application",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			setupLogging(debug)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := cliparse.Resolve(flags)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}

	cliparse.RegisterFlags(cmd.PersistentFlags(), &flags)
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	cmd.AddCommand(
		serveCmd(&flags),
		migrateCmd(&flags),
		questionCmd(&flags),
		seedCmd(&flags),
	)
	return cmd
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func serveCmd(flags *cliparse.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := cliparse.Resolve(*flags)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
}

func migrateCmd(flags *cliparse.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the database schema and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := cliparse.Resolve(*flags)
			if err != nil {
				return err
			}
			if cfg.DatabaseType == storeMemory {
				return fmt.Errorf("nothing to migrate for database type %q", cfg.DatabaseType)
			}

			_, closeStore, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			fmt.Fprintln(cmd.OutOrStdout(), "schema ready")
			return nil
		},
	}
}

func questionCmd(flags *cliparse.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "question",
		Short: "Manage questions",
	}
	cmd.AddCommand(questionAddCmd(flags))
	return cmd
}

func questionAddCmd(flags *cliparse.Config) *cobra.Command {
	var text, pubDate string
	var offset time.Duration
	var choices []string

	c := &cobra.Command{
		Use:   "add",
		Short: "Add a question and print its admin key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := cliparse.Resolve(*flags)
			if err != nil {
				return err
			}
			if err := cfg.RequireSecrets(); err != nil {
				return err
			}

			fq := fixtures.Question{Text: text, Choices: choices}
			if pubDate != "" {
				t, err := time.Parse(time.RFC3339, pubDate)
				if err != nil {
					return fmt.Errorf("invalid --pub-date: %w", err)
				}
				fq.PubDate = &t
			}
			if offset != 0 {
				fq.Offset = offset.String()
			}

			s, closeStore, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			created, err := fixtures.Apply(cmd.Context(), s, fixtures.File{Questions: []fixtures.Question{fq}}, clock.NewSystem().Now())
			if err != nil {
				return err
			}

			printQuestion(cmd, created[0], cfg)
			return nil
		},
	}

	c.Flags().StringVar(&text, "text", "", "Question text (required)")
	c.Flags().StringVar(&pubDate, "pub-date", "", "Publication time, RFC 3339 (default now)")
	c.Flags().DurationVar(&offset, "offset", 0, "Publication time relative to now, e.g. -48h")
	c.Flags().StringArrayVar(&choices, "choice", nil, "Choice text (repeatable)")
	c.MarkFlagsMutuallyExclusive("pub-date", "offset")
	_ = c.MarkFlagRequired("text")
	return c
}

func seedCmd(flags *cliparse.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "seed FILE",
		Short: "Load questions and choices from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cliparse.Resolve(*flags)
			if err != nil {
				return err
			}

			f, err := fixtures.LoadFile(args[0])
			if err != nil {
				return err
			}

			s, closeStore, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			created, err := fixtures.Apply(cmd.Context(), s, f, clock.NewSystem().Now())
			for _, q := range created {
				printQuestion(cmd, q, cfg)
			}
			if err != nil {
				return err
			}

			slog.Info("fixtures loaded", "file", args[0], "questions", len(created))
			return nil
		},
	}
}

func printQuestion(cmd *cobra.Command, q models.Question, cfg cliparse.Config) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\t%s\t%s", q.ID, q.PubDate.Format(time.RFC3339), q.QuestionText)
	if cfg.AdminKeySalt != "" {
		fmt.Fprintf(out, "\tadmin_key=%s", auth.GenerateAdminKey(q.ID, cfg.AdminKeySalt))
	}
	fmt.Fprintln(out)
}

const storeMemory = "memory"

// openStore returns the configured store and a function releasing it.
// SQL stores get their schema created on open.
func openStore(cfg cliparse.Config) (store.Store, func() error, error) {
	if cfg.DatabaseType == storeMemory {
		slog.Warn("using in-memory store; data is lost on exit")
		return store.NewMemoryStore(), func() error { return nil }, nil
	}

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		conn.Close()
		return nil, nil, err
	}

	return store.NewSQLStore(conn), conn.Close, nil
}
