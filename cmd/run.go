package cmd

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/hoot/internal/app"
	"github.com/abhisek/hoot/internal/feedback"
	"github.com/abhisek/hoot/internal/llm"
	"github.com/abhisek/hoot/internal/logging"
	"github.com/abhisek/hoot/internal/problemgen"
	"github.com/abhisek/hoot/internal/score"
	"github.com/abhisek/hoot/internal/screens/tutor"
	"github.com/abhisek/hoot/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	logPath := settings.LogFile
	if logPath == "" {
		p, err := logging.DefaultPath()
		if err != nil {
			return fmt.Errorf("resolve log path: %w", err)
		}
		logPath = p
	}
	_, logFile, err := logging.Setup(logPath, settings.LogLevel)
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	defer logFile.Close()

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	deps := tutor.Deps{
		Generator: problemgen.New(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))),
		Channel:   feedback.Fallback{},
		Scores:    score.NewLedger(st.CounterRepo()),
		Solves:    eventRepo,
	}

	provider := newProvider(cmd, eventRepo)
	if provider != nil {
		deps.Channel = feedback.NewService(provider, settings.FeedbackSettings())
	}

	skip, _ := cmd.Flags().GetBool("no-splash")
	slog.Info("starting tutor", "llm", provider != nil)
	return app.Run(app.Options{Tutor: deps, SkipWelcome: skip})
}

// newProvider builds the tutor text provider. It returns nil when none is
// configured; the tutor then uses its built-in messages.
func newProvider(cmd *cobra.Command, eventRepo store.EventRepo) llm.Provider {
	cfg, ok := settings.ProviderConfig()
	if !ok {
		slog.Info("no LLM provider configured, using built-in messages")
		return nil
	}
	provider, err := llm.NewProvider(cmd.Context(), cfg, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Professor Hoot will use built-in messages.")
		slog.Warn("LLM provider unavailable", "provider", cfg.Provider, "error", err)
		return nil
	}
	return provider
}
