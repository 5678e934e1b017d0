package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/nfrund/oncampus/cmd/oncampus-cli/internal/output"
	"github.com/nfrund/oncampus/internal/auth"
	"github.com/nfrund/oncampus/internal/config"
	"github.com/nfrund/oncampus/internal/domain"
	"github.com/nfrund/oncampus/internal/invite"
	"github.com/nfrund/oncampus/internal/logging"
	"github.com/nfrund/oncampus/internal/session"
	"github.com/spf13/cobra"
)

// SimulationResult is what simulate prints.
type SimulationResult struct {
	State     session.State        `json:"state"`
	Notices   []string             `json:"notices,omitempty"`
	Available []session.Transition `json:"available"`
}

const navigatePrefix = "goto:"

func newSimulateCmd() *cobra.Command {
	var (
		screen  string
		guard   string
		verbose bool
	)
	cmd := &cobra.Command{
		Use:   "simulate [step...]",
		Short: "Replay triggers against a fresh session and print its state",
		Long: `Start a session on --screen and apply each step in order, then print the
session state as JSON. A step is one of:

  trigger            fire a trigger, e.g. get_started
  trigger=<json>     submit a form, e.g. signin_submitted='{"email":"a@x.edu","password":"pw"}'
  goto:<screen>      navigate directly to a screen

Examples:
  oncampus-cli simulate join 'signup_completed={"name":"Ana","email":"a@x.edu","password":"pw","college":"IIT Delhi","course":"B.Tech CSE","year":"3rd Year","skills":["Python"]}'
  oncampus-cli simulate --screen landing book_demo`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			if verbose {
				logger = logging.NewWithWriter(cmd.ErrOrStderr(), "text", "debug")
			}
			result, err := simulate(cmd.Context(), logger, screen, guard, args)
			if err != nil {
				return err
			}
			return output.JSON(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringVarP(&screen, "screen", "s", string(domain.ScreenStudentLanding), "Initial screen")
	cobra.CheckErr(cmd.RegisterFlagCompletionFunc("screen", completeScreens))
	cmd.Flags().StringVar(&guard, "guard", config.GuardRedirect, "Dashboard guard (redirect, blank)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every screen change to stderr")
	return cmd
}

func simulate(ctx context.Context, logger *slog.Logger, screen, guard string, steps []string) (SimulationResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	initial, err := domain.ParseScreen(screen)
	if err != nil {
		return SimulationResult{}, err
	}
	if guard != config.GuardRedirect && guard != config.GuardBlank {
		return SimulationResult{}, fmt.Errorf("guard must be %q or %q", config.GuardRedirect, config.GuardBlank)
	}

	defaults := config.Defaults()
	ctrl, err := session.New(session.Dependencies{
		Auth:           auth.NewMock(logger),
		Logger:         logger,
		InitialScreen:  initial,
		DashboardGuard: guard,
		MinSkills:      defaults.MinSkills,
		Invite: invite.Config{
			Cap:      defaults.InviteCap,
			Interval: defaults.InviteInterval,
			MaxStep:  defaults.InviteMaxStep,
		},
		InviteLink: defaults.InviteLink,
	})
	if err != nil {
		return SimulationResult{}, err
	}
	defer ctrl.Close()

	var result SimulationResult
	for i, step := range steps {
		outcome, err := apply(ctx, ctrl, step)
		if err != nil {
			return SimulationResult{}, fmt.Errorf("step %d (%s): %w", i+1, step, err)
		}
		if outcome.Notice != "" {
			result.Notices = append(result.Notices, outcome.Notice)
		}
	}

	result.State = ctrl.Snapshot()
	result.Available = session.Available(result.State.Screen)
	return result, nil
}

func apply(ctx context.Context, ctrl *session.Controller, step string) (session.Outcome, error) {
	if target, ok := strings.CutPrefix(step, navigatePrefix); ok {
		screen, err := domain.ParseScreen(target)
		if err != nil {
			return session.Outcome{}, err
		}
		return ctrl.Navigate(ctx, screen)
	}
	trigger, payload, hasPayload := strings.Cut(step, "=")
	if hasPayload {
		return ctrl.Submit(ctx, session.Trigger(trigger), []byte(payload))
	}
	return ctrl.Fire(ctx, session.Trigger(trigger))
}
