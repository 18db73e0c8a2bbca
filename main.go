package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"runright/internal/config"
	"runright/internal/engine"
	"runright/internal/service"
	"runright/internal/store"
	"runright/internal/tui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runright",
		Short: "A personal training coach for runners",
		Long: "RunRight tracks your runs and daily check-ins and tells you what to run\n" +
			"today: session type, distance, and the reasoning behind it.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI()
		},
	}

	cmd.AddCommand(
		newSetupCmd(),
		newRecommendCmd(),
		newLogCmd(),
		newCheckinCmd(),
		newZonesCmd(),
		newProfileCmd(),
	)

	return cmd
}

// openCoach opens the database and builds the coach service from the config
// file. Display units derive from the returned config.
func openCoach() (*store.Store, *service.CoachService, *config.Config, error) {
	cfg, err := config.LoadOrDefault()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	st, err := store.Open()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("opening database: %w", err)
	}

	coach := service.NewCoachService(st, cfg.Coaching.RecentRunsLimit, cfg.Coaching.ConsistencyWeeks)
	return st, coach, cfg, nil
}

// syncDisplayUnits persists the profile's distance unit into the display
// config so the TUI, CLI, and the engine's explanation text agree.
func syncDisplayUnits(cfg *config.Config, unit engine.DistanceUnit) error {
	cfg.SetDistanceUnit(unit == engine.Miles)
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	return nil
}

func runTUI() error {
	st, coach, cfg, err := openCoach()
	if err != nil {
		return err
	}
	defer st.Close()
	units := tui.NewUnits(cfg.Display)

	if _, err := coach.Profile(); errors.Is(err, store.ErrNoProfile) {
		fmt.Println("No runner profile yet. Run 'runright setup' first.")
		return nil
	} else if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}

	app := tui.NewApp(coach, units)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}

func newSetupCmd() *cobra.Command {
	var (
		name        string
		level       string
		unit        string
		goal        string
		goalDist    string
		runsPerWeek int
		longest     string
		weekly      string
	)

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Create or replace your runner profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, coach, cfg, err := openCoach()
			if err != nil {
				return err
			}
			defer st.Close()

			profile := engine.RunnerProfile{
				DisplayName: strings.TrimSpace(name),
				RunsPerWeek: runsPerWeek,
			}

			if profile.ExperienceLevel, err = parseLevel(level); err != nil {
				return err
			}
			if profile.DistanceUnit, err = parseUnit(unit); err != nil {
				return err
			}
			if profile.PrimaryGoal, err = parseGoal(goal); err != nil {
				return err
			}
			if goalDist != "" {
				if profile.CustomGoalKm, err = service.ParseDistanceKm(goalDist); err != nil {
					return err
				}
			}
			if longest != "" {
				if profile.LongestRunKm, err = service.ParseDistanceKm(longest); err != nil {
					return err
				}
			}
			if weekly != "" {
				if profile.TypicalWeeklyKm, err = service.ParseWeeklyKm(weekly); err != nil {
					return err
				}
			}

			if err := coach.SaveProfile(&profile); err != nil {
				return err
			}
			if err := syncDisplayUnits(cfg, profile.DistanceUnit); err != nil {
				return err
			}

			fmt.Printf("Profile saved for %s (%s).\n", profile.DisplayName, profile.ExperienceLevel.DisplayName())
			fmt.Println("Run 'runright' to open the dashboard.")
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&level, "level", "beginner", "experience level: beginner, intermediate, advanced")
	cmd.Flags().StringVar(&unit, "unit", "km", "distance unit: km or mi")
	cmd.Flags().StringVar(&goal, "goal", "none", "goal: none, fitness, weight-loss, 5k, 10k, half, marathon, pb")
	cmd.Flags().StringVar(&goalDist, "goal-distance", "", "custom goal distance in km (pb goal only)")
	cmd.Flags().IntVar(&runsPerWeek, "runs-per-week", 3, "how many runs you aim for each week (1-7)")
	cmd.Flags().StringVar(&longest, "longest", "", "longest recent run in km")
	cmd.Flags().StringVar(&weekly, "weekly", "", "typical weekly volume in km")

	return cmd
}

func newRecommendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recommend",
		Short: "Print today's session recommendation",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, coach, cfg, err := openCoach()
			if err != nil {
				return err
			}
			defer st.Close()
			units := tui.NewUnits(cfg.Display)

			data, err := coach.Dashboard()
			if errors.Is(err, store.ErrNoProfile) {
				return errors.New("no runner profile yet, run 'runright setup' first")
			}
			if err != nil {
				return err
			}

			rec := data.Recommendation
			fmt.Printf("Today: %s", rec.Type.DisplayName())
			if rec.HasDistance {
				fmt.Printf(" - %s", units.FormatKm(rec.DistanceKm))
			}
			fmt.Println()
			fmt.Println(rec.Explanation)
			for _, w := range rec.Warnings {
				fmt.Println("Warning:", w)
			}
			if data.HasReadiness {
				fmt.Printf("Readiness: %.0f/100\n", data.Readiness)
			}
			if !data.HasCheckIn {
				fmt.Println("Tip: 'runright checkin' makes this recommendation sharper.")
			}
			return nil
		},
	}
}

func newLogCmd() *cobra.Command {
	var (
		distance   string
		duration   string
		difficulty int
		painLevel  int
		areas      string
		notes      string
		date       string
	)

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a completed run",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, coach, cfg, err := openCoach()
			if err != nil {
				return err
			}
			defer st.Close()
			units := tui.NewUnits(cfg.Display)

			in := service.RunInput{
				Difficulty: difficulty,
				PainLevel:  painLevel,
				PainAreas:  service.ParsePainAreas(areas),
				Notes:      notes,
			}

			entered, err := service.ParseDistanceKm(distance)
			if err != nil {
				return err
			}
			in.DistanceKm = units.ToKm(entered)

			if in.DurationMinutes, err = service.ParseDurationMinutes(duration); err != nil {
				return err
			}
			if date != "" {
				d, err := time.ParseInLocation("2006-01-02", date, time.Local)
				if err != nil {
					return fmt.Errorf("date must be YYYY-MM-DD, got %q", date)
				}
				in.Date = d
			}

			feedback, err := coach.LogRun(in)
			if err != nil {
				return err
			}

			fmt.Println("Run saved.")
			if feedback.Pace.Valid() {
				fmt.Println("Pace:", feedback.Pace.Format(units.PaceMiles()))
			}
			if feedback.HasBaseline {
				fmt.Printf("vs. your usual: %s\n", feedback.Category.DisplayName())
				fmt.Println(feedback.Encouragement)
			} else {
				fmt.Println(feedback.Description)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&distance, "distance", "", "distance in your configured unit (required)")
	cmd.Flags().StringVar(&duration, "duration", "", "duration as minutes, mm:ss, or h:mm:ss (required)")
	cmd.Flags().IntVar(&difficulty, "difficulty", 0, "perceived effort 1-5, 0 to skip")
	cmd.Flags().IntVar(&painLevel, "pain", 0, "pain level 0-10")
	cmd.Flags().StringVar(&areas, "areas", "", "comma-separated pain areas")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	cmd.Flags().StringVar(&date, "date", "", "run date as YYYY-MM-DD, default today")
	cmd.MarkFlagRequired("distance")
	cmd.MarkFlagRequired("duration")

	return cmd
}

func newCheckinCmd() *cobra.Command {
	var (
		soreness  int
		sleep     int
		painLevel int
		areas     string
	)

	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "Record today's check-in",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, coach, _, err := openCoach()
			if err != nil {
				return err
			}
			defer st.Close()

			if err := coach.SaveCheckIn(soreness, sleep, painLevel, service.ParsePainAreas(areas)); err != nil {
				return err
			}
			fmt.Println("Check-in saved. Run 'runright recommend' to see today's session.")
			return nil
		},
	}

	cmd.Flags().IntVar(&soreness, "soreness", 0, "muscle soreness 0-10")
	cmd.Flags().IntVar(&sleep, "sleep", 3, "sleep quality 1-5")
	cmd.Flags().IntVar(&painLevel, "pain", 0, "pain level 0-10")
	cmd.Flags().StringVar(&areas, "areas", "", "comma-separated pain areas")

	return cmd
}

func newZonesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "zones",
		Short: "Print your training pace zones",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, coach, cfg, err := openCoach()
			if err != nil {
				return err
			}
			defer st.Close()
			units := tui.NewUnits(cfg.Display)

			insight, err := coach.PaceInsight()
			if err != nil {
				return err
			}
			if !insight.HasBaseline {
				fmt.Println("Not enough recent runs for a baseline yet. Log at least 3 runs in the last 8 weeks.")
				return nil
			}

			useMiles := units.PaceMiles()
			fmt.Println("Baseline: ", insight.Baseline.Format(useMiles))
			fmt.Println("Easy:     ", insight.Zones.Easy.Format(useMiles))
			fmt.Println("Tempo:    ", insight.Zones.Tempo.Format(useMiles))
			fmt.Println("Threshold:", insight.Zones.Threshold.Format(useMiles))
			fmt.Println("Interval: ", insight.Zones.Interval.Format(useMiles))
			return nil
		},
	}
}

func newProfileCmd() *cobra.Command {
	var (
		name     string
		level    string
		unit     string
		goal     string
		goalDist string
		goalDesc string
	)

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update your runner profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, coach, cfg, err := openCoach()
			if err != nil {
				return err
			}
			defer st.Close()

			profile, err := coach.Profile()
			if errors.Is(err, store.ErrNoProfile) {
				return errors.New("no runner profile yet, run 'runright setup' first")
			}
			if err != nil {
				return err
			}

			changed := false
			if cmd.Flags().Changed("name") {
				profile.DisplayName = strings.TrimSpace(name)
				changed = true
			}
			if cmd.Flags().Changed("level") {
				if profile.ExperienceLevel, err = parseLevel(level); err != nil {
					return err
				}
				changed = true
			}
			if cmd.Flags().Changed("unit") {
				if profile.DistanceUnit, err = parseUnit(unit); err != nil {
					return err
				}
				changed = true
			}
			if cmd.Flags().Changed("goal") {
				if profile.PrimaryGoal, err = parseGoal(goal); err != nil {
					return err
				}
				changed = true
			}
			if cmd.Flags().Changed("goal-distance") {
				if profile.CustomGoalKm, err = service.ParseDistanceKm(goalDist); err != nil {
					return err
				}
				changed = true
			}
			if cmd.Flags().Changed("goal-description") {
				profile.GoalDescription = goalDesc
				changed = true
			}
			if changed {
				if err := coach.SaveProfile(profile); err != nil {
					return err
				}
				if err := syncDisplayUnits(cfg, profile.DistanceUnit); err != nil {
					return err
				}
				fmt.Println("Profile updated.")
			}

			units := tui.NewUnits(cfg.Display)
			fmt.Println("Name:          ", profile.DisplayName)
			fmt.Println("Level:         ", profile.ExperienceLevel.DisplayName())
			fmt.Println("Goal:          ", profile.PrimaryGoal.DisplayName())
			if km, ok := profile.GoalDistanceKm(); ok {
				fmt.Println("Goal distance: ", units.FormatKm(km))
			}
			if profile.GoalDescription != "" {
				fmt.Println("Goal notes:    ", profile.GoalDescription)
			}
			fmt.Println("Runs per week: ", profile.RunsPerWeek)
			fmt.Println("Longest run:   ", units.FormatKm(profile.LongestRunKm))
			fmt.Println("Weekly volume: ", units.FormatKm(profile.TypicalWeeklyKm))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "set display name")
	cmd.Flags().StringVar(&level, "level", "", "set experience level: beginner, intermediate, advanced")
	cmd.Flags().StringVar(&unit, "unit", "", "set distance unit: km or mi")
	cmd.Flags().StringVar(&goal, "goal", "", "set goal: none, fitness, weight-loss, 5k, 10k, half, marathon, pb")
	cmd.Flags().StringVar(&goalDist, "goal-distance", "", "set custom goal distance in km (pb goal only)")
	cmd.Flags().StringVar(&goalDesc, "goal-description", "", "set a free-form goal description")

	return cmd
}

func parseLevel(s string) (engine.ExperienceLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "beginner":
		return engine.Beginner, nil
	case "intermediate":
		return engine.Intermediate, nil
	case "advanced":
		return engine.Advanced, nil
	}
	return "", fmt.Errorf("level must be beginner, intermediate, or advanced, got %q", s)
}

func parseUnit(s string) (engine.DistanceUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "km", "kilometers":
		return engine.Kilometers, nil
	case "mi", "miles":
		return engine.Miles, nil
	}
	return "", fmt.Errorf("unit must be km or mi, got %q", s)
}

func parseGoal(s string) (engine.PrimaryGoal, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return engine.GoalNone, nil
	case "fitness":
		return engine.GoalGeneralFitness, nil
	case "weight-loss":
		return engine.GoalWeightLoss, nil
	case "5k":
		return engine.GoalRace5K, nil
	case "10k":
		return engine.GoalRace10K, nil
	case "half":
		return engine.GoalRaceHalf, nil
	case "marathon":
		return engine.GoalRaceMarathon, nil
	case "pb":
		return engine.GoalPersonalBest, nil
	}
	return "", fmt.Errorf("unknown goal %q", s)
}
