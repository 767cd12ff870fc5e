package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/f4hy/blightedisland/internal/app"
	"github.com/f4hy/blightedisland/internal/config"
	"github.com/f4hy/blightedisland/internal/history"
	"github.com/f4hy/blightedisland/internal/models"
	"github.com/f4hy/blightedisland/internal/services/tracker"
	"github.com/f4hy/blightedisland/internal/stats"
)

const usage = `usage: blightedisland <command> [flags]

commands:
  import <file>                         import an exported JSON array of games
  export [-o file]                      write every game as an export document
  stats [-group g] [-player p] [-adversary a]
                                        print win rates (group: adversary, spirit, spirit_base, player)
  pick-adversary -level n [-weighted]   pick a random adversary
  pick-spirit [-complexity c] [-weighted]
                                        pick a random spirit
`

var errUsage = errors.New("invalid usage")

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	a, err := app.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}

	err = run(context.Background(), os.Args[1:], os.Stdout, a.Tracker)
	a.Close()
	if errors.Is(err, errUsage) {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// run executes one CLI command against svc
func run(ctx context.Context, args []string, out io.Writer, svc tracker.Service) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "import":
		return runImport(ctx, args[1:], out, svc)
	case "export":
		return runExport(ctx, args[1:], out, svc)
	case "stats":
		return runStats(ctx, args[1:], out, svc)
	case "pick-adversary":
		return runPickAdversary(ctx, args[1:], out, svc)
	case "pick-spirit":
		return runPickSpirit(ctx, args[1:], out, svc)
	}
	return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	return nil
}

func runImport(ctx context.Context, args []string, out io.Writer, svc tracker.Service) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: import needs exactly one file", errUsage)
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("failed to read import: %w", err)
	}

	output, err := svc.ImportGames(ctx, &tracker.ImportGamesInput{Data: data})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Imported %d games, %d failed\n", output.Imported, output.Failed)
	for _, f := range output.Failures {
		fmt.Fprintf(out, "  %s\n", f)
	}
	return nil
}

func runExport(ctx context.Context, args []string, out io.Writer, svc tracker.Service) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	path := fs.String("o", "", "output file, the suggested export name when empty, - for stdout")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	output, err := svc.ExportGames(ctx, &tracker.ExportGamesInput{})
	if err != nil {
		return err
	}

	switch *path {
	case "-":
		_, err = out.Write(output.Data)
		return err
	case "":
		*path = output.Filename
	}
	if err := os.WriteFile(*path, output.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	fmt.Fprintf(out, "Wrote %s\n", *path)
	return nil
}

func runStats(ctx context.Context, args []string, out io.Writer, svc tracker.Service) error {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	group := fs.String("group", string(stats.GroupAdversary), "adversary, spirit, spirit_base or player")
	player := fs.String("player", "", "only games this player sat at")
	adversary := fs.String("adversary", "", "only games against this adversary")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	key, err := stats.ParseGroupKey(*group)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	output, err := svc.GetStats(ctx, &tracker.GetStatsInput{
		Query: tracker.Query{Criteria: history.Criteria{Player: *player, AdversaryName: *adversary}},
		Group: key,
	})
	if err != nil {
		return err
	}

	printWarnings(out, output.Warnings)
	s := output.Summary
	fmt.Fprintf(out, "%d games: %d won, %d lost, %d desync (%.1f%%)\n\n", s.Games, s.Wins, s.Losses, s.Desyncs, s.WinRate)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "GROUP\tWINS\tLOSSES\tTOTAL\tPLAYED\tWIN RATE")
	for _, row := range output.Rows {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%.1f%%\n", row.Label, row.Wins, row.Losses, row.Total, row.Played, row.WinRate)
	}
	return tw.Flush()
}

func runPickAdversary(ctx context.Context, args []string, out io.Writer, svc tracker.Service) error {
	fs := flag.NewFlagSet("pick-adversary", flag.ContinueOnError)
	level := fs.Int("level", -1, "adversary level")
	weighted := fs.Bool("weighted", false, "favor adversaries played less often at this level")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	output, err := svc.PickAdversary(ctx, &tracker.PickAdversaryInput{Level: *level, Weighted: *weighted})
	if err != nil {
		return err
	}

	fmt.Fprintln(out, output.Adversary.Label())
	printRecord(out, output.Stats)
	printWarnings(out, output.Warnings)
	return nil
}

func runPickSpirit(ctx context.Context, args []string, out io.Writer, svc tracker.Service) error {
	fs := flag.NewFlagSet("pick-spirit", flag.ContinueOnError)
	complexity := fs.String("complexity", "", "Low, Moderate, High or Very High")
	weighted := fs.Bool("weighted", false, "favor spirits played less often")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	var c models.Complexity
	if *complexity != "" {
		parsed, err := models.ParseComplexity(*complexity)
		if err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		c = parsed
	}

	output, err := svc.PickSpirit(ctx, &tracker.PickSpiritInput{Complexity: c, Weighted: *weighted})
	if err != nil {
		return err
	}

	fmt.Fprintln(out, output.Spirit)
	printRecord(out, output.Stats)
	printWarnings(out, output.Warnings)
	return nil
}

func printRecord(out io.Writer, s models.GroupStats) {
	if s.Played == 0 {
		fmt.Fprintln(out, "  no games recorded")
		return
	}
	fmt.Fprintf(out, "  %d-%d (%.1f%%), %d played\n", s.Wins, s.Losses, s.WinRate, s.Played)
}

func printWarnings(out io.Writer, warnings []string) {
	for _, w := range warnings {
		fmt.Fprintf(out, "warning: %s\n", w)
	}
}
