package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/napolitain/solver-geodes/internal/models"
)

func printBanner() {
	titleColor := color.New(color.FgCyan, color.Bold)

	titleColor.Println("\n╭───────────────────────────╮")
	titleColor.Println("│  Geode Robot Production   │")
	titleColor.Println("│  Optimizer                │")
	titleColor.Println("╰───────────────────────────╯")
	fmt.Println()
}

func printBlueprints(blueprints []models.Blueprint) {
	infoColor := color.New(color.FgYellow)

	infoColor.Printf("📦 Loaded %d blueprints\n", len(blueprints))
	for _, bp := range blueprints {
		fmt.Printf("   • #%d ore=%s clay=%s obsidian=%s geode=%s\n",
			bp.ID,
			formatCosts(bp.Cost(models.Ore)),
			formatCosts(bp.Cost(models.Clay)),
			formatCosts(bp.Cost(models.Obsidian)),
			formatCosts(bp.Cost(models.Geode)))
	}
	fmt.Println()
}

func printConfig(cfg models.Config) {
	infoColor := color.New(color.FgYellow)

	infoColor.Println("⚙️  Config:")
	fmt.Printf("   Quality pass: %d minutes, all blueprints\n", cfg.Budget)
	fmt.Printf("   Top pass:     %d minutes, first %d blueprints\n", cfg.ExtendedBudget, cfg.TopN)
	fmt.Printf("   Greedy geode: %v   Saturation: %v   Split depth: %d\n",
		cfg.GreedyGeode, cfg.Saturation, cfg.SplitDepth)
	fmt.Println()
}

func printResults(title string, results []models.BlueprintResult) {
	if len(results) == 0 {
		return
	}

	color.New(color.FgYellow).Printf("📊 %s\n", title)

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Blueprint", "Minutes", "Geodes", "Quality", "Nodes", "Pruned", "Time"}),
	)

	for _, r := range results {
		row := []string{
			strconv.Itoa(r.BlueprintID),
			strconv.Itoa(r.Budget),
			strconv.Itoa(r.MaxGeodes),
			strconv.Itoa(r.Quality()),
			formatCount(r.Nodes),
			formatCount(r.Pruned),
			formatDuration(r.Elapsed),
		}
		if err := table.Append(row); err != nil {
			color.Red("Error appending row: %v", err)
			return
		}
	}

	if err := table.Render(); err != nil {
		color.Red("Error rendering table: %v", err)
	}
	fmt.Println()
}

func printSummary(report *models.Report, cfg models.Config) {
	successColor := color.New(color.FgGreen, color.Bold)

	successColor.Printf("✓ Quality sum (%d minutes): %d\n", cfg.Budget, report.QualitySum)
	successColor.Printf("✓ Top %d product (%d minutes): %d\n", cfg.TopN, cfg.ExtendedBudget, report.TopProduct)
	fmt.Printf("  Finished in %s\n", formatDuration(report.Elapsed))
}

func printJSON(report *models.Report) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// formatCosts renders a cost vector as "3+14c", skipping zero components
func formatCosts(c models.Costs) string {
	suffix := [models.NumUnitTypes]string{"", "c", "ob", "g"}

	s := ""
	for _, u := range models.AllUnitTypes() {
		if c[u] == 0 {
			continue
		}
		if s != "" {
			s += "+"
		}
		s += strconv.Itoa(c[u]) + suffix[u]
	}
	if s == "" {
		return "0"
	}
	return s
}

func formatCount(n int64) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fk", float64(n)/1_000)
	default:
		return strconv.FormatInt(n, 10)
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return d.Round(time.Microsecond).String()
	}
	return d.Round(time.Millisecond).String()
}
