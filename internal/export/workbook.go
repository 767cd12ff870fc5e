package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/f4hy/blightedisland/internal/models"
	"github.com/f4hy/blightedisland/internal/stats"
	"github.com/xuri/excelize/v2"
)

const (
	summarySheet = "Summary"
	gamesSheet   = "Games"
)

var groupSheets = []struct {
	key   stats.GroupKey
	sheet string
	title string
}{
	{stats.GroupAdversary, "Adversaries", "Adversary"},
	{stats.GroupSpirit, "Spirits", "Spirit"},
	{stats.GroupSpiritBase, "Base Spirits", "Base Spirit"},
	{stats.GroupPlayer, "Players", "Player"},
}

// Filename names a statistics workbook after t
func Filename(t time.Time) string {
	return "spirit_island_stats_" + t.Format("20060102_150405") + ".xlsx"
}

// Workbook renders the summary, one sheet per statistics group and the game
// list into an XLSX document
func Workbook(games []*models.Game) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	headerStyleID, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}
	// win rates are stored as 0-100 with one decimal
	rateStyleID, err := f.NewStyle(&excelize.Style{CustomNumFmt: strPtr(`0.0"%"`)})
	if err != nil {
		return nil, err
	}

	summary := stats.Summarize(games)
	summaryRows := [][]any{
		{"Games", summary.Games},
		{"Wins", summary.Wins},
		{"Losses", summary.Losses},
		{"Desyncs", summary.Desyncs},
		{"Pending", summary.Pending},
		{"Win Rate", summary.WinRate},
	}
	if err := writeRows(f, summarySheet, []string{"Metric", "Value"}, summaryRows, headerStyleID); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(summarySheet, "B7", "B7", rateStyleID); err != nil {
		return nil, err
	}

	for _, g := range groupSheets {
		if _, err := f.NewSheet(g.sheet); err != nil {
			return nil, fmt.Errorf("failed to add sheet %s: %w", g.sheet, err)
		}
		rows := stats.Rows(stats.Aggregate(games, g.key))
		data := make([][]any, 0, len(rows))
		for _, r := range rows {
			data = append(data, []any{r.Label, r.Wins, r.Losses, r.Total, r.Played, r.WinRate})
		}
		header := []string{g.title, "Wins", "Losses", "Total", "Played", "Win Rate"}
		if err := writeRows(f, g.sheet, header, data, headerStyleID); err != nil {
			return nil, err
		}
		if len(data) > 0 {
			if err := f.SetCellStyle(g.sheet, "F2", fmt.Sprintf("F%d", len(data)+1), rateStyleID); err != nil {
				return nil, err
			}
		}
	}

	if _, err := f.NewSheet(gamesSheet); err != nil {
		return nil, fmt.Errorf("failed to add sheet %s: %w", gamesSheet, err)
	}
	data := make([][]any, 0, len(games))
	for _, g := range games {
		seats := make([]string, 0, len(g.PlayersPlayed))
		for _, s := range g.PlayersPlayed {
			seats = append(seats, s.Player.Name+": "+s.Spirit.String())
		}
		data = append(data, []any{
			g.DatePlayed.String(),
			g.Adversary.Name,
			g.Adversary.Level,
			string(g.Outcome),
			strings.Join(seats, "; "),
			g.Notes,
		})
	}
	header := []string{"Date", "Adversary", "Level", "Outcome", "Players", "Notes"}
	if err := writeRows(f, gamesSheet, header, data, headerStyleID); err != nil {
		return nil, err
	}

	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, header []string, rows [][]any, headerStyleID int) error {
	headerRow := make([]any, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyleID); err != nil {
		return err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+2, err)
		}
	}
	return nil
}

func strPtr(s string) *string {
	return &s
}
