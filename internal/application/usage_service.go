package application

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"swbox/internal/models"
	"swbox/internal/repository"
	"swbox/pkg/sheets"

	"github.com/xuri/excelize/v2"
)

type CommandUsage struct {
	Command  string
	Total    int
	Success  int
	Failures int
	LastUsed time.Time
}

type UsageServiceImpl struct {
	repo   repository.CommandLog
	logger Logger

	sheets     SheetsClient
	sheetOwner string
	mu         sync.Mutex
	sheetID    string
}

func NewUsageServiceImpl(repo repository.CommandLog, logger Logger) *UsageServiceImpl {
	return &UsageServiceImpl{repo: repo, logger: logger}
}

// WithSheets enables PublishSheet. An empty spreadsheetID creates a new
// spreadsheet on first publish.
func (s *UsageServiceImpl) WithSheets(client SheetsClient, spreadsheetID, ownerEmail string) *UsageServiceImpl {
	s.sheets = client
	s.sheetID = spreadsheetID
	s.sheetOwner = ownerEmail
	return s
}

func (s *UsageServiceImpl) Record(ctx context.Context, entry models.CommandLog) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return fmt.Errorf("failed to record command usage: %w", err)
	}
	return nil
}

// Summary aggregates the most recent log entries per command, busiest first.
func (s *UsageServiceImpl) Summary(ctx context.Context) ([]CommandUsage, error) {
	logs, err := s.repo.List(ctx, usageReportLogLimit)
	if err != nil {
		return nil, err
	}
	return summarize(logs), nil
}

func (s *UsageServiceImpl) ExcelReport(ctx context.Context) ([]byte, error) {
	logs, err := s.repo.List(ctx, usageReportLogLimit)
	if err != nil {
		return nil, err
	}
	summary := summarize(logs)

	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(excelSummarySheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(excelLogSheet); err != nil {
		return nil, err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	for i, row := range summaryTable(summary) {
		if err := writeRow(f, excelSummarySheet, i+1, row); err != nil {
			return nil, err
		}
	}

	logHeaders := []string{"Date", "Platform", "User", "Server", "Command", "Success", "Request ID"}
	if err := writeRow(f, excelLogSheet, 1, toCells(logHeaders)); err != nil {
		return nil, err
	}
	for i, l := range logs {
		row := []interface{}{
			l.CreatedAt.Format(excelTimestampLayout),
			l.Platform,
			l.Username,
			l.Server,
			l.Command,
			l.Success,
			l.RequestID,
		}
		if err := writeRow(f, excelLogSheet, i+2, row); err != nil {
			return nil, err
		}
	}

	f.SetColWidth(excelSummarySheet, "A", "A", 18)
	f.SetColWidth(excelSummarySheet, "B", "F", 12)
	f.SetColWidth(excelLogSheet, "A", "A", 20)
	f.SetColWidth(excelLogSheet, "B", "G", 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PublishSheet writes the usage summary to the configured spreadsheet and
// returns its URL.
func (s *UsageServiceImpl) PublishSheet(ctx context.Context) (string, error) {
	if s.sheets == nil {
		return "", ErrSheetsDisabled
	}

	summary, err := s.Summary(ctx)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sheetID == "" {
		id, _, err := s.sheets.CreateSpreadsheet(ctx, sheetTitle, s.sheetOwner)
		if err != nil {
			return "", fmt.Errorf("failed to create usage spreadsheet: %w", err)
		}
		s.logger.Info("usage spreadsheet created", "spreadsheet_id", id)
		s.sheetID = id
	}

	if err := s.sheets.ReplaceValues(ctx, s.sheetID, sheetClearRange, sheetStartCell, summaryTable(summary)); err != nil {
		return "", fmt.Errorf("failed to publish usage summary: %w", err)
	}
	return sheets.SpreadsheetURL(s.sheetID), nil
}

// summaryTable renders the summary with a header row, shared by the Excel
// report and the spreadsheet.
func summaryTable(summary []CommandUsage) [][]interface{} {
	rows := make([][]interface{}, 0, len(summary)+1)
	rows = append(rows, []interface{}{"Command", "Total", "Success", "Failures", "Success %", "Last used"})
	for _, u := range summary {
		rows = append(rows, []interface{}{
			u.Command,
			u.Total,
			u.Success,
			u.Failures,
			fmt.Sprintf("%.1f%%", successRate(u.Success, u.Total)),
			u.LastUsed.Format(excelTimestampLayout),
		})
	}
	return rows
}

func summarize(logs []models.CommandLog) []CommandUsage {
	byCommand := make(map[string]*CommandUsage)
	for _, l := range logs {
		u, ok := byCommand[l.Command]
		if !ok {
			u = &CommandUsage{Command: l.Command}
			byCommand[l.Command] = u
		}
		u.Total++
		if l.Success {
			u.Success++
		} else {
			u.Failures++
		}
		if l.CreatedAt.After(u.LastUsed) {
			u.LastUsed = l.CreatedAt
		}
	}

	summary := make([]CommandUsage, 0, len(byCommand))
	for _, u := range byCommand {
		summary = append(summary, *u)
	}
	sort.Slice(summary, func(i, j int) bool {
		if summary[i].Total != summary[j].Total {
			return summary[i].Total > summary[j].Total
		}
		return summary[i].Command < summary[j].Command
	})
	return summary
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func toCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}
