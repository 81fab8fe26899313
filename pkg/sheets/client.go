package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

type Config struct {
	CredentialsFile string `env:"GOOGLE_CREDENTIALS_FILE" envDefault:""`
}

func (c *Config) Enabled() bool {
	return c.CredentialsFile != ""
}

type GoogleSheetsClient struct {
	sheets *sheets.Service
	drive  *drive.Service
}

func NewGoogleSheetsClient(ctx context.Context, credentialsPath string) (*GoogleSheetsClient, error) {
	sheetsSrv, err := sheets.NewService(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	driveSrv, err := drive.NewService(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &GoogleSheetsClient{
		sheets: sheetsSrv,
		drive:  driveSrv,
	}, nil
}

// CreateSpreadsheet creates a spreadsheet shared as writer with ownerEmail
// (when set) and readable by anyone with the link.
func (c *GoogleSheetsClient) CreateSpreadsheet(ctx context.Context, title, ownerEmail string) (string, string, error) {
	resp, err := c.sheets.Spreadsheets.Create(&sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{
			Title: title,
		},
	}).Context(ctx).Do()
	if err != nil {
		return "", "", fmt.Errorf("failed to create spreadsheet: %w", err)
	}

	if ownerEmail != "" {
		if err := c.addPermission(ctx, resp.SpreadsheetId, &drive.Permission{
			Type:         "user",
			Role:         "writer",
			EmailAddress: ownerEmail,
		}); err != nil {
			return "", "", fmt.Errorf("failed to add owner: %w", err)
		}
	}

	if err := c.addPermission(ctx, resp.SpreadsheetId, &drive.Permission{
		Type: "anyone",
		Role: "reader",
	}); err != nil {
		return "", "", fmt.Errorf("failed to make spreadsheet public: %w", err)
	}

	return resp.SpreadsheetId, resp.SpreadsheetUrl, nil
}

func (c *GoogleSheetsClient) addPermission(ctx context.Context, spreadsheetID string, p *drive.Permission) error {
	_, err := c.drive.Permissions.Create(spreadsheetID, p).Context(ctx).Do()
	return err
}

// ReplaceValues clears clearRange and writes values starting at its first cell.
func (c *GoogleSheetsClient) ReplaceValues(ctx context.Context, spreadsheetID, clearRange, start string, values [][]interface{}) error {
	_, err := c.sheets.Spreadsheets.Values.Clear(spreadsheetID, clearRange, &sheets.ClearValuesRequest{}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to clear range: %w", err)
	}

	valRange := &sheets.ValueRange{Values: values}
	_, err = c.sheets.Spreadsheets.Values.Update(spreadsheetID, start, valRange).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to update values: %w", err)
	}
	return nil
}

func SpreadsheetURL(id string) string {
	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s", id)
}
