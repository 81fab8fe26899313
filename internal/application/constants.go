package application

const (
	// Upstream sources, used in error reports
	sourceNowline       = "nowline"
	defaultNotAvailable = "N/A"

	// Fan-out limits
	defaultSeasonFetchConcurrency = 4

	// Monster search
	secondAwakeningMarker = "2a"

	// Usage report
	usageReportLogLimit  = 1000
	excelSummarySheet    = "Summary"
	excelLogSheet        = "Log"
	excelTimestampLayout = "2006-01-02 15:04:05"

	// Google Sheets publishing
	sheetTitle      = "swbox command usage"
	sheetClearRange = "A1:F1000"
	sheetStartCell  = "A1"
)
