package schema

// ScoreParams holds the coefficients combining the three score components
// into the final priority score. Loaded once at startup and injected, never
// referenced as ambient globals.
type ScoreParams struct {
	Severity float64 `mapstructure:"severity"`
	Votes    float64 `mapstructure:"votes"`
	Location float64 `mapstructure:"location"`
}

// DefaultScoreParams returns the standard component coefficients.
func DefaultScoreParams() ScoreParams {
	return ScoreParams{
		Severity: 0.5,
		Votes:    0.2,
		Location: 0.3,
	}
}

// SeverityTable maps a department name to its baseline urgency.
type SeverityTable map[string]int

// DefaultSeverityFallback applies to departments the table does not list.
const DefaultSeverityFallback = 3

func (t SeverityTable) Severity(department string) int {
	if s, ok := t[department]; ok {
		return s
	}
	return DefaultSeverityFallback
}

// DefaultSeverities returns the standard department severity table.
func DefaultSeverities() SeverityTable {
	return SeverityTable{
		"Electricity": 10,
		"Water":       9,
		"Roads":       7,
		"Waste":       5,
		"Sanitation":  5,
	}
}
