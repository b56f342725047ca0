package entity

// ReportPeriod scales monthly cost figures to the requested reporting
// window and carries its display label.
type ReportPeriod struct {
	Code       string
	Multiplier float64
	Label      string
}

// Tabla de períodos soportados por el parámetro "period".
var reportPeriods = map[string]ReportPeriod{
	"1d": {Code: "1d", Multiplier: 0.033, Label: "diario"},
	"3d": {Code: "3d", Multiplier: 0.1, Label: "3 días"},
	"1w": {Code: "1w", Multiplier: 0.25, Label: "semanal"},
	"1m": {Code: "1m", Multiplier: 1.0, Label: "mensual"},
	"3m": {Code: "3m", Multiplier: 3.0, Label: "trimestral"},
	"6m": {Code: "6m", Multiplier: 6.0, Label: "semestral"},
	"1y": {Code: "1y", Multiplier: 12.0, Label: "anual"},
}

// PeriodFromCode resolves a period code, defaulting to the monthly
// period for unknown or empty codes.
func PeriodFromCode(code string) ReportPeriod {
	if p, ok := reportPeriods[code]; ok {
		return p
	}
	return reportPeriods["1m"]
}
