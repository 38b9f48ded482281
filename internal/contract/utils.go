package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/rushiraj-gohil/bizdash/schema"
)

// Color variables for console output.
var (
	AnomalyColor = color.New(color.FgRed, color.Bold) // anomalyColor flags a month that broke the trend.
	NormalColor  = color.New(color.FgCyan)            // normalColor is the informational baseline.

	StrongColor = color.New(color.FgGreen, color.Bold) // strongColor marks high retention cells.
	MidColor    = color.New(color.FgYellow)            // midColor marks moderate retention cells.
	WeakColor   = color.New(color.FgRed)               // weakColor marks low retention cells.

	SevereColor = color.New(color.FgRed, color.Bold) // severeColor marks heavy chargeback activity.
)

// GetAnomalyLabel returns the label for a revenue point, colored for console
// output when useColors is set. CSV and JSON printing always use the plain form.
func GetAnomalyLabel(label schema.AnomalyLabel, useColors bool) string {
	if !useColors {
		return string(label)
	}
	if label == schema.AnomalyValue {
		return AnomalyColor.Sprint(string(label))
	}
	return NormalColor.Sprint(string(label))
}

// GetRateCell renders a retention percentage, shaded by intensity for console
// output when useColors is set. The buckets approximate the original heatmap
// gradient: the brighter the cell, the better the cohort retained.
func GetRateCell(formatted string, rate float64, useColors bool) string {
	if !useColors {
		return formatted
	}
	switch {
	case rate >= 50:
		return StrongColor.Sprint(formatted)
	case rate >= 20:
		return MidColor.Sprint(formatted)
	case rate > 0:
		return WeakColor.Sprint(formatted)
	default:
		return formatted
	}
}

// GetChargebackCell renders a chargeback count, highlighted when the customer
// has disputed payments.
func GetChargebackCell(formatted string, chargedBack int, useColors bool) string {
	if !useColors || chargedBack == 0 {
		return formatted
	}
	return SevereColor.Sprint(formatted)
}

// SelectOutputFile returns the appropriate file handle for output, based on the
// provided file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetCacheDBFilePath returns the path to the SQLite DB file for dataset caching.
func GetCacheDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".bizdash_cache.db"
	}
	return filepath.Join(homeDir, ".bizdash_cache.db")
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for history storage.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".bizdash_history.db"
	}
	return filepath.Join(homeDir, ".bizdash_history.db")
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
