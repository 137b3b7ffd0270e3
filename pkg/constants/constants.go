// Package constants provides shared constants for the collegeroi application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// CollegeYears is the length of the degree program being costed
	CollegeYears = 4

	// ProjectionYears is the horizon for the savings projection
	ProjectionYears = 10

	// DefaultInflationPercent is the annual inflation rate applied when
	// seeding a tuition breakdown from the reference dataset
	DefaultInflationPercent = 3.0
)

// Scenario comparison constants
const (
	// MaxScenarios caps how many scenarios may be held for comparison
	MaxScenarios = 5
)

// Persistence constants
const (
	// StateStorageKey is the single key under which the whole application
	// state blob is persisted
	StateStorageKey = "collegeroi-state"

	// StateSchemaVersion tags persisted blobs so older incompatible saves
	// are discarded rather than misread
	StateSchemaVersion = 1
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default plan configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestSizeBytes is the default maximum request body size (256 KB)
	DefaultMaxRequestSizeBytes int64 = 256 * 1024
)
