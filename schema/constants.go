package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for the trend index.
	DatabaseBackend string
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All trend index backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite"
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none" // default
)

// Workflow status labels used by the default rulebook. Active statuses
// require daily updates, pending statuses skip the update requirement,
// excluded statuses are filtered out before analysis.
const (
	StatusTodo       = "To Do"
	StatusInProgress = "In Progress"
	StatusReview     = "Review"
	StatusQA         = "QA"
	StatusDone       = "Done"
	StatusBacklog    = "Backlog"
	StatusUnknown    = "Unknown"
)

// UnassignedName is the assignee label for items without an assignee.
const UnassignedName = "Unassigned"

// MandatoryCheckCount is the number of mandatory attribute checks that feed
// the compliance score: epic, sprint, type, points, severity, due date,
// description.
const MandatoryCheckCount = 7

// Default rulebook values.
var (
	// DefaultActiveStatuses require a daily progress update.
	DefaultActiveStatuses = []string{StatusInProgress, StatusReview, StatusQA}

	// DefaultPendingStatuses skip the update requirement but keep every
	// other check.
	DefaultPendingStatuses = []string{StatusTodo}

	// DefaultExcludedStatuses are dropped before analysis.
	DefaultExcludedStatuses = []string{StatusBacklog}

	// DefaultExemptTypes should not carry story points at all.
	DefaultExemptTypes = []string{"Epic", "Bug"}
)

// ValidStoryPoints is the Fibonacci-like set a story-point estimate must
// belong to. Zero is allowed for parent items.
var ValidStoryPoints = map[int]struct{}{
	0: {}, 1: {}, 2: {}, 3: {}, 5: {}, 8: {}, 13: {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidTrendBackends lists all valid trend index backends.
var ValidTrendBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// StatusOrder is the canonical display order for workflow statuses.
var StatusOrder = []string{StatusTodo, StatusInProgress, StatusReview, StatusQA, StatusDone, StatusBacklog}
