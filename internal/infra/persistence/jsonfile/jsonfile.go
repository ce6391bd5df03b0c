// Package jsonfile contains the concrete persistence layer implementation
// backed by flat JSON files, one file per entity collection.
package jsonfile

// File names under the configured data directory. The names are part of the
// persisted data contract.
const (
	userDataFile        = "userData.json"
	appointmentDataFile = "appointmentData.json"
	paymentDataFile     = "paymentData.json"
	feedbackDataFile    = "feedbackData.json"
	reportDataFile      = "reportData.json"

	// TemporaryIDFile holds the id generator's per-prefix counters.
	TemporaryIDFile = "temporaryId.json"
)
