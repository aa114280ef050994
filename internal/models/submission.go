package models

import "time"

// SubmissionOutcome is what the gateway can truthfully report. The response
// sheet endpoint may answer with an opaque body, so "stored" and "stored but
// unreadable" cannot be told apart; those cases degrade to unconfirmed
// rather than failing the respondent's local report.
type SubmissionOutcome string

const (
	OutcomeAcknowledged SubmissionOutcome = "acknowledged"
	OutcomeUnconfirmed  SubmissionOutcome = "unconfirmed"
)

// SubmissionScores is the computed-score block of the wire payload, shaped
// to match the response sheet's columns.
type SubmissionScores struct {
	Communication  map[Trait]int `json:"communication"`
	Motivation     map[Trait]int `json:"motivation"`
	PrimaryComm    Trait         `json:"primaryComm"`
	SecondaryComm  Trait         `json:"secondaryComm"`
	PrimaryMotiv   Trait         `json:"primaryMotiv"`
	SecondaryMotiv Trait         `json:"secondaryMotiv"`
}

// SubmissionPayload is the record POSTed to the storage endpoint.
type SubmissionPayload struct {
	Timestamp string           `json:"timestamp"`
	Name      string           `json:"name"`
	Email     string           `json:"email"`
	Role      Role             `json:"role"`
	Answers   AnswerSet        `json:"answers"`
	Scores    SubmissionScores `json:"scores"`
}

// SubmissionRow is one parsed row of the response sheet listing. Rows with
// unparseable timestamps are kept (TimestampValid false) and sort as
// equal-weight among themselves, stable by retrieval order.
type SubmissionRow struct {
	Timestamp      time.Time `json:"timestamp"`
	TimestampRaw   string    `json:"timestamp_raw"`
	TimestampValid bool      `json:"timestamp_valid"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	PrimaryComm    string    `json:"primary_comm"`
	SecondaryComm  string    `json:"secondary_comm"`
	PrimaryMotiv   string    `json:"primary_motiv"`
	SecondaryMotiv string    `json:"secondary_motiv"`
}
