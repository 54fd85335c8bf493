package pipeline

// Suggestion is one ranked replacement candidate in an error record,
// per spec §6's suggestions schema.
type Suggestion struct {
	Word           string  `json:"word"`
	Score          float64 `json:"score"`
	FrequencyScore float64 `json:"frequency_score"`
	EditDistance   float64 `json:"edit_distance"`
	IsMedical      bool    `json:"is_medical"`
}

// ErrorRecord describes one corrected (or flagged) token, per spec §6.
type ErrorRecord struct {
	Original    string       `json:"original"`
	Position    int          `json:"position"`
	Type        string       `json:"type"`
	Confidence  float64      `json:"confidence"`
	Context     []string     `json:"context"`
	Suggestions []Suggestion `json:"suggestions"`
}

// Statistics summarizes a CorrectionResult's errors, per spec §6.
type Statistics struct {
	TotalErrors           int            `json:"total_errors"`
	ErrorTypes            map[string]int `json:"error_types"`
	AverageConfidence     float64        `json:"average_confidence"`
	MedicalCorrections    int            `json:"medical_corrections"`
	MedicalCorrectionRate float64        `json:"medical_correction_rate"`
}

// CorrectionResult is the full output of CheckText, per spec §6's output
// schema.
type CorrectionResult struct {
	CorrectedText string        `json:"corrected_text"`
	Errors        []ErrorRecord `json:"errors"`
	Statistics    Statistics    `json:"statistics"`
}

// CorrectionPair is an (original, expected) pair used by Evaluate, per
// spec §4.5's evaluate(pairs).
type CorrectionPair struct {
	Original string
	Expected string
}

// EvaluationResult reports accuracy against a labeled test set, per
// spec §4.5.
type EvaluationResult struct {
	Accuracy           float64
	TotalTests         int
	CorrectPredictions int
}
