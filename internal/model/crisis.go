package model

// CrisisSeverity grades how urgently a text needs human follow-up.
type CrisisSeverity string

const (
	CrisisNone     CrisisSeverity = "none"
	CrisisModerate CrisisSeverity = "moderate"
	CrisisHigh     CrisisSeverity = "high"
)

func (s CrisisSeverity) String() string {
	return string(s)
}
