package deadlock

// RiskLevel grades a deadlock finding. High requires a true bidirectional
// wait-for relationship; medium is a one-directional wait over shared state.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// String returns the string representation.
func (r RiskLevel) String() string {
	return string(r)
}

// Risk is a potential deadlock between two events over shared state.
// The pair is unordered: swapping Events[0] and Events[1] describes the
// same finding.
type Risk struct {
	Events          [2]string `json:"events"`
	SharedResources []string  `json:"shared_resources"`
	Level           RiskLevel `json:"risk_level"`
	Line            int       `json:"line"`
}
