package domain

import "fmt"

// Frequency represents the repetition cadence of a multi-sitting project.
type Frequency string

const (
	FrequencySingle      Frequency = "single"
	FrequencyConsecutive Frequency = "consecutive"
	FrequencyWeekly      Frequency = "weekly"
	FrequencyBiweekly    Frequency = "biweekly"
	FrequencyMonthly     Frequency = "monthly"
)

// ParseFrequency converts a wire value into a Frequency.
func ParseFrequency(s string) (Frequency, error) {
	f := Frequency(s)
	if !f.Valid() {
		return "", fmt.Errorf("unknown frequency %q", s)
	}
	return f, nil
}

// Valid returns true if the frequency is one of the known cadences.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencySingle, FrequencyConsecutive, FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly:
		return true
	default:
		return false
	}
}

// IsCyclic returns true for cadences that repeat on a fixed cycle
// (weekly, biweekly, monthly). Single and consecutive follow a
// day-scan policy instead of a cycle-skip policy.
func (f Frequency) IsCyclic() bool {
	switch f {
	case FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly:
		return true
	default:
		return false
	}
}

func (f Frequency) String() string {
	return string(f)
}
