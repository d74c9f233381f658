package models

import (
	"fmt"
	"strings"
)

// Category represents one of the policy categories a mayor decides on each year
type Category string

const (
	Transport  Category = "transport"
	Energy     Category = "energy"
	Waste      Category = "waste"
	GreenSpace Category = "green_space"
)

// AllCategories returns all policy categories in deterministic order
func AllCategories() []Category {
	return []Category{Transport, Energy, Waste, GreenSpace}
}

// Title returns the human readable category name
func (c Category) Title() string {
	switch c {
	case Transport:
		return "Transportation"
	case Energy:
		return "Energy"
	case Waste:
		return "Waste Management"
	case GreenSpace:
		return "Green Space"
	default:
		return string(c)
	}
}

// PolicyOption is a single initiative the mayor can pick within a category
type PolicyOption struct {
	Label               string `json:"label"`
	Cost                int64  `json:"cost"`
	SustainabilityDelta int    `json:"sustainability"`
	HappinessDelta      int    `json:"happiness"`
}

// Impact is the effect of one branch of a random event
type Impact struct {
	SustainabilityDelta int   `json:"sustainability"`
	HappinessDelta      int   `json:"happiness"`
	Cost                int64 `json:"cost"`
}

// Severity describes how an event is presented
type Severity int

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityWarning
	SeverityError
)

// String returns a string representation of the severity
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeveritySuccess:
		return "success"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseSeverity converts a catalog string into a Severity
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "info", "":
		return SeverityInfo, nil
	case "success":
		return SeveritySuccess, nil
	case "warning":
		return SeverityWarning, nil
	case "error":
		return SeverityError, nil
	default:
		return SeverityInfo, fmt.Errorf("unknown severity %q", s)
	}
}

// RandomEvent is an occurrence the mayor must respond to or ignore before the year closes
type RandomEvent struct {
	Description string
	Severity    Severity
	OnRespond   Impact
	OnIgnore    Impact
}

// Branch returns the impact chosen by a response
func (e *RandomEvent) Branch(r Response) Impact {
	if r == Respond {
		return e.OnRespond
	}
	return e.OnIgnore
}

// Response is the mayor's answer to a pending event
type Response int

const (
	Respond Response = iota
	Ignore
)

// String returns a string representation of the response
func (r Response) String() string {
	switch r {
	case Respond:
		return "respond"
	case Ignore:
		return "ignore"
	default:
		return "unknown"
	}
}

// Valid reports whether r is one of the known responses
func (r Response) Valid() bool {
	return r == Respond || r == Ignore
}

// ParseResponse accepts respond/ignore and the yes/no aliases
func ParseResponse(s string) (Response, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "respond", "yes", "y":
		return Respond, nil
	case "ignore", "no", "n":
		return Ignore, nil
	default:
		return Ignore, fmt.Errorf("unknown response %q", s)
	}
}

// Selections holds one chosen label per category
type Selections struct {
	Transport  string
	Energy     string
	Waste      string
	GreenSpace string
}

// Get returns the label chosen for a category
func (s Selections) Get(c Category) string {
	switch c {
	case Transport:
		return s.Transport
	case Energy:
		return s.Energy
	case Waste:
		return s.Waste
	case GreenSpace:
		return s.GreenSpace
	default:
		return ""
	}
}

// Set stores the label chosen for a category
func (s *Selections) Set(c Category, label string) {
	switch c {
	case Transport:
		s.Transport = label
	case Energy:
		s.Energy = label
	case Waste:
		s.Waste = label
	case GreenSpace:
		s.GreenSpace = label
	}
}
