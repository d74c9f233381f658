package models

// TurnRecord captures the policies chosen in one year
type TurnRecord struct {
	Year       int    `json:"year"`
	Transport  string `json:"transport"`
	Energy     string `json:"energy"`
	Waste      string `json:"waste"`
	GreenSpace string `json:"green_space"`
}

// Choice returns the label recorded for a category
func (r TurnRecord) Choice(c Category) string {
	switch c {
	case Transport:
		return r.Transport
	case Energy:
		return r.Energy
	case Waste:
		return r.Waste
	case GreenSpace:
		return r.GreenSpace
	default:
		return ""
	}
}

// CityState is the record tracked across one playthrough.
//
// Sustainability and Happiness are stored unclamped and Budget may go negative;
// clamping is a display concern. History is append-only and PendingEvent is set
// only between applying choices and resolving the sampled event.
type CityState struct {
	Year           int
	Sustainability int
	Happiness      int
	Budget         int64
	History        []TurnRecord
	PendingEvent   *RandomEvent
}

// NewCityState creates the starting state for a playthrough
func NewCityState(s Settings) *CityState {
	return &CityState{
		Year:           1,
		Sustainability: s.StartSustainability,
		Happiness:      s.StartHappiness,
		Budget:         s.StartBudget,
		History:        []TurnRecord{},
	}
}

// Clone returns a deep copy that shares nothing with s
func (s *CityState) Clone() *CityState {
	c := *s
	c.History = make([]TurnRecord, len(s.History))
	copy(c.History, s.History)
	if s.PendingEvent != nil {
		ev := *s.PendingEvent
		c.PendingEvent = &ev
	}
	return &c
}

// applyDelta adds stat deltas and pays cost from the budget
func (s *CityState) applyDelta(sustainability, happiness int, cost int64) {
	s.Sustainability += sustainability
	s.Happiness += happiness
	s.Budget -= cost
}

// ApplyOptions adds the combined effect of several policy options
func (s *CityState) ApplyOptions(opts ...PolicyOption) {
	var sus, hap int
	var cost int64
	for _, o := range opts {
		sus += o.SustainabilityDelta
		hap += o.HappinessDelta
		cost += o.Cost
	}
	s.applyDelta(sus, hap, cost)
}

// ApplyImpact adds the effect of an event branch
func (s *CityState) ApplyImpact(i Impact) {
	s.applyDelta(i.SustainabilityDelta, i.HappinessDelta, i.Cost)
}
