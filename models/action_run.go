package models

import (
	"encoding/json"
	"time"
)

// Values of ActionRun.Status and HookRun.Status reported by the server.
const (
	RunStatusFailed    = "failed"
	RunStatusCompleted = "completed"
)

// Response body for `GET /repositories/{repository}/actions/runs/{run_id}`.
type ActionRun struct {
	RunID     string     `json:"run_id"`
	Branch    string     `json:"branch"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	EventType string     `json:"event_type"`
	Status    string     `json:"status"`
	CommitID  string     `json:"commit_id"`
}

func NewActionRun(runID string, branch string, startTime time.Time, eventType string, status string, commitID string) *ActionRun {
	return &ActionRun{
		RunID:     runID,
		Branch:    branch,
		StartTime: startTime,
		EventType: eventType,
		Status:    status,
		CommitID:  commitID,
	}
}

// Returns the zero time when the run has not finished.
func (o *ActionRun) GetEndTime() time.Time {
	if o.EndTime == nil {
		return time.Time{}
	}
	return *o.EndTime
}

func (o *ActionRun) HasEndTime() bool {
	return o.EndTime != nil
}

func (o *ActionRun) SetEndTime(v time.Time) {
	o.EndTime = &v
}

func (o *ActionRun) Equal(other *ActionRun) bool {
	if o == nil || other == nil {
		return o == other
	}
	return o.RunID == other.RunID &&
		o.Branch == other.Branch &&
		o.StartTime.Equal(other.StartTime) &&
		equalTimePtr(o.EndTime, other.EndTime) &&
		o.EventType == other.EventType &&
		o.Status == other.Status &&
		o.CommitID == other.CommitID
}

func (o *ActionRun) Clone() *ActionRun {
	if o == nil {
		return nil
	}
	c := *o
	c.EndTime = clonePtr(o.EndTime)
	return &c
}

func (o *ActionRun) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	if err := requireFields(data, "run_id", "branch", "start_time", "event_type", "status", "commit_id"); err != nil {
		return err
	}

	type actionRun ActionRun
	var v actionRun
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	*o = ActionRun(v)
	return nil
}

// Response body for `GET /repositories/{repository}/actions/runs`.
type ActionRunList struct {
	Pagination Pagination  `json:"pagination"`
	Results    []ActionRun `json:"results"`
}

// Create a run list. A nil results slice is stored as an empty one.
func NewActionRunList(pagination Pagination, results []ActionRun) *ActionRunList {
	if results == nil {
		results = []ActionRun{}
	}
	return &ActionRunList{
		Pagination: pagination,
		Results:    results,
	}
}

func (o *ActionRunList) Equal(other *ActionRunList) bool {
	if o == nil || other == nil {
		return o == other
	}
	if !o.Pagination.Equal(&other.Pagination) {
		return false
	}
	if (o.Results == nil) != (other.Results == nil) || len(o.Results) != len(other.Results) {
		return false
	}
	for i := range o.Results {
		if !o.Results[i].Equal(&other.Results[i]) {
			return false
		}
	}
	return true
}

func (o *ActionRunList) Clone() *ActionRunList {
	if o == nil {
		return nil
	}
	c := &ActionRunList{Pagination: o.Pagination}
	if o.Results != nil {
		c.Results = make([]ActionRun, len(o.Results))
		for i := range o.Results {
			c.Results[i] = *o.Results[i].Clone()
		}
	}
	return c
}

func (o *ActionRunList) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	if err := requireFields(data, "pagination", "results"); err != nil {
		return err
	}

	type actionRunList ActionRunList
	var v actionRunList
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	*o = ActionRunList(v)
	return nil
}
