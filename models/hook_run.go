package models

import (
	"encoding/json"
	"time"
)

// A single hook execution within an action run.
type HookRun struct {
	HookRunID string     `json:"hook_run_id"`
	Action    string     `json:"action"`
	HookID    string     `json:"hook_id"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	Status    string     `json:"status"`
}

func NewHookRun(hookRunID string, action string, hookID string, startTime time.Time, status string) *HookRun {
	return &HookRun{
		HookRunID: hookRunID,
		Action:    action,
		HookID:    hookID,
		StartTime: startTime,
		Status:    status,
	}
}

// Returns the zero time when the hook has not finished.
func (o *HookRun) GetEndTime() time.Time {
	if o.EndTime == nil {
		return time.Time{}
	}
	return *o.EndTime
}

func (o *HookRun) HasEndTime() bool {
	return o.EndTime != nil
}

func (o *HookRun) SetEndTime(v time.Time) {
	o.EndTime = &v
}

func (o *HookRun) Equal(other *HookRun) bool {
	if o == nil || other == nil {
		return o == other
	}
	return o.HookRunID == other.HookRunID &&
		o.Action == other.Action &&
		o.HookID == other.HookID &&
		o.StartTime.Equal(other.StartTime) &&
		equalTimePtr(o.EndTime, other.EndTime) &&
		o.Status == other.Status
}

func (o *HookRun) Clone() *HookRun {
	if o == nil {
		return nil
	}
	c := *o
	c.EndTime = clonePtr(o.EndTime)
	return &c
}

func (o *HookRun) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	if err := requireFields(data, "hook_run_id", "action", "hook_id", "start_time", "status"); err != nil {
		return err
	}

	type hookRun HookRun
	var v hookRun
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	*o = HookRun(v)
	return nil
}

// Response body for `GET /repositories/{repository}/actions/runs/{run_id}/hooks`.
type HookRunList struct {
	Pagination Pagination `json:"pagination"`
	Results    []HookRun  `json:"results"`
}

// Create a hook run list. A nil results slice is stored as an empty one.
func NewHookRunList(pagination Pagination, results []HookRun) *HookRunList {
	if results == nil {
		results = []HookRun{}
	}
	return &HookRunList{
		Pagination: pagination,
		Results:    results,
	}
}

func (o *HookRunList) Equal(other *HookRunList) bool {
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

func (o *HookRunList) Clone() *HookRunList {
	if o == nil {
		return nil
	}
	c := &HookRunList{Pagination: o.Pagination}
	if o.Results != nil {
		c.Results = make([]HookRun, len(o.Results))
		for i := range o.Results {
			c.Results[i] = *o.Results[i].Clone()
		}
	}
	return c
}

func (o *HookRunList) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	if err := requireFields(data, "pagination", "results"); err != nil {
		return err
	}

	type hookRunList HookRunList
	var v hookRunList
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	*o = HookRunList(v)
	return nil
}
