package models

import (
	"encoding/json"

	"github.com/samber/lo"
)

// Request body for `POST /repositories/{repository}/branches`.
type BranchCreation struct {
	Name   string `json:"name"`
	Source string `json:"source"`
	Force  *bool  `json:"force,omitempty"`
	// When set, the branch will not show up when listing branches by default.
	Hidden *bool `json:"hidden,omitempty"`
}

func NewBranchCreation(name string, source string) *BranchCreation {
	return &BranchCreation{
		Name:   name,
		Source: source,
	}
}

func (o *BranchCreation) GetForce() bool {
	return lo.FromPtr(o.Force)
}

func (o *BranchCreation) HasForce() bool {
	return o.Force != nil
}

func (o *BranchCreation) SetForce(v bool) {
	o.Force = &v
}

func (o *BranchCreation) GetHidden() bool {
	return lo.FromPtr(o.Hidden)
}

func (o *BranchCreation) HasHidden() bool {
	return o.Hidden != nil
}

func (o *BranchCreation) SetHidden(v bool) {
	o.Hidden = &v
}

func (o *BranchCreation) Equal(other *BranchCreation) bool {
	if o == nil || other == nil {
		return o == other
	}
	return o.Name == other.Name &&
		o.Source == other.Source &&
		equalPtr(o.Force, other.Force) &&
		equalPtr(o.Hidden, other.Hidden)
}

func (o *BranchCreation) Clone() *BranchCreation {
	if o == nil {
		return nil
	}
	return &BranchCreation{
		Name:   o.Name,
		Source: o.Source,
		Force:  clonePtr(o.Force),
		Hidden: clonePtr(o.Hidden),
	}
}

func (o *BranchCreation) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	if err := requireFields(data, "name", "source"); err != nil {
		return err
	}

	type branchCreation BranchCreation
	var v branchCreation
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	*o = BranchCreation(v)
	return nil
}
