package models

import (
	"encoding/json"

	"github.com/samber/lo"
)

// Make tag ID point at this REF.
type TagCreation struct {
	// ID of tag to create
	ID string `json:"id"`
	// the commit to tag
	Ref   string `json:"ref"`
	Force *bool  `json:"force,omitempty"`
}

// Make tag ID point at this REF.
func NewTagCreation(id string, ref string) *TagCreation {
	return &TagCreation{
		ID:  id,
		Ref: ref,
	}
}

func (o *TagCreation) GetForce() bool {
	return lo.FromPtr(o.Force)
}

func (o *TagCreation) GetForceOk() (bool, bool) {
	return o.GetForce(), o.HasForce()
}

func (o *TagCreation) HasForce() bool {
	return o.Force != nil
}

func (o *TagCreation) SetForce(v bool) {
	o.Force = &v
}

func (o *TagCreation) Equal(other *TagCreation) bool {
	if o == nil || other == nil {
		return o == other
	}
	return o.ID == other.ID &&
		o.Ref == other.Ref &&
		equalPtr(o.Force, other.Force)
}

func (o *TagCreation) Clone() *TagCreation {
	if o == nil {
		return nil
	}
	return &TagCreation{
		ID:    o.ID,
		Ref:   o.Ref,
		Force: clonePtr(o.Force),
	}
}

func (o *TagCreation) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	if err := requireFields(data, "id", "ref"); err != nil {
		return err
	}

	type tagCreation TagCreation
	var v tagCreation
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	*o = TagCreation(v)
	return nil
}
