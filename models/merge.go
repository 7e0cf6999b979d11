package models

import (
	"encoding/json"

	"github.com/samber/lo"
)

// Known values of Merge.Strategy. Leaving the strategy absent makes the merge
// fail on conflict. Other values are passed through untouched.
const (
	MergeStrategyDestWins   = "dest-wins"
	MergeStrategySourceWins = "source-wins"
)

// Request body for `POST /repositories/{repository}/refs/{sourceRef}/merge/{destinationBranch}`.
type Merge struct {
	Message  *string            `json:"message,omitempty"`
	Metadata *map[string]string `json:"metadata,omitempty"`
	// In case of a merge conflict, this option will force the merge process to
	// automatically favor changes from the dest branch ('dest-wins') or from the
	// source branch ('source-wins'). In case no selection is made, the merge
	// process will fail in case of a conflict.
	Strategy *string `json:"strategy,omitempty"`
	Force    *bool   `json:"force,omitempty"`
}

// Create a merge request with every field absent.
func NewMerge() *Merge {
	return &Merge{}
}

// Identical to NewMerge; the schema declares no defaults.
func NewMergeWithDefaults() *Merge {
	return &Merge{}
}

func (o *Merge) GetMessage() string {
	return lo.FromPtr(o.Message)
}

func (o *Merge) GetMessageOk() (string, bool) {
	return o.GetMessage(), o.HasMessage()
}

func (o *Merge) HasMessage() bool {
	return o.Message != nil
}

func (o *Merge) SetMessage(v string) {
	o.Message = &v
}

// Returns nil when metadata is absent.
func (o *Merge) GetMetadata() map[string]string {
	if o.Metadata == nil {
		return nil
	}
	return *o.Metadata
}

func (o *Merge) GetMetadataOk() (map[string]string, bool) {
	return o.GetMetadata(), o.HasMetadata()
}

func (o *Merge) HasMetadata() bool {
	return o.Metadata != nil
}

// Set metadata. A nil map is stored as an empty (present) map.
func (o *Merge) SetMetadata(v map[string]string) {
	if v == nil {
		v = map[string]string{}
	}
	o.Metadata = &v
}

func (o *Merge) GetStrategy() string {
	return lo.FromPtr(o.Strategy)
}

func (o *Merge) GetStrategyOk() (string, bool) {
	return o.GetStrategy(), o.HasStrategy()
}

func (o *Merge) HasStrategy() bool {
	return o.Strategy != nil
}

func (o *Merge) SetStrategy(v string) {
	o.Strategy = &v
}

func (o *Merge) GetForce() bool {
	return lo.FromPtr(o.Force)
}

func (o *Merge) GetForceOk() (bool, bool) {
	return o.GetForce(), o.HasForce()
}

func (o *Merge) HasForce() bool {
	return o.Force != nil
}

func (o *Merge) SetForce(v bool) {
	o.Force = &v
}

func (o *Merge) Equal(other *Merge) bool {
	if o == nil || other == nil {
		return o == other
	}
	return equalPtr(o.Message, other.Message) &&
		equalMapPtr(o.Metadata, other.Metadata) &&
		equalPtr(o.Strategy, other.Strategy) &&
		equalPtr(o.Force, other.Force)
}

func (o *Merge) Clone() *Merge {
	if o == nil {
		return nil
	}
	return &Merge{
		Message:  clonePtr(o.Message),
		Metadata: cloneMapPtr(o.Metadata),
		Strategy: clonePtr(o.Strategy),
		Force:    clonePtr(o.Force),
	}
}

// A present but nil metadata map is encoded as an empty object.
func (o Merge) MarshalJSON() ([]byte, error) {
	type merge Merge
	v := merge(o)
	v.Metadata = presentMap(o.Metadata)
	return json.Marshal(v)
}
