package models

import (
	"encoding/json"

	"github.com/samber/lo"
)

// Request body for `POST /repositories/{repository}/branches/{branch}/commits`.
type CommitCreation struct {
	Message  string             `json:"message"`
	Metadata *map[string]string `json:"metadata,omitempty"`
	// set date to override creation date in the commit (Unix Epoch in seconds)
	Date       *int64 `json:"date,omitempty"`
	AllowEmpty *bool  `json:"allow_empty,omitempty"`
	Force      *bool  `json:"force,omitempty"`
}

func NewCommitCreation(message string) *CommitCreation {
	return &CommitCreation{
		Message: message,
	}
}

// Returns nil when metadata is absent.
func (o *CommitCreation) GetMetadata() map[string]string {
	if o.Metadata == nil {
		return nil
	}
	return *o.Metadata
}

func (o *CommitCreation) HasMetadata() bool {
	return o.Metadata != nil
}

// Set metadata. A nil map is stored as an empty (present) map.
func (o *CommitCreation) SetMetadata(v map[string]string) {
	if v == nil {
		v = map[string]string{}
	}
	o.Metadata = &v
}

func (o *CommitCreation) GetDate() int64 {
	return lo.FromPtr(o.Date)
}

func (o *CommitCreation) HasDate() bool {
	return o.Date != nil
}

func (o *CommitCreation) SetDate(v int64) {
	o.Date = &v
}

func (o *CommitCreation) GetAllowEmpty() bool {
	return lo.FromPtr(o.AllowEmpty)
}

func (o *CommitCreation) HasAllowEmpty() bool {
	return o.AllowEmpty != nil
}

func (o *CommitCreation) SetAllowEmpty(v bool) {
	o.AllowEmpty = &v
}

func (o *CommitCreation) GetForce() bool {
	return lo.FromPtr(o.Force)
}

func (o *CommitCreation) HasForce() bool {
	return o.Force != nil
}

func (o *CommitCreation) SetForce(v bool) {
	o.Force = &v
}

func (o *CommitCreation) Equal(other *CommitCreation) bool {
	if o == nil || other == nil {
		return o == other
	}
	return o.Message == other.Message &&
		equalMapPtr(o.Metadata, other.Metadata) &&
		equalPtr(o.Date, other.Date) &&
		equalPtr(o.AllowEmpty, other.AllowEmpty) &&
		equalPtr(o.Force, other.Force)
}

func (o *CommitCreation) Clone() *CommitCreation {
	if o == nil {
		return nil
	}
	return &CommitCreation{
		Message:    o.Message,
		Metadata:   cloneMapPtr(o.Metadata),
		Date:       clonePtr(o.Date),
		AllowEmpty: clonePtr(o.AllowEmpty),
		Force:      clonePtr(o.Force),
	}
}

// A present but nil metadata map is encoded as an empty object.
func (o CommitCreation) MarshalJSON() ([]byte, error) {
	type commitCreation CommitCreation
	v := commitCreation(o)
	v.Metadata = presentMap(o.Metadata)
	return json.Marshal(v)
}

func (o *CommitCreation) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	if err := requireFields(data, "message"); err != nil {
		return err
	}

	type commitCreation CommitCreation
	var v commitCreation
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	*o = CommitCreation(v)
	return nil
}
