package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const actionRunListPayload = `{
  "pagination": {"has_more": true, "next_offset": "run-2", "results": 2, "max_per_page": 2},
  "results": [
    {
      "run_id": "run-1",
      "branch": "main",
      "start_time": "2023-05-01T10:00:00Z",
      "end_time": "2023-05-01T10:00:05Z",
      "event_type": "pre-commit",
      "status": "completed",
      "commit_id": "c0ffee"
    },
    {
      "run_id": "run-2",
      "branch": "main",
      "start_time": "2023-05-01T11:00:00+02:00",
      "event_type": "pre-merge",
      "status": "failed",
      "commit_id": "deadbeef",
      "hooks_count": 3
    }
  ]
}`

func TestActionRunListDecode(t *testing.T) {
	var list ActionRunList
	require.NoError(t, json.Unmarshal([]byte(actionRunListPayload), &list))

	assert.True(t, list.Pagination.HasMore)
	assert.Equal(t, "run-2", list.Pagination.NextOffset)
	require.Len(t, list.Results, 2)

	first := list.Results[0]
	assert.True(t, first.HasEndTime())
	assert.Equal(t, 5*time.Second, first.GetEndTime().Sub(first.StartTime))
	assert.Equal(t, RunStatusCompleted, first.Status)

	second := list.Results[1]
	assert.False(t, second.HasEndTime())
	assert.True(t, second.GetEndTime().IsZero())
	assert.True(t, second.StartTime.Equal(time.Date(2023, 5, 1, 9, 0, 0, 0, time.UTC)))
	assert.Equal(t, RunStatusFailed, second.Status)
}

func TestActionRunListRoundTrip(t *testing.T) {
	var list ActionRunList
	require.NoError(t, json.Unmarshal([]byte(actionRunListPayload), &list))

	out, err := json.Marshal(&list)
	require.NoError(t, err)

	var got ActionRunList
	require.NoError(t, json.Unmarshal(out, &got))
	assert.True(t, list.Equal(&got))
}

func TestActionRunMissingRequired(t *testing.T) {
	payload := `{"pagination": {"has_more": false, "next_offset": "", "results": 1, "max_per_page": 100},
		"results": [{"run_id": "run-1", "branch": "main", "start_time": "2023-05-01T10:00:00Z", "status": "completed", "commit_id": "c"}]}`

	var list ActionRunList
	err := json.Unmarshal([]byte(payload), &list)
	assert.ErrorIs(t, err, ErrMissingRequiredField)
	assert.Contains(t, err.Error(), "event_type")
}

func TestActionRunOmitsEndTime(t *testing.T) {
	start := time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC)
	run := NewActionRun("run-1", "main", start, "pre-commit", RunStatusCompleted, "c0ffee")

	out, err := json.Marshal(run)
	require.NoError(t, err)
	assert.JSONEq(t, `{"run_id":"run-1","branch":"main","start_time":"2023-05-01T10:00:00Z","event_type":"pre-commit","status":"completed","commit_id":"c0ffee"}`, string(out))

	run.SetEndTime(start.Add(time.Minute))
	out, err = json.Marshal(run)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"end_time":"2023-05-01T10:01:00Z"`)
}

func TestActionRunListCloneAndEqual(t *testing.T) {
	start := time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC)
	list := NewActionRunList(*NewPagination(false, "", 1, 100), []ActionRun{
		*NewActionRun("run-1", "main", start, "pre-commit", RunStatusCompleted, "c0ffee"),
	})

	c := list.Clone()
	require.True(t, list.Equal(c))

	c.Results[0].SetEndTime(start)
	assert.False(t, list.Results[0].HasEndTime())
	assert.False(t, list.Equal(c))

	assert.False(t, NewActionRunList(Pagination{}, nil).Equal(&ActionRunList{}))
	assert.True(t, NewActionRunList(Pagination{}, nil).Equal(NewActionRunList(Pagination{}, []ActionRun{})))
}

func TestHookRunListDecode(t *testing.T) {
	payload := `{
	  "pagination": {"has_more": false, "next_offset": "", "results": 1, "max_per_page": 100},
	  "results": [{"hook_run_id": "h1", "action": "check_commits", "hook_id": "validate", "start_time": "2023-05-01T10:00:00Z", "status": "completed"}]
	}`

	var list HookRunList
	require.NoError(t, json.Unmarshal([]byte(payload), &list))
	require.Len(t, list.Results, 1)
	assert.Equal(t, "check_commits", list.Results[0].Action)
	assert.False(t, list.Results[0].HasEndTime())

	c := list.Clone()
	require.True(t, list.Equal(c))
	c.Results[0].Status = RunStatusFailed
	assert.Equal(t, RunStatusCompleted, list.Results[0].Status)
}

func TestRunListNullPagination(t *testing.T) {
	var runs ActionRunList
	require.NoError(t, json.Unmarshal([]byte(`{"pagination":null,"results":[]}`), &runs))
	assert.Equal(t, Pagination{}, runs.Pagination)
	assert.Empty(t, runs.Results)

	var hooks HookRunList
	require.NoError(t, json.Unmarshal([]byte(`{"pagination":null,"results":[]}`), &hooks))
	assert.Equal(t, Pagination{}, hooks.Pagination)
}

func TestUnmarshalNullIsNoOp(t *testing.T) {
	p := NewPagination(true, "next", 1, 100)
	require.NoError(t, json.Unmarshal([]byte(`null`), p))
	assert.True(t, p.Equal(NewPagination(true, "next", 1, 100)))

	tag := NewTagCreation("v1", "main")
	require.NoError(t, json.Unmarshal([]byte(` null `), tag))
	assert.True(t, tag.Equal(NewTagCreation("v1", "main")))
}
