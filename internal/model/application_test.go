package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONProfileSnapshotRoundTrip(t *testing.T) {
	snap := JSONProfileSnapshot{Data: &ProfileSnapshot{
		User:      SnapshotUser{ID: 7, Email: "r@example.com"},
		ProfileID: 3,
		ProgramID: 12,
	}}

	v, err := snap.Value()
	require.NoError(t, err)

	var got JSONProfileSnapshot
	require.NoError(t, got.Scan(v))
	require.NotNil(t, got.Data)
	assert.Equal(t, uint(7), got.Data.User.ID)
	assert.Equal(t, "r@example.com", got.Data.User.Email)
	assert.Equal(t, uint(3), got.Data.ProfileID)
	assert.Equal(t, uint(12), got.Data.ProgramID)
}

func TestJSONProfileSnapshotNil(t *testing.T) {
	var snap JSONProfileSnapshot
	v, err := snap.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	var got JSONProfileSnapshot
	require.NoError(t, got.Scan(nil))
	assert.Nil(t, got.Data)

	b, err := json.Marshal(snap)
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}

func TestJSONProfileSnapshotSerializesFlat(t *testing.T) {
	snap := JSONProfileSnapshot{Data: &ProfileSnapshot{
		User:      SnapshotUser{ID: 1, Email: "a@b.c"},
		ProfileID: 2,
		ProgramID: 3,
	}}
	b, err := json.Marshal(snap)
	require.NoError(t, err)
	assert.JSONEq(t, `{"user":{"id":1,"email":"a@b.c"},"profile_id":2,"program_id":3}`, string(b))
}
