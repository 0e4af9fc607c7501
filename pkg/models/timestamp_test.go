package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	want := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "RFC 3339", input: `"2024-03-15T10:30:00Z"`, want: want},
		{name: "RFC 3339 with offset", input: `"2024-03-15T12:30:00+02:00"`, want: want},
		{name: "fractional seconds", input: `"2024-03-15T10:30:00.000000Z"`, want: want},
		{name: "zone-less datetime", input: `"2024-03-15 10:30:00"`, want: want},
		{name: "unix seconds", input: `1710498600`, want: want},
		{name: "null", input: `null`},
		{name: "empty string", input: `""`},
		{name: "garbage", input: `"not a time"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			err := json.Unmarshal([]byte(tt.input), &ts)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(ts.Time), "got %s", ts.Time)
		})
	}
}

func TestTimestamp_MarshalJSON(t *testing.T) {
	ts := NewTimestamp(time.Date(2024, 3, 15, 12, 30, 0, 0, time.FixedZone("CEST", 2*60*60)))

	b, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.JSONEq(t, `"2024-03-15T10:30:00Z"`, string(b))

	b, err = json.Marshal(Timestamp{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}

func TestTimestamp_String(t *testing.T) {
	assert.Equal(t, "", Timestamp{}.String())
	assert.Equal(t, "2024-03-15T10:30:00Z",
		NewTimestamp(time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)).String())
}
