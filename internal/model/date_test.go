package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/dangerclosesec/sarpa/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    model.Date
		wantErr bool
	}{
		{name: "calendar date", input: "2024-01-15", want: model.DateOf(2024, time.January, 15)},
		{name: "timestamp truncated", input: "2024-03-10T22:30:00Z", want: model.DateOf(2024, time.March, 10)},
		{name: "timestamp with offset", input: "2024-03-10T23:30:00-05:00", want: model.DateOf(2024, time.March, 11)},
		{name: "garbage", input: "next tuesday", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := model.ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s want %s", got, tt.want)
		})
	}
}

func TestDateJSON(t *testing.T) {
	type payload struct {
		Due  model.Date  `json:"due"`
		Stop *model.Date `json:"stop"`
	}

	b, err := json.Marshal(payload{Due: model.DateOf(2024, time.February, 29)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"due":"2024-02-29","stop":null}`, string(b))

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"due":"2024-05-01T08:00:00Z","stop":"2024-12-31"}`), &p))
	assert.Equal(t, "2024-05-01", p.Due.String())
	require.NotNil(t, p.Stop)
	assert.Equal(t, "2024-12-31", p.Stop.String())
}

func TestDateScan(t *testing.T) {
	var d model.Date

	require.NoError(t, d.Scan(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-06-01", d.String())

	require.NoError(t, d.Scan("2024-06-02"))
	assert.Equal(t, "2024-06-02", d.String())

	require.NoError(t, d.Scan([]byte("2024-06-03 00:00:00")))
	assert.Equal(t, "2024-06-03", d.String())

	assert.Error(t, d.Scan(42))
}
