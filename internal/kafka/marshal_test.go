package kafka

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustMarshal(t *testing.T) {
	type payload struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	var got payload
	require.NoError(t, json.Unmarshal(MustMarshal(payload{ID: "p1", Status: "selesai"}), &got))
	assert.Equal(t, payload{ID: "p1", Status: "selesai"}, got)
}

func TestMustMarshalPanicsOnUnsupported(t *testing.T) {
	assert.Panics(t, func() { MustMarshal(make(chan int)) })
}
