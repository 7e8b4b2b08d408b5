package result

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID string `json:"id"`
}

func TestResult_SuccessCarriesPayload(t *testing.T) {
	res := Success("Items found successfully", []item{{ID: "a"}})

	assert.True(t, res.OK)
	assert.True(t, res.HasPayload())
	assert.Equal(t, ReasonNone, res.Reason())

	data, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true,"message":"Items found successfully","payload":[{"id":"a"}]}`, string(data))
}

func TestResult_EmptySliceStillSerialized(t *testing.T) {
	res := Success("Items found successfully", []item{})

	data, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true,"message":"Items found successfully","payload":[]}`, string(data))
}

func TestResult_DoneHasNoPayload(t *testing.T) {
	res := Done[*item]("Item deleted successfully")

	assert.True(t, res.OK)
	assert.False(t, res.HasPayload())
	assert.Nil(t, res.Payload)

	data, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true,"message":"Item deleted successfully"}`, string(data))
}

func TestResult_Failures(t *testing.T) {
	tests := []struct {
		name   string
		res    Result[*item]
		reason Reason
	}{
		{"invalid", Invalid[*item]("Invalid input"), ReasonInvalid},
		{"not found", NotFound[*item]("Item not found"), ReasonNotFound},
		{"conflict", Conflict[*item]("Item already in use"), ReasonConflict},
		{"internal", Internal[*item]("Failed to create item"), ReasonInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, tt.res.OK)
			assert.False(t, tt.res.HasPayload())
			assert.Equal(t, tt.reason, tt.res.Reason())

			data, err := json.Marshal(tt.res)
			require.NoError(t, err)
			assert.NotContains(t, string(data), "payload")
		})
	}
}

func TestResult_UnmarshalRoundTrip(t *testing.T) {
	var res Result[[]item]
	require.NoError(t, json.Unmarshal([]byte(`{"ok":true,"message":"m","payload":[{"id":"x"}]}`), &res))

	assert.True(t, res.OK)
	assert.True(t, res.HasPayload())
	assert.Equal(t, []item{{ID: "x"}}, res.Payload)

	var failed Result[*item]
	require.NoError(t, json.Unmarshal([]byte(`{"ok":false,"message":"Item not found"}`), &failed))
	assert.False(t, failed.HasPayload())
	assert.Nil(t, failed.Payload)
}

func TestNoun_Messages(t *testing.T) {
	n := Noun{Singular: "Post reaction", Plural: "Post reactions"}

	assert.Equal(t, "Post reaction not found", n.NotFound())
	assert.Equal(t, "Post reaction found successfully", n.Found())
	assert.Equal(t, "Post reactions found successfully", n.FoundMany())
	assert.Equal(t, "Post reaction created successfully", n.Created())
	assert.Equal(t, "Post reaction updated successfully", n.Updated())
	assert.Equal(t, "Post reaction deleted successfully", n.Deleted())
	assert.Equal(t, "Failed to create post reaction", n.Failed("create"))
	assert.Equal(t, "Failed to list post reactions", n.FailedMany("list"))
}
