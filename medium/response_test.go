package medium

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseOk(t *testing.T) {
	var r Response[User]
	require.NoError(t, json.Unmarshal([]byte(`{"data":{"id":"x"}}`), &r))
	require.NotNil(t, r.Ok)
	assert.Nil(t, r.Err)
	assert.Equal(t, "x", r.Ok.ID)
}

func TestResponseErr(t *testing.T) {
	var r Response[User]
	require.NoError(t, json.Unmarshal([]byte(`{"errors":[{"message":"nope","code":401}]}`), &r))
	assert.Nil(t, r.Ok)
	require.NotNil(t, r.Err)
	assert.Equal(t, &APIError{Message: "nope", Code: 401}, r.Err.FirstError())
}

func TestResponseNeitherShape(t *testing.T) {
	var r Response[User]
	assert.Error(t, json.Unmarshal([]byte(`{"something":"else"}`), &r))
	assert.Error(t, json.Unmarshal([]byte(`{"data":null}`), &r))
	assert.Error(t, json.Unmarshal([]byte(`{"errors":[]}`), &r))
	assert.Error(t, json.Unmarshal([]byte(`[1,2,3]`), &r))
}

func TestResponseDataWrongType(t *testing.T) {
	var r Response[User]
	assert.Error(t, json.Unmarshal([]byte(`{"data":"a string"}`), &r))
}

func TestParseStatus(t *testing.T) {
	for in, want := range map[string]Status{
		"public":   Public,
		"PUBLIC":   Public,
		"Draft":    Draft,
		" draft ":  Draft,
		"UnListed": Unlisted,
	} {
		got, err := ParseStatus(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseStatus("private")
	assert.Error(t, err)
}

func TestStatusMarshalsLowercase(t *testing.T) {
	for _, s := range []string{"PUBLIC", "Draft", "unLISTED"} {
		status, err := ParseStatus(s)
		require.NoError(t, err)
		buf, err := json.Marshal(&CreatePostRequest{PublishStatus: status})
		require.NoError(t, err)
		var m map[string]interface{}
		require.NoError(t, json.Unmarshal(buf, &m))
		assert.Contains(t, []string{"public", "draft", "unlisted"}, m["publishStatus"])
	}
}
