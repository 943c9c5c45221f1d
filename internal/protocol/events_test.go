package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardData_BoardText(t *testing.T) {
	t.Run("nil receiver", func(t *testing.T) {
		var data *BoardData
		assert.Empty(t, data.BoardText())
	})

	t.Run("missing board", func(t *testing.T) {
		assert.Empty(t, (&BoardData{}).BoardText())
	})

	t.Run("JSON string is unquoted", func(t *testing.T) {
		data := &BoardData{Board: json.RawMessage(`"r n b q k b n r\np p p p p p p p"`)}
		assert.Equal(t, "r n b q k b n r\np p p p p p p p", data.BoardText())
	})

	t.Run("non-string payload passes through verbatim", func(t *testing.T) {
		data := &BoardData{Board: json.RawMessage(`{"fen":"8/8/8/8/8/8/8/8"}`)}
		assert.Equal(t, `{"fen":"8/8/8/8/8/8/8/8"}`, data.BoardText())
	})
}

func TestHasValue(t *testing.T) {
	assert.False(t, HasValue(nil))
	assert.False(t, HasValue(json.RawMessage(`null`)))
	assert.False(t, HasValue(json.RawMessage(`false`)))
	assert.True(t, HasValue(json.RawMessage(`true`)))
	assert.True(t, HasValue(json.RawMessage(`"alice"`)))
}

func TestEvent_DecodeMoveResult(t *testing.T) {
	// Given: a move_result envelope with a full strike payload
	line := `{"type":"move_result","strike":{"strike_number":3,"color":"white","piece":"knight","case_src":"f3","case_dest":"h4","is_capture":true,"captured_color":"black","captured_piece":"queen"}}`

	var event Event
	require.NoError(t, json.Unmarshal([]byte(line), &event))

	require.Equal(t, EventMoveResult, event.Type)
	require.NotNil(t, event.Strike)
	assert.Equal(t, 3, event.Strike.StrikeNumber)
	assert.Equal(t, "h4", event.Strike.CaseDest)
	assert.True(t, event.Strike.IsCapture)
	assert.Equal(t, "queen", event.Strike.CapturedPiece)
}

func TestCommands_WireEncoding(t *testing.T) {
	t.Run("join omits single_player when false", func(t *testing.T) {
		encoded, err := json.Marshal(NewJoinGame("white", false))
		require.NoError(t, err)
		assert.JSONEq(t, `{"command":"join_game","color":"white"}`, string(encoded))
	})

	t.Run("join carries single_player when set", func(t *testing.T) {
		encoded, err := json.Marshal(NewJoinGame("black", true))
		require.NoError(t, err)
		assert.JSONEq(t, `{"command":"join_game","color":"black","single_player":true}`, string(encoded))
	})

	t.Run("move carries both squares", func(t *testing.T) {
		encoded, err := json.Marshal(NewMakeMove("e2", "e4"))
		require.NoError(t, err)
		assert.JSONEq(t, `{"command":"make_move","from":"e2","to":"e4"}`, string(encoded))
	})
}
