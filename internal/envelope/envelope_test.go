package envelope

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type villa struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Occupancy int    `json:"occupancy"`
}

func TestResponse_WireShape(t *testing.T) {
	tests := []struct {
		name string
		resp Response
		want string
	}{
		{
			name: "entity",
			resp: OK(http.StatusOK, villa{ID: 1, Name: "Pool Villa", Occupancy: 4}),
			want: `{"statusCode":200,"isSuccess":true,"errorMessages":[],"result":{"id":1,"name":"Pool Villa","occupancy":4}}`,
		},
		{
			name: "list",
			resp: List(http.StatusOK, []villa{{ID: 1, Name: "Pool Villa"}}),
			want: `{"statusCode":200,"isSuccess":true,"errorMessages":[],"result":[{"id":1,"name":"Pool Villa","occupancy":0}]}`,
		},
		{
			name: "nil list",
			resp: List[villa](http.StatusOK, nil),
			want: `{"statusCode":200,"isSuccess":true,"errorMessages":[],"result":[]}`,
		},
		{
			name: "empty",
			resp: Empty(http.StatusNoContent),
			want: `{"statusCode":204,"isSuccess":true,"errorMessages":[],"result":null}`,
		},
		{
			name: "failure",
			resp: Fail(http.StatusNotFound, "villa not found"),
			want: `{"statusCode":404,"isSuccess":false,"errorMessages":["villa not found"],"result":null}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.resp)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(b))
		})
	}
}

func TestFail_AlwaysCarriesAMessage(t *testing.T) {
	r := Fail(http.StatusBadRequest)
	assert.False(t, r.IsSuccess)
	assert.Equal(t, []string{"Bad Request"}, r.ErrorMessages)
	assert.True(t, r.Result.IsAbsent())

	r = Fail(http.StatusBadRequest, "", "name is required")
	assert.Equal(t, []string{"name is required"}, r.ErrorMessages)
}

func TestOK_NilEntityIsAbsent(t *testing.T) {
	r := OK(http.StatusOK, nil)
	assert.Equal(t, Absent, r.Result.Kind())
}

func TestResponse_Err(t *testing.T) {
	assert.NoError(t, OK(http.StatusOK, villa{}).Err())

	err := Fail(http.StatusBadRequest, "Villa already exists!", "name too long").Err()
	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, http.StatusBadRequest, e.StatusCode)
	assert.Equal(t, "Villa already exists!; name too long", err.Error())

	assert.Equal(t, "Not Found", (&Error{StatusCode: http.StatusNotFound}).Error())
}

func TestPayload_RoundTripDecode(t *testing.T) {
	t.Run("entity", func(t *testing.T) {
		var r Response
		require.NoError(t, json.Unmarshal([]byte(`{"statusCode":200,"isSuccess":true,"errorMessages":[],"result":{"id":3,"name":"Pool Villa","occupancy":6}}`), &r))

		assert.Equal(t, Entity, r.Result.Kind())
		v, err := Decode[villa](r.Result)
		require.NoError(t, err)
		assert.Equal(t, villa{ID: 3, Name: "Pool Villa", Occupancy: 6}, v)
	})

	t.Run("list", func(t *testing.T) {
		var r Response
		require.NoError(t, json.Unmarshal([]byte(`{"statusCode":200,"isSuccess":true,"errorMessages":null,"result":[{"id":1},{"id":2}]}`), &r))

		assert.Equal(t, Collection, r.Result.Kind())
		vs, err := Decode[[]villa](r.Result)
		require.NoError(t, err)
		assert.Len(t, vs, 2)
	})

	t.Run("absent", func(t *testing.T) {
		var r Response
		require.NoError(t, json.Unmarshal([]byte(`{"statusCode":404,"isSuccess":false,"errorMessages":["villa not found"],"result":null}`), &r))

		assert.True(t, r.Result.IsAbsent())
		_, err := Decode[villa](r.Result)
		assert.ErrorIs(t, err, ErrAbsent)
	})

	t.Run("missing result field", func(t *testing.T) {
		var r Response
		require.NoError(t, json.Unmarshal([]byte(`{"statusCode":204,"isSuccess":true}`), &r))
		assert.True(t, r.Result.IsAbsent())
	})

	t.Run("wrong shape", func(t *testing.T) {
		var r Response
		require.NoError(t, json.Unmarshal([]byte(`{"result":[{"id":1}]}`), &r))

		_, err := Decode[villa](r.Result)
		assert.ErrorContains(t, err, "decode list result")
	})

	t.Run("produced payload decodes into another shape", func(t *testing.T) {
		type summary struct {
			Name string `json:"name"`
		}
		s, err := Decode[summary](OK(http.StatusOK, villa{ID: 1, Name: "Pool Villa"}).Result)
		require.NoError(t, err)
		assert.Equal(t, "Pool Villa", s.Name)
	})

	t.Run("re-encoding keeps raw result", func(t *testing.T) {
		in := `{"statusCode":200,"isSuccess":true,"errorMessages":[],"result":{"id":9}}`
		var r Response
		require.NoError(t, json.Unmarshal([]byte(in), &r))
		out, err := json.Marshal(r)
		require.NoError(t, err)
		assert.JSONEq(t, in, string(out))
	})
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "entity", Entity.String())
	assert.Equal(t, "list", Collection.String())
	assert.Equal(t, "absent", Absent.String())
}
