package taskapimodels

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseUpdate(t *testing.T) {
	t.Run("unknown field is rejected", func(t *testing.T) {
		_, err := ParseUpdate([]byte(`{"title":"valid title","created_by":"x"}`))
		require.ErrorIs(t, err, ErrInvalidPayload)
	})

	t.Run("empty patch is rejected", func(t *testing.T) {
		_, err := ParseUpdate([]byte(`{}`))
		require.ErrorIs(t, err, ErrInvalidPayload)
		_, err = ParseUpdate([]byte(`not json`))
		require.ErrorIs(t, err, ErrInvalidPayload)
	})

	t.Run("field validation", func(t *testing.T) {
		cases := []string{
			`{"title":"ab"}`,
			`{"title":null}`,
			`{"status":"done"}`,
			`{"priority":"asap"}`,
			`{"assigned_to":"not-a-uuid"}`,
			`{"rating":6}`,
			`{"rating":0}`,
			`{"due_date":"tomorrow"}`,
			`{"review_comment":"` + strings.Repeat("a", 2001) + `"}`,
		}
		for _, body := range cases {
			_, err := ParseUpdate([]byte(body))
			require.ErrorIs(t, err, ErrInvalidPayload, body)
		}
	})

	t.Run("valid patch builds the update map", func(t *testing.T) {
		upd, err := ParseUpdate([]byte(`{"status":"completed","rating":5,"description":null}`))
		require.NoError(t, err)
		require.Equal(t, "completed", upd["status"])
		require.NotNil(t, upd["rating"])
		require.Contains(t, upd, "description")

		desc, ok := upd["description"].(*string)
		require.True(t, ok)
		require.Nil(t, desc)
	})

	t.Run("completion does not require a rating", func(t *testing.T) {
		upd, err := ParseUpdate([]byte(`{"status":"completed"}`))
		require.NoError(t, err)
		require.Len(t, upd, 1)
	})
}

func TestFilter(t *testing.T) {
	t.Run("search text strips commas and caps length", func(t *testing.T) {
		require.Equal(t, "test value", Filter{Query: " test,value "}.SearchText())
		require.Equal(t, "", Filter{Query: "   "}.SearchText())

		long := strings.Repeat("x", 300)
		require.Len(t, Filter{Query: long}.SearchText(), 200)
	})

	t.Run("has kinds", func(t *testing.T) {
		require.Nil(t, Filter{}.HasKinds())
		require.Equal(t, []string{"comments", "attachments"}, Filter{Has: "comments, attachments"}.HasKinds())
		require.Equal(t, []string{"comments"}, Filter{Has: ",comments,"}.HasKinds())
	})
}
