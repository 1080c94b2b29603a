package graphql_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/filterql/contrib/graphql"
)

func TestDateScalar(t *testing.T) {
	day := time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	graphql.MarshalDate(day).MarshalGQL(&buf)
	assert.Equal(t, `"2024-03-17"`, buf.String())

	parsed, err := graphql.UnmarshalDate("2024-03-17")
	require.NoError(t, err)
	assert.True(t, day.Equal(parsed))

	// Datetime input is accepted too, matching runtime operand coercion.
	parsed, err = graphql.UnmarshalDate("2024-03-17 08:30:00")
	require.NoError(t, err)
	assert.Equal(t, 8, parsed.Hour())

	_, err = graphql.UnmarshalDate(20240317)
	assert.EqualError(t, err, "graphql: Date must be a string, got int")

	_, err = graphql.UnmarshalDate("17/03/2024")
	assert.Error(t, err)
}

func TestDateTimeScalar(t *testing.T) {
	at := time.Date(2024, 3, 17, 8, 30, 0, 0, time.UTC)

	var buf bytes.Buffer
	graphql.MarshalDateTime(at).MarshalGQL(&buf)
	assert.Equal(t, `"2024-03-17 08:30:00"`, buf.String())

	parsed, err := graphql.UnmarshalDateTime("2024-03-17 08:30:00")
	require.NoError(t, err)
	assert.True(t, at.Equal(parsed))

	// Bare dates coerce to midnight.
	parsed, err = graphql.UnmarshalDateTime("2024-03-17")
	require.NoError(t, err)
	assert.True(t, parsed.Equal(time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC)))

	_, err = graphql.UnmarshalDateTime(nil)
	assert.EqualError(t, err, "graphql: DateTime must be a string, got <nil>")
}

func TestUUIDScalar(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	var buf bytes.Buffer
	graphql.MarshalUUID(id).MarshalGQL(&buf)
	assert.Equal(t, `"6ba7b810-9dad-11d1-80b4-00c04fd430c8"`, buf.String())

	parsed, err := graphql.UnmarshalUUID("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	parsed, err = graphql.UnmarshalUUID([]byte("6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = graphql.UnmarshalUUID(42)
	assert.EqualError(t, err, "graphql: UUID must be a string, got int")

	_, err = graphql.UnmarshalUUID("not-a-uuid")
	assert.Error(t, err)
}

func TestJSONScalar(t *testing.T) {
	var buf bytes.Buffer
	graphql.MarshalJSON(map[string]any{"tier": "gold", "count": 2}).MarshalGQL(&buf)
	assert.JSONEq(t, `{"tier":"gold","count":2}`, buf.String())

	m, err := graphql.UnmarshalJSON(map[string]any{"tier": "gold"})
	require.NoError(t, err)
	assert.Equal(t, "gold", m["tier"])

	_, err = graphql.UnmarshalJSON("not a map")
	assert.Error(t, err)
}
