package irish

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEclipse(t *testing.T) {
	tests := []struct {
		word, plain, annotated string
	}{
		{"bád", "mbád", "<i>m</i>bád"},
		{"cat", "gcat", "<i>g</i>cat"},
		{"doras", "ndoras", "<i>n</i>doras"},
		{"fear", "bhfear", "<i>bh</i>fear"},
		{"gaoth", "ngaoth", "<i>n</i>gaoth"},
		{"páiste", "bpáiste", "<i>b</i>páiste"},
		{"trá", "dtrá", "<i>d</i>trá"},
		{"rud", "rud", "rud"},
		{"sráid", "sráid", "sráid"},
		{"éan", "éan", "éan"},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got, err := Eclipse(tt.word, Plain)
			require.NoError(t, err)
			assert.Equal(t, tt.plain, got)

			got, err = Eclipse(tt.word, Annotated)
			require.NoError(t, err)
			assert.Equal(t, tt.annotated, got)
			assert.Equal(t, tt.plain, Strip(got))
		})
	}
}

func TestLenite(t *testing.T) {
	tests := []struct {
		word, plain, annotated string
	}{
		{"bád", "bhád", "b<i>h</i>ád"},
		{"cailín", "chailín", "c<i>h</i>ailín"},
		{"doras", "dhoras", "d<i>h</i>oras"},
		{"fear", "fhear", "f<i>h</i>ear"},
		{"gaoth", "ghaoth", "g<i>h</i>aoth"},
		{"madra", "mhadra", "m<i>h</i>adra"},
		{"páiste", "pháiste", "p<i>h</i>áiste"},
		{"sagart", "shagart", "s<i>h</i>agart"},
		{"tír", "thír", "t<i>h</i>ír"},
		{"leabhar", "leabhar", "leabhar"},
		{"rud", "rud", "rud"},
		{"ainm", "ainm", "ainm"},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got, err := Lenite(tt.word, Plain)
			require.NoError(t, err)
			assert.Equal(t, tt.plain, got)

			got, err = Lenite(tt.word, Annotated)
			require.NoError(t, err)
			assert.Equal(t, tt.annotated, got)
		})
	}
}

func TestMutationEmptyWord(t *testing.T) {
	_, err := Eclipse("", Plain)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = Lenite("  ", Annotated)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
