package csvimport

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"weddinginvites/internal/domain"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []*domain.Guest
		wantErr error
	}{
		{
			name: "header skipped and incomplete row dropped",
			input: "Name,email,relation,interest\n" +
				"Alice,a@x.com,Friend,hiking\n" +
				",missing@x.com,,photography\n",
			want: []*domain.Guest{
				{Name: "Alice", Email: "a@x.com", Relation: "Friend", Interest: "hiking"},
			},
		},
		{
			name:  "localized header with BOM",
			input: "\ufeff賓客姓名,信箱,關係,興趣\nBob,b@x.com,Cousin,\"music, food\"\n",
			want: []*domain.Guest{
				{Name: "Bob", Email: "b@x.com", Relation: "Cousin", Interest: "music, food"},
			},
		},
		{
			name:  "no header row keeps first row as data",
			input: "Carol,c@x.com,Colleague,chess\n",
			want: []*domain.Guest{
				{Name: "Carol", Email: "c@x.com", Relation: "Colleague", Interest: "chess"},
			},
		},
		{
			name:  "header-like row after row zero is data",
			input: "name,email,relation,interest\nname,n@x.com,,\n",
			want: []*domain.Guest{
				{Name: "name", Email: "n@x.com"},
			},
		},
		{
			name:  "cells trimmed and short rows defaulted",
			input: "  Dave  ,  d@x.com  \n",
			want: []*domain.Guest{
				{Name: "Dave", Email: "d@x.com"},
			},
		},
		{
			name:  "whitespace-only email dropped",
			input: "Eve,   ,Friend,art\nFrank,f@x.com,Friend,art\n",
			want: []*domain.Guest{
				{Name: "Frank", Email: "f@x.com", Relation: "Friend", Interest: "art"},
			},
		},
		{
			name:    "only header yields no valid rows",
			input:   "name,email,relation,interest\n",
			wantErr: domain.ErrNoValidRows,
		},
		{
			name:    "empty file yields no valid rows",
			input:   "",
			wantErr: domain.ErrNoValidRows,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(strings.NewReader(tt.input))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_OutputInvariant(t *testing.T) {
	input := "name,email\n" +
		"A,a@x.com\n" +
		" , b@x.com\n" +
		"C, \n" +
		"D,d@x.com,extra,cells,ignored,here\n" +
		"\n" +
		"E,e@x.com\n"
	rows := strings.Count(input, "\n")

	got, err := Normalize(strings.NewReader(input))
	require.NoError(t, err)
	require.LessOrEqual(t, len(got), rows)
	require.Len(t, got, 3)
	for _, g := range got {
		require.NotEmpty(t, strings.TrimSpace(g.Name))
		require.NotEmpty(t, strings.TrimSpace(g.Email))
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }

func TestNormalize_ReadError(t *testing.T) {
	_, err := Normalize(failingReader{})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReader_IndexesRows(t *testing.T) {
	r := NewReader(strings.NewReader("a,b\nc,d,e,f\n"))

	row, idx, err := r.Read()
	require.NoError(t, err)
	require.Equal(t, 0, idx)
	require.Equal(t, RawRow{Name: "a", Email: "b"}, row)

	row, idx, err = r.Read()
	require.NoError(t, err)
	require.Equal(t, 1, idx)
	require.Equal(t, RawRow{Name: "c", Email: "d", Relation: "e", Interest: "f"}, row)

	_, _, err = r.Read()
	require.ErrorIs(t, err, io.EOF)
}

func TestIsHeader(t *testing.T) {
	require.True(t, IsHeader(RawRow{Name: " NAME "}))
	require.True(t, IsHeader(RawRow{Name: "賓客姓名"}))
	require.False(t, IsHeader(RawRow{Name: "Nathan"}))
	require.False(t, IsHeader(RawRow{Name: "names"}))
}
