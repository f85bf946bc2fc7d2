package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/slashdevops/hwaddr"
)

func TestFormatArgs(t *testing.T) {
	got := formatArgs(hwaddr.New(), []string{"0", "81952921372024", "0xabc", "-1"})

	require.Len(t, got, 4)
	assert.Equal(t, "00:00:00:00:00:00", got[0].MAC)
	assert.Equal(t, "4A:89:26:C4:45:78", got[1].MAC)
	assert.Equal(t, "00:00:00:00:0A:BC", got[2].MAC)
	assert.Empty(t, got[3].MAC)
	assert.Contains(t, got[3].Error, "invalid argument")
	assert.True(t, failed(got))
}

func TestFormatArgsGreedyStrict(t *testing.T) {
	formatter := hwaddr.New().WithGrouping(hwaddr.GroupGreedy).WithStrict(true)
	got := formatArgs(formatter, []string{"0xabc", "0x1000000000000"})

	require.Len(t, got, 2)
	assert.Equal(t, "00:00:00:00:AB:C", got[0].MAC)
	assert.Contains(t, got[1].Error, "exceeds 48 bits")
}

func TestReverseArgs(t *testing.T) {
	got := reverseArgs([]string{"4A:89:26:C4:45:78", "nope"})

	want := []result{
		{Input: "4A:89:26:C4:45:78", MAC: "4A:89:26:C4:45:78", Value: "81952921372024"},
		{Input: "nope", Error: `argument "nope": invalid argument`},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("reverseArgs() mismatch (-want +got):\n%s", diff)
	}
}

func TestLocalResults(t *testing.T) {
	got := localResults(hwaddr.New(), []uint64{1, 0x4a8926c44578})

	want := []result{
		{Input: "1", MAC: "00:00:00:00:00:01", Value: "1"},
		{Input: "81952921372024", MAC: "4A:89:26:C4:45:78", Value: "81952921372024"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("localResults() mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, failed(got))
}

func TestPrintText(t *testing.T) {
	color.NoColor = true

	var stdout, stderr bytes.Buffer
	printText(&stdout, &stderr, []result{
		{Input: "1", MAC: "00:00:00:00:00:01", Value: "1"},
		{Input: "x", Error: "bad"},
	}, false)

	assert.Equal(t, "00:00:00:00:00:01\n", stdout.String())
	assert.Equal(t, "error: bad\n", stderr.String())

	stdout.Reset()
	printText(&stdout, &stderr, []result{{Input: "00:00:00:00:00:01", MAC: "00:00:00:00:00:01", Value: "1"}}, true)
	assert.Equal(t, "1\n", stdout.String())
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printJSON(&buf, formatArgs(hwaddr.New(), []string{"1"})))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "00:00:00:00:00:01", got[0]["mac"])
	assert.NotContains(t, got[0], "error")
}

func TestPrintYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printYAML(&buf, formatArgs(hwaddr.New(), []string{"0x4a8926c44578"})))

	var got []result
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "4A:89:26:C4:45:78", got[0].MAC)
	assert.Equal(t, "0x4a8926c44578", got[0].Input)
}
