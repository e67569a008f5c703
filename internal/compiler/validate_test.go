package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func codes(errs []ValidationError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Code
	}
	return out
}

func TestValidateClean(t *testing.T) {
	p, err := Compile(testSchema(), Options{})
	require.NoError(t, err)
	assert.Empty(t, Validate(p))
}

func TestValidateDuplicateNumber(t *testing.T) {
	p := &Program{Messages: []*Message{
		{Name: "A", Frequency: FrequencyLow, Number: 7},
		{Name: "B", Frequency: FrequencyLow, Number: 7},
		{Name: "C", Frequency: FrequencyHigh, Number: 7},
	}}

	errs := Validate(p)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrDuplicateMessageNumber, errs[0].Code)
	assert.Equal(t, "B", errs[0].Field)
	assert.True(t, errs[0].Fatal())
	assert.Contains(t, errs[0].Error(), "0xffff0007")
}

func TestValidateNumbers(t *testing.T) {
	tests := []struct {
		name  string
		freq  Frequency
		num   uint32
		want  []string
		fatal bool
	}{
		{"high sentinel", FrequencyHigh, 0xff, []string{ErrSentinelNumber}, true},
		{"medium sentinel", FrequencyMedium, 0xff, []string{ErrSentinelNumber}, true},
		{"high too large", FrequencyHigh, 0x100, []string{ErrNumberTruncated}, false},
		{"low too large", FrequencyLow, 0x10000, []string{ErrNumberTruncated}, false},
		{"fixed bad prefix", FrequencyFixed, 0xfffeff01, []string{ErrNumberTruncated}, false},
		{"fixed short form", FrequencyFixed, 0xfb, []string{}, false},
		{"low max", FrequencyLow, 0xffff, []string{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Program{Messages: []*Message{{Name: "M", Frequency: tt.freq, Number: tt.num}}}
			errs := Validate(p)
			assert.Equal(t, tt.want, codes(errs))
			for _, e := range errs {
				assert.Equal(t, tt.fatal, e.Fatal(), e.Code)
			}
		})
	}
}

func TestValidateFlagsAndEmptyBlocks(t *testing.T) {
	p := &Program{Messages: []*Message{{
		Name:      "M",
		Frequency: FrequencyLow,
		Number:    1,
		Flags:     []string{"Deprecated", "Shiny"},
		Blocks:    []*Block{{Name: "Empty", Quantity: Quantity{Kind: QuantitySingle}}},
	}}}

	errs := Validate(p)
	assert.Equal(t, []string{ErrUnknownFlag, ErrEmptyBlock}, codes(errs))
	assert.Equal(t, "M.Empty", errs[1].Field)
}
