package syllabus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevels(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"1,2,3", []string{"1", "2", "3"}},
		{" 1 , 2 ,,3 ", []string{"1", "2", "3"}},
		{"4-6", []string{"4", "4-6", "5", "6"}},
		{"6-4", []string{"4", "5", "6", "6-4"}},
		{"7-9", []string{"7", "7-9", "8", "9"}},
		{"1,7-9", []string{"1", "7", "7-9", "8", "9"}},
		{"a-b", []string{"a-b"}},
		{"", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevels(tt.in).Slice())
		})
	}
}

func TestLevelSet_Stage(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1,2,3", StageElementary},
		{"1-3", StageElementary},
		{"4,5,6", StageIntermediate},
		{"4-6", StageIntermediate},
		{"7-9", StageAdvanced},
		{"9", StageAdvanced},
		{"1,2,3,7", StageAdvanced},
		{"1,2", StageMixed},
		{"1,4", StageMixed},
		{"", StageMixed},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevels(tt.in).Stage())
		})
	}
}

func TestLevelSet_IncludesAdvanced(t *testing.T) {
	assert.True(t, ParseLevels("7-9").IncludesAdvanced())
	assert.True(t, ParseLevels("8").IncludesAdvanced())
	assert.False(t, ParseLevels("1-6").IncludesAdvanced())
}
