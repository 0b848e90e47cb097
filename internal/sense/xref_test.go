package sense

import "testing"

func TestIsCrossReference(t *testing.T) {
	tests := []struct {
		name string
		defs []string
		want bool
	}{
		{"empty", nil, true},
		{"variant", []string{"variant of 你[ni3]"}, true},
		{"old variant", []string{"old variant of 五[wu3]"}, true},
		{"erhua variant", []string{"erhua variant of 玩[wan2]"}, true},
		{"see", []string{"see 葡萄[pu2 tao5]"}, true},
		{"classifier list only", []string{"CL:個|个[ge4]"}, true},
		{"mixed pointers", []string{"see 兒子[er2 zi5]", "CL:個|个[ge4]"}, true},
		{"real definition", []string{"to eat"}, false},
		{"definition plus classifier", []string{"book", "CL:本[ben3]"}, false},
		{"prefix is case-sensitive", []string{"Variant of 你[ni3]"}, false},
		{"seed is not see", []string{"seed"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCrossReference(tt.defs); got != tt.want {
				t.Errorf("IsCrossReference(%v) = %v, want %v", tt.defs, got, tt.want)
			}
		})
	}
}

func TestVariantTarget(t *testing.T) {
	tests := []struct {
		name   string
		defs   []string
		want   string
		wantOK bool
	}{
		{"simple", []string{"variant of 你[ni3]"}, "你", true},
		{"traditional prefix dropped", []string{"variant of 個|个[ge4]"}, "个", true},
		{"erhua", []string{"erhua variant of 玩[wan2]"}, "玩", true},
		{"old variant", []string{"old variant of 五[wu3]"}, "五", true},
		{"case-insensitive", []string{"Variant of 你[ni3]"}, "你", true},
		{"second line", []string{"CL:個|个[ge4]", "variant of 你[ni3]"}, "你", true},
		{"inside a definition", []string{"(archaic) variant of 他[ta1]"}, "他", true},
		{"no bracket", []string{"variant of something"}, "", false},
		{"see is not a variant", []string{"see 葡萄[pu2 tao5]"}, "", false},
		{"empty", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := VariantTarget(tt.defs)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("VariantTarget(%v) = (%q, %v), want (%q, %v)", tt.defs, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
