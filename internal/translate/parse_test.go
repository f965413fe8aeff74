package translate

import (
	"testing"

	"github.com/agritech/cropscan-api/internal/catalog"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Translation
		wantErr bool
	}{
		{
			name: "plain json",
			raw:  `{"cause":"c","treatment":"t","prevention":"p","fertilizer":"f"}`,
			want: Translation{Cause: "c", Treatment: "t", Prevention: "p", Fertilizer: "f"},
		},
		{
			name: "json fenced",
			raw:  "```json\n{\"cause\":\"c\"}\n```",
			want: Translation{Cause: "c"},
		},
		{
			name: "generic fence",
			raw:  "```\n{\"treatment\":\"t\"}\n```",
			want: Translation{Treatment: "t"},
		},
		{
			name: "fence with surrounding whitespace",
			raw:  "  ```json\n{\"prevention\":\"p\"}\n```  ",
			want: Translation{Prevention: "p"},
		},
		{
			name:    "prose reply",
			raw:     "Sure! Here is the translation you asked for.",
			wantErr: true,
		},
		{
			name:    "empty",
			raw:     "",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Parse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestApplyFieldFallback(t *testing.T) {
	base := catalog.Record{Cause: "c0", Treatment: "t0", Prevention: "p0", Fertilizer: "f0"}
	tr := Translation{Treatment: "t1"}

	got := tr.Apply(base)
	want := catalog.Record{Cause: "c0", Treatment: "t1", Prevention: "p0", Fertilizer: "f0"}
	if got != want {
		t.Errorf("Apply() = %+v, want %+v", got, want)
	}
}
