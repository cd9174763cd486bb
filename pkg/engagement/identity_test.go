package engagement

import "testing"

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  string
	}{
		{name: "already normalized", email: "jane@example.com", want: "jane@example.com"},
		{name: "uppercase", email: "Jane@Example.COM", want: "jane@example.com"},
		{name: "surrounding whitespace", email: "  jane@example.com ", want: "jane@example.com"},
		{name: "mixed", email: " JANE@EXAMPLE.COM\t", want: "jane@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeEmail(tt.email); got != tt.want {
				t.Errorf("NormalizeEmail(%q) = %q, want %q", tt.email, got, tt.want)
			}
		})
	}
}

func TestMergeFields(t *testing.T) {
	t.Run("all fields present", func(t *testing.T) {
		merge := MergeFields("Jane", "Doe", "Acme")
		if len(merge) != 3 {
			t.Fatalf("len(merge) = %d, want 3", len(merge))
		}
		if merge["first_name"] != "Jane" || merge["last_name"] != "Doe" || merge["company"] != "Acme" {
			t.Errorf("unexpected merge map: %v", merge)
		}
	})

	t.Run("empty fields dropped", func(t *testing.T) {
		merge := MergeFields("Jane", "", "  ")
		if len(merge) != 1 {
			t.Fatalf("len(merge) = %d, want 1", len(merge))
		}
		if _, ok := merge["last_name"]; ok {
			t.Error("empty last_name should not appear in merge map")
		}
		if _, ok := merge["company"]; ok {
			t.Error("blank company should not appear in merge map")
		}
	})

	t.Run("all empty yields empty map", func(t *testing.T) {
		merge := MergeFields("", "", "")
		if len(merge) != 0 {
			t.Errorf("len(merge) = %d, want 0", len(merge))
		}
	})

	t.Run("values trimmed", func(t *testing.T) {
		merge := MergeFields(" Jane ", "", "")
		if merge["first_name"] != "Jane" {
			t.Errorf("first_name = %v, want Jane", merge["first_name"])
		}
	})
}
