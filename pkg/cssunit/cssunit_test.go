package cssunit

import "testing"

func TestValidate(t *testing.T) {
	t.Run("valid values", func(t *testing.T) {
		cases := []struct {
			in   any
			want string
		}{
			{"200px", "200px"},
			{"100%", "100%"},
			{"1.5em", "1.5em"},
			{"-2px", "-2px"},
			{"30vw", "30vw"},
			{"auto", "auto"},
			{"inherit", "inherit"},
			{"fit-content", "fit-content"},
			{"calc(100% - 20px)", "calc(100% - 20px)"},
			{"  400px ", "400px"},
			{"400", "400px"},
			{200, "200px"},
			{int64(12), "12px"},
			{1.5, "1.5px"},
		}
		for _, c := range cases {
			got, err := Validate(c.in)
			if err != nil {
				t.Errorf("Validate(%v): unexpected error: %v", c.in, err)
				continue
			}
			if got != c.want {
				t.Errorf("Validate(%v) = %q, want %q", c.in, got, c.want)
			}
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		cases := []any{
			"",
			"banana",
			"px200",
			"200 px",
			"200pxx",
			"10deg",
			true,
			nil,
		}
		for _, c := range cases {
			if got, err := Validate(c); err == nil {
				t.Errorf("Validate(%v) = %q, want error", c, got)
			}
		}
	})
}
