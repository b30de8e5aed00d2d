package textclean

import "testing"

func TestClean(t *testing.T) {
	cleaner := NewCleaner()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "strips tags",
			raw:  "<div><b>Urgent</b> hiring now</div>",
			want: "Urgent hiring now",
		},
		{
			name: "strips script blocks",
			raw:  "Apply today<script>alert('x')</script> via email",
			want: "Apply today via email",
		},
		{
			name: "collapses whitespace and newlines",
			raw:  "Salary:\r\n  15000   per\tmonth",
			want: "Salary: 15000 per month",
		},
		{
			name: "normalizes smart punctuation",
			raw:  "“Great” opportunity – apply",
			want: `"Great" opportunity - apply`,
		},
		{
			name: "empty input",
			raw:  "   \n\t ",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleaner.Clean(tt.raw); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
