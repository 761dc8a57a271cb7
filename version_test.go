package envprobe

import "testing"

func TestParseVersion(t *testing.T) {
	cases := []struct {
		in   string
		want Version
	}{
		{"3.12.4", Version{3, 12, 4}},
		{"3.10", Version{3, 10, -1}},
		{"3", Version{3, -1, -1}},
		{"3.13.0rc1", Version{3, 13, 0}},
		{" 3.11.9\n", Version{3, 11, 9}},
	}
	for _, c := range cases {
		got, err := ParseVersion(c.in)
		if err != nil {
			t.Errorf("ParseVersion(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseVersion(%q) = %+v, want %+v", c.in, got, c.want)
		}
	}

	if _, err := ParseVersion("latest"); err == nil {
		t.Error("expected error for non-numeric version")
	}
}

func TestParsePythonVersion(t *testing.T) {
	v, err := ParsePythonVersion("Python 3.12.4\n")
	if err != nil {
		t.Fatalf("ParsePythonVersion: %v", err)
	}
	if v.String() != "3.12.4" || v.MinorString() != "3.12" {
		t.Errorf("got %s / %s", v.String(), v.MinorString())
	}

	for _, bad := range []string{"", "3.12.4", "PyPy 7.3", "Python"} {
		if _, err := ParsePythonVersion(bad); err == nil {
			t.Errorf("ParsePythonVersion(%q) should fail", bad)
		}
	}
}

func TestVersionCompare(t *testing.T) {
	a := Version{3, 10, 5}
	if a.Compare(Version{3, 10, 5}) != 0 {
		t.Error("equal versions should compare 0")
	}
	if a.Compare(Version{3, 11, 0}) != -1 {
		t.Error("3.10.5 < 3.11.0")
	}
	if a.Compare(Version{2, 99, 99}) != 1 {
		t.Error("3.10.5 > 2.99.99")
	}
	if a.Compare(Version{3, 10, -1}) != 1 {
		t.Error("3.10.5 > 3.10")
	}
}

func TestVersionString(t *testing.T) {
	if s := (Version{3, -1, -1}).String(); s != "3" {
		t.Errorf("got %q", s)
	}
	if s := (Version{3, 9, -1}).String(); s != "3.9" {
		t.Errorf("got %q", s)
	}
}
