// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package version

import (
	"errors"
	"testing"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Version
	}{
		{
			name:  "major only",
			input: "5",
			want:  Version{Major: 5, Precision: 1},
		},
		{
			name:  "major minor",
			input: "5.6",
			want:  Version{Major: 5, Minor: 6, Precision: 2},
		},
		{
			name:  "full",
			input: "5.6.1",
			want:  Version{Major: 5, Minor: 6, Patch: 1, Precision: 3},
		},
		{
			name:  "v prefix",
			input: "v5.6.1",
			want:  Version{Major: 5, Minor: 6, Patch: 1, Precision: 3},
		},
		{
			name:  "prerelease suffix",
			input: "5.7.0-beta1",
			want:  Version{Major: 5, Minor: 7, Precision: 3, Extras: "-beta1"},
		},
		{
			name:  "dotted suffix",
			input: "5.7.0-rc.1",
			want:  Version{Major: 5, Minor: 7, Precision: 3, Extras: "-rc.1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVersion(tt.input)
			if err != nil {
				t.Fatalf("ParseVersion(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseVersion(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseVersionErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "empty", input: "", wantErr: ErrEmptyVersion},
		{name: "too many components", input: "1.2.3.4", wantErr: ErrTooManyComponents},
		{name: "non numeric", input: "a.b.c", wantErr: ErrNonNumeric},
		{name: "empty component", input: "1..3", wantErr: ErrNonNumeric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseVersion(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseVersion(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestVersionString(t *testing.T) {
	tests := []struct {
		name string
		v    Version
		want string
	}{
		{name: "precision 1", v: Version{Major: 5, Minor: 6, Patch: 1, Precision: 1}, want: "5"},
		{name: "precision 2", v: Version{Major: 5, Minor: 6, Patch: 1, Precision: 2}, want: "5.6"},
		{name: "precision 3", v: Version{Major: 5, Minor: 6, Patch: 1, Precision: 3}, want: "5.6.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{name: "equal", a: "5.6.1", b: "5.6.1", want: 0},
		{name: "patch newer", a: "5.6.2", b: "5.6.1", want: 1},
		{name: "minor older", a: "5.5.9", b: "5.6.0", want: -1},
		{name: "major wins", a: "6.0.0", b: "5.9.9", want: 1},
		{name: "lower precision matches", a: "5.6", b: "5.6.9", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := MustParseVersion(tt.a)
			b := MustParseVersion(tt.b)
			if got := a.Compare(b); got != tt.want {
				t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestEqualsOrNewer(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{name: "newer patch", a: "5.6.2", b: "5.6.1", want: true},
		{name: "older patch", a: "5.6.0", b: "5.6.1", want: false},
		{name: "precision 2 covers patch", a: "5.6", b: "5.6.9", want: true},
		{name: "older major", a: "4.9", b: "5.0", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := MustParseVersion(tt.a)
			b := MustParseVersion(tt.b)
			if got := a.EqualsOrNewer(b); got != tt.want {
				t.Errorf("EqualsOrNewer(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func FuzzParseVersion(f *testing.F) {
	for _, seed := range []string{"5", "5.6", "5.6.1", "v5.6.1", "5.7.0-beta1", ""} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, s string) {
		v, err := ParseVersion(s)
		if err != nil {
			return
		}
		if v.Precision < 1 || v.Precision > 3 {
			t.Errorf("ParseVersion(%q) precision = %d", s, v.Precision)
		}
		if v.Major < 0 || v.Minor < 0 || v.Patch < 0 {
			t.Errorf("ParseVersion(%q) produced negative component: %+v", s, v)
		}
	})
}
