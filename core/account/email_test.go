package account

import "testing"

func TestIsEducationalEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{name: ".edu", email: "student@mit.edu", want: true},
		{name: ".edu subdomain", email: "jane@cs.stanford.edu", want: true},
		{name: ".edu.in", email: "raj@iitb.edu.in", want: true},
		{name: ".edu.au", email: "amy@unimelb.edu.au", want: true},
		{name: ".ac.uk", email: "ian@ox.ac.uk", want: true},
		{name: ".ac. middle", email: "kenji@u-tokyo.ac.jp", want: true},
		{name: ".school.nz", email: "kid@wellington.school.nz", want: true},
		{name: "mixed case", email: "Student@MIT.EDU", want: true},
		{name: "gmail", email: "user@gmail.com", want: false},
		{name: "corporate", email: "bob@bigcorp.io", want: false},
		{name: "bare .school", email: "kid@my.school", want: false},
		{name: "no at sign", email: "noatsign", want: false},
		{name: "empty domain", email: "user@", want: false},
		{name: "empty string", email: "", want: false},
		{name: "domain after last at", email: "weird@name@gmail.com", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsEducationalEmail(tt.email); got != tt.want {
				t.Errorf("IsEducationalEmail(%q) = %v; want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestEmailDomain(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{email: "student@mit.edu", want: "mit.edu"},
		{email: "Student@MIT.EDU", want: "mit.edu"},
		{email: "weird@name@gmail.com", want: "gmail.com"},
		{email: "noatsign", want: ""},
		{email: "user@", want: ""},
		{email: "", want: ""},
	}
	for _, tt := range tests {
		if got := EmailDomain(tt.email); got != tt.want {
			t.Errorf("EmailDomain(%q) = %q; want %q", tt.email, got, tt.want)
		}
	}
}

func TestSuggestInstitution(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{email: "jane@cs.stanford.edu", want: "Stanford University"},
		{email: "prof.smith@harvard.edu", want: "Harvard University"},
		{email: "ian@ox.ac.uk", want: "Ac University"}, // best effort; callers may override
		{email: "noatsign", want: ""},
		{email: "user@localhost", want: ""},
		{email: "", want: ""},
	}
	for _, tt := range tests {
		if got := SuggestInstitution(tt.email); got != tt.want {
			t.Errorf("SuggestInstitution(%q) = %q; want %q", tt.email, got, tt.want)
		}
	}
}

func TestSuggestRole(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{email: "prof.smith@harvard.edu", want: RoleProfessor},
		{email: "staff.jones@mit.edu", want: RoleProfessor},
		{email: "faculty-head@ox.ac.uk", want: RoleProfessor},
		{email: "student.john@stanford.edu", want: RoleStudent},
		{email: "jane@mit.edu", want: RoleStudent},
		// token match stops at the local part
		{email: "jane@professors.edu", want: RoleStudent},
	}
	for _, tt := range tests {
		if got := SuggestRole(tt.email); got != tt.want {
			t.Errorf("SuggestRole(%q) = %q; want %q", tt.email, got, tt.want)
		}
	}
}
