package domain_test

import (
	"testing"
	"time"

	"incubator/internal/modules/account/domain"
)

func TestLanding(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name       string
		user       domain.User
		hasProject bool
		promptSeen bool
		want       domain.Destination
	}{
		{"admin", domain.User{Role: domain.RoleAdmin}, false, false, domain.DestinationAdminProjects},
		{"supervisor", domain.User{Role: domain.RoleSupervisor}, true, true, domain.DestinationMentorProjects},
		{"member with stored project", domain.User{Role: domain.RoleMember}, true, false, domain.DestinationProgress},
		{"member with project claim", domain.User{Role: domain.RoleMember, ProjectID: "p1"}, false, false, domain.DestinationProgress},
		{"member seen prompt", domain.User{Role: domain.RoleMember}, false, true, domain.DestinationProgress},
		{"new member", domain.User{Role: domain.RoleMember}, false, false, domain.DestinationStartupPrompt},
		{"unknown role", domain.User{Role: "GUEST"}, false, false, domain.DestinationStartupPrompt},
	}
	for _, tc := range cases {
		if got := domain.Landing(tc.user, tc.hasProject, tc.promptSeen); got != tc.want {
			t.Fatalf("%s: got %s want %s", tc.name, got, tc.want)
		}
	}
}

func TestExpiredAndName(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	if (domain.User{}).Expired(now) {
		t.Fatalf("user without expiry must not expire")
	}
	if !(domain.User{ExpiresAt: now}).Expired(now) {
		t.Fatalf("expiry instant counts as expired")
	}
	if (domain.User{ExpiresAt: now.Add(time.Minute)}).Expired(now) {
		t.Fatalf("future expiry is valid")
	}
	u := domain.User{FirstName: "Ana", LastName: "López"}
	if u.Name() != "Ana López" {
		t.Fatalf("unexpected name %q", u.Name())
	}
	if domain.ParseRole(" admin ") != domain.RoleAdmin {
		t.Fatalf("role parsing should normalise case")
	}
}
