package out_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	projectrest "incubator/internal/modules/project/adapter/out"
	"incubator/internal/modules/project/domain"
	"incubator/internal/platform/apiclient"
	"incubator/internal/platform/state"
)

type recorded struct {
	method string
	uri    string
	body   string
}

func newBackend(t *testing.T, routes map[string]string) (*apiclient.Client, *[]recorded) {
	t.Helper()
	var calls []recorded
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		calls = append(calls, recorded{method: r.Method, uri: r.URL.RequestURI(), body: string(body)})
		payload, ok := routes[r.Method+" "+r.URL.RequestURI()]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	}))
	t.Cleanup(srv.Close)
	return apiclient.New(srv.URL, state.NewMemoryStore()), &calls
}

func TestTeamEnvelopes(t *testing.T) {
	t.Parallel()
	client, _ := newBackend(t, map[string]string{
		"GET /projects/p1/team?relationType=members":     `{"data":{"data":[{"id":"u1","firstName":"Ana","lastName":"López","role":"MEMBER"}]}}`,
		"GET /projects/p1/team?relationType=encadrants":  `{"data":{"data":[{"id":"s1","firstName":"Sam","role":"SUPERVISOR"}]}}`,
		"GET /projects/p1/team?relationType=juryMembers": `{"projectId":"p1","relationType":"juryMembers","relationData":[{"id":"j1"},{"id":"j2"}]}`,
	})
	api := projectrest.NewRESTTeamAPI(client)
	ctx := context.Background()

	members, err := api.List(ctx, "p1", domain.RelationMembers)
	if err != nil || len(members) != 1 || members[0].FullName() != "Ana López" {
		t.Fatalf("members: %+v %v", members, err)
	}
	supervisors, err := api.List(ctx, "p1", domain.RelationSupervisors)
	if err != nil || len(supervisors) != 1 || supervisors[0].Role != "SUPERVISOR" {
		t.Fatalf("supervisors: %+v %v", supervisors, err)
	}
	jury, err := api.List(ctx, "p1", domain.RelationJury)
	if err != nil || len(jury) != 2 {
		t.Fatalf("jury: %+v %v", jury, err)
	}
}

func TestTeamAdds(t *testing.T) {
	t.Parallel()
	client, calls := newBackend(t, map[string]string{
		"POST /projects/add-member":       `{"ok":true}`,
		"POST /projects/p1/add-encadrant": `{"ok":true}`,
		"POST /projects/p1/add-jury/u9":   `{"ok":true}`,
	})
	api := projectrest.NewRESTTeamAPI(client)
	ctx := context.Background()
	if err := api.AddMember(ctx, "p1", "ana@example.com"); err != nil {
		t.Fatalf("add member: %v", err)
	}
	if err := api.AddSupervisor(ctx, "p1", "s7"); err != nil {
		t.Fatalf("add supervisor: %v", err)
	}
	if err := api.AddJuryMember(ctx, "p1", "u9"); err != nil {
		t.Fatalf("add jury: %v", err)
	}
	var member map[string]string
	if err := json.Unmarshal([]byte((*calls)[0].body), &member); err != nil {
		t.Fatalf("member body: %v", err)
	}
	if member["projectId"] != "p1" || member["userIdentifier"] != "ana@example.com" {
		t.Fatalf("unexpected add-member body %v", member)
	}
	if (*calls)[1].body != `"s7"` {
		t.Fatalf("supervisor id should be posted as a JSON string, got %s", (*calls)[1].body)
	}
	if (*calls)[2].body != "" {
		t.Fatalf("add-jury carries no body, got %q", (*calls)[2].body)
	}
}

func TestProjectQueries(t *testing.T) {
	t.Parallel()
	client, calls := newBackend(t, map[string]string{
		"GET /projects/search/owner/Ana%20Mar%C3%ADa": `[{"id":"p1","name":"Acme","owners":[{"id":"u1"}],"encadrants":[{"id":"s1"}]}]`,
		"GET /projects/noencadrants":                  `{"projects":[{"id":"p2","name":"Solo","membersCount":2}]}`,
		"GET /projects/p1":                            `{"data":{"id":"p1","name":"Acme","stage":"MVP"}}`,
	})
	api := projectrest.NewRESTProjectAPI(client)
	ctx := context.Background()

	owned, err := api.SearchByOwner(ctx, "Ana María")
	if err != nil || len(owned) != 1 || !owned[0].OwnedBy("u1") || len(owned[0].Supervisors) != 1 {
		t.Fatalf("owner search: %+v %v (calls %+v)", owned, err, *calls)
	}
	summaries, err := api.WithoutSupervisors(ctx)
	if err != nil || len(summaries) != 1 || summaries[0].MembersCount != 2 {
		t.Fatalf("unsupervised: %+v %v", summaries, err)
	}
	project, err := api.Get(ctx, "p1")
	if err != nil || project.Stage != "MVP" {
		t.Fatalf("get: %+v %v", project, err)
	}
}

func TestUsersDirectory(t *testing.T) {
	t.Parallel()
	client, _ := newBackend(t, map[string]string{
		"GET /users": `[{"id":"u1","firstName":"Ana","lastName":"López","email":"ana@example.com","role":"MEMBER"},{"id":"u2","firstName":"Bo"}]`,
	})
	users, err := projectrest.NewRESTTeamAPI(client).Users(context.Background())
	if err != nil {
		t.Fatalf("users: %v", err)
	}
	if len(users) != 2 || users[0].Email != "ana@example.com" || users[1].FullName() != "Bo" {
		t.Fatalf("unexpected users %+v", users)
	}
}
