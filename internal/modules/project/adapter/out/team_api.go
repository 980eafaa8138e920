package out

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"incubator/internal/modules/project/domain"
	projectout "incubator/internal/modules/project/port/out"
	"incubator/internal/platform/apiclient"
)

type RESTTeamAPI struct {
	client *apiclient.Client
}

func NewRESTTeamAPI(client *apiclient.Client) projectout.TeamAPI {
	return &RESTTeamAPI{client: client}
}

// List accepts {data:{data:[…]}}, {relationData:[…]} and bare arrays; the
// server picks the shape per relation.
func (a *RESTTeamAPI) List(ctx context.Context, projectID string, relation domain.Relation) ([]domain.Member, error) {
	raw, err := a.client.Do(ctx, apiclient.Request{
		Endpoint: "project.team",
		Path:     apiclient.Path("/projects/%s/team", projectID),
		Query:    url.Values{"relationType": []string{string(relation)}},
	})
	if err != nil {
		return nil, err
	}
	wires, err := apiclient.DecodeList[memberWire](raw)
	if err != nil {
		return nil, fmt.Errorf("team %s: %w", relation, err)
	}
	return membersToDomain(wires), nil
}

func (a *RESTTeamAPI) AddMember(ctx context.Context, projectID, userIdentifier string) error {
	_, err := a.client.Do(ctx, apiclient.Request{
		Method:   http.MethodPost,
		Endpoint: "project.add_member",
		Path:     "/projects/add-member",
		Body:     addMemberWire{ProjectID: projectID, UserIdentifier: userIdentifier},
	})
	return err
}

// AddSupervisor posts the user id as a bare JSON string.
func (a *RESTTeamAPI) AddSupervisor(ctx context.Context, projectID, userID string) error {
	_, err := a.client.Do(ctx, apiclient.Request{
		Method:   http.MethodPost,
		Endpoint: "project.add_supervisor",
		Path:     apiclient.Path("/projects/%s/add-encadrant", projectID),
		Body:     userID,
	})
	return err
}

func (a *RESTTeamAPI) AddJuryMember(ctx context.Context, projectID, userID string) error {
	_, err := a.client.Do(ctx, apiclient.Request{
		Method:   http.MethodPost,
		Endpoint: "project.add_jury",
		Path:     apiclient.Path("/projects/%s/add-jury/%s", projectID, userID),
	})
	return err
}

func (a *RESTTeamAPI) Users(ctx context.Context) ([]domain.Member, error) {
	raw, err := a.client.Do(ctx, apiclient.Request{
		Endpoint: "user.list",
		Path:     "/users",
	})
	if err != nil {
		return nil, err
	}
	wires, err := apiclient.DecodeList[memberWire](raw)
	if err != nil {
		return nil, fmt.Errorf("users: %w", err)
	}
	return membersToDomain(wires), nil
}
