package out

import (
	"context"
	"fmt"

	"incubator/internal/modules/training/domain"
	trainingout "incubator/internal/modules/training/port/out"
	"incubator/internal/platform/apiclient"
)

type workshopWire struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Duration    int    `json:"duration"`
	Location    string `json:"location"`
	Author      string `json:"author"`
}

type RESTWorkshopAPI struct {
	client *apiclient.Client
}

func NewRESTWorkshopAPI(client *apiclient.Client) trainingout.WorkshopAPI {
	return &RESTWorkshopAPI{client: client}
}

func (a *RESTWorkshopAPI) Upcoming(ctx context.Context) ([]domain.Workshop, error) {
	return a.list(ctx, "workshop.list", "/workshops")
}

func (a *RESTWorkshopAPI) Past(ctx context.Context) ([]domain.Workshop, error) {
	return a.list(ctx, "workshop.past", "/workshops/past")
}

func (a *RESTWorkshopAPI) list(ctx context.Context, endpoint, path string) ([]domain.Workshop, error) {
	raw, err := a.client.Do(ctx, apiclient.Request{Endpoint: endpoint, Path: path})
	if err != nil {
		return nil, err
	}
	wires, err := apiclient.DecodeList[workshopWire](raw)
	if err != nil {
		return nil, fmt.Errorf("workshops: %w", err)
	}
	out := make([]domain.Workshop, 0, len(wires))
	for _, w := range wires {
		out = append(out, domain.Workshop{
			ID:          w.ID,
			Title:       w.Title,
			Description: w.Description,
			Date:        w.Date,
			Time:        w.Time,
			Duration:    w.Duration,
			Location:    w.Location,
			Author:      w.Author,
		})
	}
	return out, nil
}
