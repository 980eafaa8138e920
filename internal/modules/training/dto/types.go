package dto

type WorkshopOutput struct {
	ID          string
	Title       string
	Description string
	Date        string
	Time        string
	Duration    int
	Location    string
	Author      string
}

type WorkshopListOutput struct {
	Workshops []WorkshopOutput
	Warnings  []string
}

type CalendarOutput struct {
	Upcoming []WorkshopOutput
	Past     []WorkshopOutput
	Warnings []string
}
