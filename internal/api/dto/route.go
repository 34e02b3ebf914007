package dto

type StationResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Zones []int  `json:"zones"`
}

type RouteResponse struct {
	From         string            `json:"from"`
	To           string            `json:"to"`
	TotalMinutes int               `json:"total_minutes"`
	Stations     []StationResponse `json:"stations"`
}

type ListStationsResponse struct {
	Stations []StationResponse `json:"stations"`
}
