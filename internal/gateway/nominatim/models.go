package nominatim

type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

type reverseResult struct {
	Address reverseAddress `json:"address"`
}

type reverseAddress struct {
	Suburb        string `json:"suburb"`
	Neighbourhood string `json:"neighbourhood"`
	CityDistrict  string `json:"city_district"`
	Town          string `json:"town"`
	City          string `json:"city"`
	Road          string `json:"road"`
	Street        string `json:"street"`
	Quarter       string `json:"quarter"`
	HouseNumber   string `json:"house_number"`
}
