package dto

// PlacementStats summarizes placed students for the landing page
type PlacementStats struct {
	StudentsPlaced  int     `json:"studentsPlaced" example:"120"`
	ActiveCompanies int     `json:"activeCompanies" example:"35"`
	AvgPackage      float64 `json:"avgPackage" example:"6.5"`
	HighestPackage  int     `json:"highestPackage" example:"42"`
}

// RecentPlacement is one entry of the recent placements list
type RecentPlacement struct {
	StudentName string `json:"studentName" example:"Ada Lovelace"`
	Company     string `json:"company" example:"Acme Corp"`
	Role        string `json:"role" example:"Software Engineer"`
	Package     *int   `json:"package,omitempty" example:"12"`
}
