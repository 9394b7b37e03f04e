package models

type Project struct {
	ProjectID          string  `json:"projectId" bson:"projectId"`
	Industry           string  `json:"Industry" bson:"Industry"`
	ImageUrl           string  `json:"ImageUrl" bson:"ImageUrl"`
	DaysLeft           int     `json:"DaysLeft" bson:"DaysLeft"`
	ProjectName        string  `json:"ProjectName" bson:"ProjectName"`
	ProjectDescription string  `json:"ProjectDescription" bson:"ProjectDescription"`
	Raised             float64 `json:"Raised" bson:"Raised"`
	Investors          string  `json:"Investors" bson:"Investors"`
	Votes              int     `json:"Votes" bson:"Votes"`
	MinInvestment      string  `json:"MinInvestment" bson:"MinInvestment"`
	Slogan             string  `json:"Slogan" bson:"Slogan"`
	Slogan2            string  `json:"Slogan2" bson:"Slogan2"`
	ReasonsToInvest    string  `json:"ReasonsToInvest" bson:"ReasonsToInvest"`
}

// ProjectCreate carries the descriptive fields only; projectId and Votes are
// assigned by the server.
type ProjectCreate struct {
	Industry           string  `json:"Industry"`
	ImageUrl           string  `json:"ImageUrl"`
	DaysLeft           int     `json:"DaysLeft"`
	ProjectName        string  `json:"ProjectName"`
	ProjectDescription string  `json:"ProjectDescription"`
	Raised             float64 `json:"Raised"`
	Investors          string  `json:"Investors"`
	MinInvestment      string  `json:"MinInvestment"`
	Slogan             string  `json:"Slogan"`
	Slogan2            string  `json:"Slogan2"`
	ReasonsToInvest    string  `json:"ReasonsToInvest"`
}
