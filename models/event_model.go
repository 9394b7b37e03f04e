package models

// Dates are opaque strings, no parsing or timezone handling happens server-side.
type Event struct {
	EventID          string `json:"eventId" bson:"eventId"`
	EventName        string `json:"eventName" bson:"eventName"`
	EventDescription string `json:"eventDescription" bson:"eventDescription"`
	Img              string `json:"img" bson:"img"`
	StartDate        string `json:"startDate" bson:"startDate"`
	EndDate          string `json:"endDate" bson:"endDate"`
	Location         string `json:"location" bson:"location"`
	MainSpeaker      string `json:"mainSpeaker" bson:"mainSpeaker"`
	Rules            string `json:"rules" bson:"rules"`
	Votes            int    `json:"votes" bson:"votes"`
	NeededVotes      int    `json:"neededVotes" bson:"neededVotes"`
}

// EventCreate carries the descriptive fields only; eventId and votes are
// assigned by the server.
type EventCreate struct {
	EventName        string `json:"eventName"`
	EventDescription string `json:"eventDescription"`
	Img              string `json:"img"`
	StartDate        string `json:"startDate"`
	EndDate          string `json:"endDate"`
	Location         string `json:"location"`
	MainSpeaker      string `json:"mainSpeaker"`
	Rules            string `json:"rules"`
	NeededVotes      int    `json:"neededVotes"`
}
