package models

// Room is immutable after creation; it is never updated in place and only
// removed administratively.
type Room struct {
	RoomNumber  int64   `json:"roomNumber"`
	RoomType    string  `json:"roomType"`
	NightlyRate float64 `json:"nightlyRate"`
	Capacity    int     `json:"capacity"`
	Facilities  string  `json:"facilities"`
}
