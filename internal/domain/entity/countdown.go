package entity

// CountdownSnapshot is the remaining time of the festive sale banner,
// broken into whole units. Once the target passes it stays all zeroes.
type CountdownSnapshot struct {
	Days    int  `json:"days"`
	Hours   int  `json:"hours"`
	Minutes int  `json:"minutes"`
	Seconds int  `json:"seconds"`
	Expired bool `json:"expired"`
}
