package types

// Announcement is a singleton: the newest row wins and updates always
// target that one row.
type Announcement struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Content  string `json:"content"`
	LinkText string `json:"linkText"`
	LinkTo   string `json:"linkTo"`
}
